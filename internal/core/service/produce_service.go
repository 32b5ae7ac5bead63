package service

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

const (
	produceMonths      = 6
	expiringWithinDays = 7
)

type ProduceService struct {
	repo   ports.ProduceRepository
	now    Clock
	logger zerolog.Logger
}

func NewProduceService(repo ports.ProduceRepository, now Clock, logger zerolog.Logger) *ProduceService {
	if now == nil {
		now = time.Now
	}
	return &ProduceService{repo: repo, now: now, logger: logger}
}

// Create stores produce owned by owner. Source crop and animal ids are
// checked by the caller.
func (s *ProduceService) Create(ctx context.Context, owner *domain.Account, p *domain.Produce) (*domain.Produce, error) {
	if err := validateProduce(p); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	p.ID = uuid.NewString()
	p.OwnerID = owner.ID
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to create produce")
		return nil, err
	}
	s.logger.Info().Str("produce_id", p.ID).Str("owner_id", owner.ID).Msg("produce recorded")
	return p, nil
}

func (s *ProduceService) Get(ctx context.Context, id string) (*domain.Produce, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProduceService) List(ctx context.Context, ownerID, produceType string) ([]*domain.Produce, error) {
	return s.repo.ListByOwner(ctx, ownerID, produceType)
}

func (s *ProduceService) Update(ctx context.Context, id string, patch domain.ProducePatch) (*domain.Produce, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	if err := validateProduce(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProduceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Summary totals stock by type and unit, harvests per month over the last
// six months, and lists produce expiring within a week.
func (s *ProduceService) Summary(ctx context.Context, ownerID string) (*domain.ProduceSummary, error) {
	all, err := s.repo.ListByOwner(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	summary := &domain.ProduceSummary{
		ByType:   []domain.ProduceTypeTotal{},
		Monthly:  []domain.MonthlyProduce{},
		Expiring: []*domain.Produce{},
	}

	type typeKey struct{ typ, unit string }
	byType := map[typeKey]float64{}
	monthly := map[string]*domain.MonthlyProduce{}
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(produceMonths - 1), 0)
	expiryLimit := now.AddDate(0, 0, expiringWithinDays)

	for _, p := range all {
		byType[typeKey{p.Type, p.Unit}] += p.Quantity

		if p.HarvestDate != nil && !p.HarvestDate.Before(firstMonth) {
			month := p.HarvestDate.UTC().Format("2006-01")
			m, ok := monthly[month]
			if !ok {
				m = &domain.MonthlyProduce{Month: month}
				monthly[month] = m
			}
			m.TotalQuantity += p.Quantity
			m.RecordCount++
		}

		if p.ExpiryDate != nil && !p.ExpiryDate.Before(now) && !p.ExpiryDate.After(expiryLimit) {
			summary.Expiring = append(summary.Expiring, p)
		}
	}

	for k, qty := range byType {
		summary.ByType = append(summary.ByType, domain.ProduceTypeTotal{Type: k.typ, Unit: k.unit, TotalQuantity: qty})
	}
	slices.SortFunc(summary.ByType, func(a, b domain.ProduceTypeTotal) int {
		return cmp.Or(cmp.Compare(a.Type, b.Type), cmp.Compare(a.Unit, b.Unit))
	})
	for _, m := range monthly {
		summary.Monthly = append(summary.Monthly, *m)
	}
	slices.SortFunc(summary.Monthly, func(a, b domain.MonthlyProduce) int {
		return cmp.Compare(a.Month, b.Month)
	})
	slices.SortFunc(summary.Expiring, func(a, b *domain.Produce) int {
		return a.ExpiryDate.Compare(*b.ExpiryDate)
	})
	return summary, nil
}

func validateProduce(p *domain.Produce) error {
	var details []string
	p.Name = strings.TrimSpace(p.Name)
	if n := len(p.Name); n < 1 || n > 100 {
		details = append(details, "name must be between 1 and 100 characters")
	}
	if strings.TrimSpace(p.Type) == "" {
		details = append(details, "type is required")
	}
	if p.Quantity <= 0 {
		details = append(details, "quantity must be greater than 0")
	}
	if strings.TrimSpace(p.Unit) == "" {
		details = append(details, "unit is required")
	}
	if p.HarvestDate != nil && p.ExpiryDate != nil && p.ExpiryDate.Before(*p.HarvestDate) {
		details = append(details, "expiry_date must not be before harvest_date")
	}
	if len(details) > 0 {
		return domain.Invalid(details...)
	}
	return nil
}
