package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type FarmService struct {
	repo   ports.FarmRepository
	idem   idempotency
	logger zerolog.Logger
}

func NewFarmService(repo ports.FarmRepository, idem ports.IdempotencyStore, idemTTL time.Duration, logger zerolog.Logger) *FarmService {
	return &FarmService{repo: repo, idem: newIdempotency(idem, idemTTL, logger), logger: logger}
}

// Create stores a new active farm owned by owner. A repeated idempotency key
// returns the farm the first request created.
func (s *FarmService) Create(ctx context.Context, owner *domain.Account, f *domain.Farm, idempotencyKey string) (*domain.Farm, bool, error) {
	scope := scopeFor(domain.KindFarm, owner.ID)
	if id := s.idem.seen(ctx, scope, idempotencyKey); id != "" {
		existing, err := s.repo.FindByID(ctx, id)
		if err == nil {
			s.logger.Info().Str("idempotency_key", idempotencyKey).Str("farm_id", id).Msg("idempotent replay")
			return existing, true, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, err
		}
	}

	if f.FarmType == "" {
		f.FarmType = domain.FarmTypeMixed
	}
	if err := validateFarm(f); err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.OwnerID = owner.ID
	f.IsActive = true
	f.CreatedAt = now
	f.UpdatedAt = now

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error().Err(err).Msg("failed to create farm")
		return nil, false, err
	}
	s.idem.remember(ctx, scope, idempotencyKey, f.ID)
	s.logger.Info().Str("farm_id", f.ID).Str("owner_id", owner.ID).Msg("farm created")
	return f, false, nil
}

func (s *FarmService) Get(ctx context.Context, id string) (*domain.Farm, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FarmService) List(ctx context.Context, viewer *domain.Account) ([]*domain.Farm, error) {
	if viewer.Role == domain.RoleAdmin {
		return s.repo.ListByOwner(ctx, "")
	}
	return s.repo.ListByOwner(ctx, viewer.ID)
}

func (s *FarmService) Update(ctx context.Context, id string, patch domain.FarmPatch) (*domain.Farm, error) {
	farm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(farm)
	if err := validateFarm(farm); err != nil {
		return nil, err
	}
	farm.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, farm); err != nil {
		return nil, err
	}
	return farm, nil
}

// Deactivate soft-deletes the farm; it drops out of listings but stays resolvable.
func (s *FarmService) Deactivate(ctx context.Context, id string) error {
	farm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	farm.IsActive = false
	farm.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, farm); err != nil {
		return err
	}
	s.logger.Info().Str("farm_id", id).Msg("farm deactivated")
	return nil
}

func validateFarm(f *domain.Farm) error {
	var details []string
	if n := len(f.Name); n < 2 || n > 100 {
		details = append(details, "name must be between 2 and 100 characters")
	}
	switch f.FarmType {
	case domain.FarmTypeCrop, domain.FarmTypeLivestock, domain.FarmTypeMixed:
	default:
		details = append(details, "farm_type must be one of crop, livestock, mixed")
	}
	if f.Latitude != nil && (*f.Latitude < -90 || *f.Latitude > 90) {
		details = append(details, "latitude must be between -90 and 90")
	}
	if f.Longitude != nil && (*f.Longitude < -180 || *f.Longitude > 180) {
		details = append(details, "longitude must be between -180 and 180")
	}
	if f.AreaHectares != nil && *f.AreaHectares <= 0 {
		details = append(details, "area_hectares must be positive")
	}
	if len(details) > 0 {
		return domain.Invalid(details...)
	}
	return nil
}

// visibleFarmIDs returns the farms whose children a listing covers: farmID
// alone when given, otherwise every active farm of viewer (all farms for admins).
func visibleFarmIDs(ctx context.Context, farms ports.FarmRepository, viewer *domain.Account, farmID string) ([]string, error) {
	if farmID != "" {
		return []string{farmID}, nil
	}
	owner := viewer.ID
	if viewer.Role == domain.RoleAdmin {
		owner = ""
	}
	list, err := farms.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, f := range list {
		ids = append(ids, f.ID)
	}
	return ids, nil
}
