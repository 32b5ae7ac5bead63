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
	defaultSummaryDays = 30
	maxSummaryDays     = 365
	dailyFeedDays      = 7
)

// FeedService records what animals are fed and what it costs.
type FeedService struct {
	feeds   ports.FeedRepository
	animals ports.AnimalRepository
	farms   ports.FarmRepository
	now     Clock
	logger  zerolog.Logger
}

func NewFeedService(feeds ports.FeedRepository, animals ports.AnimalRepository, farms ports.FarmRepository, now Clock, logger zerolog.Logger) *FeedService {
	if now == nil {
		now = time.Now
	}
	return &FeedService{feeds: feeds, animals: animals, farms: farms, now: now, logger: logger}
}

// Create stores a feeding of f.AnimalID. The feeding inherits the animal's farm.
func (s *FeedService) Create(ctx context.Context, f *domain.Feed) (*domain.Feed, error) {
	animal, err := s.animals.FindByID(ctx, f.AnimalID)
	if err != nil {
		return nil, err
	}
	if f.Unit == "" {
		f.Unit = domain.DefaultFeedUnit
	}
	if err := validateFeed(f); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	f.ID = uuid.NewString()
	f.FarmID = animal.FarmID
	if f.Date.IsZero() {
		f.Date = now
	}
	f.CreatedAt = now
	f.UpdatedAt = now

	if err := s.feeds.Create(ctx, f); err != nil {
		s.logger.Error().Err(err).Msg("failed to create feed")
		return nil, err
	}
	s.logger.Info().Str("feed_id", f.ID).Str("animal_id", f.AnimalID).Msg("feed recorded")
	return f, nil
}

func (s *FeedService) Get(ctx context.Context, id string) (*domain.Feed, error) {
	return s.feeds.FindByID(ctx, id)
}

func (s *FeedService) List(ctx context.Context, viewer *domain.Account, filter domain.FeedFilter) ([]*domain.Feed, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.Invalid("date_from must not be after date_to")
	}
	farmIDs, err := visibleFarmIDs(ctx, s.farms, viewer, "")
	if err != nil {
		return nil, err
	}
	if len(farmIDs) == 0 {
		return []*domain.Feed{}, nil
	}
	return s.feeds.ListByFarms(ctx, farmIDs, filter)
}

func (s *FeedService) Update(ctx context.Context, id string, patch domain.FeedPatch) (*domain.Feed, error) {
	feed, err := s.feeds.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(feed)
	if err := validateFeed(feed); err != nil {
		return nil, err
	}
	feed.UpdatedAt = s.now().UTC()
	if err := s.feeds.Update(ctx, feed); err != nil {
		return nil, err
	}
	return feed, nil
}

func (s *FeedService) Delete(ctx context.Context, id string) error {
	return s.feeds.Delete(ctx, id)
}

// Summary groups the window's feedings by type and unit, and the last week's
// by day. Days outside 1..365 are rejected.
func (s *FeedService) Summary(ctx context.Context, viewer *domain.Account, days int) (*domain.FeedSummary, error) {
	if days == 0 {
		days = defaultSummaryDays
	}
	if days < 1 || days > maxSummaryDays {
		return nil, domain.Invalid("days must be between 1 and 365")
	}

	now := s.now().UTC()
	windowStart := now.AddDate(0, 0, -days)
	from := now.AddDate(0, 0, -max(days, dailyFeedDays))
	feeds, err := s.List(ctx, viewer, domain.FeedFilter{From: &from})
	if err != nil {
		return nil, err
	}

	type typeKey struct{ feedType, unit string }
	byType := map[typeKey]*domain.FeedTypeTotal{}
	summary := &domain.FeedSummary{Days: days, FeedByType: []domain.FeedTypeTotal{}}
	for _, f := range feeds {
		if f.Date.Before(windowStart) {
			continue
		}
		k := typeKey{f.FeedType, f.Unit}
		t, ok := byType[k]
		if !ok {
			t = &domain.FeedTypeTotal{FeedType: f.FeedType, Unit: f.Unit}
			byType[k] = t
		}
		t.TotalQuantity += f.Quantity
		if f.Cost != nil {
			t.TotalCost += *f.Cost
			summary.TotalCost += *f.Cost
		}
	}
	for _, t := range byType {
		summary.FeedByType = append(summary.FeedByType, *t)
	}
	slices.SortFunc(summary.FeedByType, func(a, b domain.FeedTypeTotal) int {
		return cmp.Or(cmp.Compare(a.FeedType, b.FeedType), cmp.Compare(a.Unit, b.Unit))
	})

	summary.DailyFeed = dailyFeed(feeds, now)
	return summary, nil
}

// dailyFeed returns one entry per day of the last week, oldest first.
func dailyFeed(feeds []*domain.Feed, now time.Time) []domain.DailyFeed {
	today := now.Truncate(24 * time.Hour)
	out := make([]domain.DailyFeed, dailyFeedDays)
	index := make(map[string]int, dailyFeedDays)
	animals := make([]map[string]bool, dailyFeedDays)
	for i := range out {
		day := today.AddDate(0, 0, i-dailyFeedDays+1).Format(time.DateOnly)
		out[i].Date = day
		index[day] = i
		animals[i] = map[string]bool{}
	}
	for _, f := range feeds {
		i, ok := index[f.Date.UTC().Format(time.DateOnly)]
		if !ok {
			continue
		}
		out[i].TotalQuantity += f.Quantity
		animals[i][f.AnimalID] = true
	}
	for i := range out {
		out[i].AnimalsFed = len(animals[i])
	}
	return out
}

func validateFeed(f *domain.Feed) error {
	var details []string
	f.FeedType = strings.TrimSpace(f.FeedType)
	if n := len(f.FeedType); n < 1 || n > 100 {
		details = append(details, "feed_type must be between 1 and 100 characters")
	}
	if f.Quantity <= 0 {
		details = append(details, "quantity must be greater than 0")
	}
	if f.Cost != nil && *f.Cost <= 0 {
		details = append(details, "cost must be greater than 0")
	}
	if len(details) > 0 {
		return domain.Invalid(details...)
	}
	return nil
}
