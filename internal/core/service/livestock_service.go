package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

var (
	validSpecies = map[string]bool{
		"cattle": true, "sheep": true, "pigs": true,
		"poultry": true, "goats": true, "horses": true,
	}
	validGender = map[string]bool{"male": true, "female": true}
	validHealth = map[string]bool{
		domain.HealthHealthy: true, domain.HealthSick: true, domain.HealthUnderTreatment: true,
	}
)

// LivestockService manages animals and their health records.
type LivestockService struct {
	animals ports.AnimalRepository
	records ports.HealthRecordRepository
	farms   ports.FarmRepository
	idem    idempotency
	logger  zerolog.Logger
}

func NewLivestockService(
	animals ports.AnimalRepository,
	records ports.HealthRecordRepository,
	farms ports.FarmRepository,
	idem ports.IdempotencyStore,
	idemTTL time.Duration,
	logger zerolog.Logger,
) *LivestockService {
	return &LivestockService{
		animals: animals,
		records: records,
		farms:   farms,
		idem:    newIdempotency(idem, idemTTL, logger),
		logger:  logger,
	}
}

func (s *LivestockService) CreateAnimal(ctx context.Context, owner *domain.Account, a *domain.Animal, idempotencyKey string) (*domain.Animal, bool, error) {
	scope := scopeFor(domain.KindAnimal, owner.ID)
	if id := s.idem.seen(ctx, scope, idempotencyKey); id != "" {
		existing, err := s.animals.FindByID(ctx, id)
		if err == nil {
			s.logger.Info().Str("idempotency_key", idempotencyKey).Str("animal_id", id).Msg("idempotent replay")
			return existing, true, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, err
		}
	}

	if a.HealthStatus == "" {
		a.HealthStatus = domain.HealthHealthy
	}
	if err := validateAnimal(a); err != nil {
		return nil, false, err
	}

	taken, err := s.animals.ExistsTag(ctx, a.FarmID, a.TagNumber)
	if err != nil {
		return nil, false, err
	}
	if taken {
		return nil, false, fmt.Errorf("tag %s already used on this farm: %w", a.TagNumber, domain.ErrConflict)
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.IsActive = true
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.animals.Create(ctx, a); err != nil {
		s.logger.Error().Err(err).Msg("failed to create animal")
		return nil, false, err
	}
	s.idem.remember(ctx, scope, idempotencyKey, a.ID)
	s.logger.Info().Str("animal_id", a.ID).Str("farm_id", a.FarmID).Msg("animal created")
	return a, false, nil
}

func (s *LivestockService) GetAnimal(ctx context.Context, id string) (*domain.Animal, error) {
	return s.animals.FindByID(ctx, id)
}

func (s *LivestockService) ListAnimals(ctx context.Context, viewer *domain.Account, farmID, species string) ([]*domain.Animal, error) {
	farmIDs, err := visibleFarmIDs(ctx, s.farms, viewer, farmID)
	if err != nil {
		return nil, err
	}
	if len(farmIDs) == 0 {
		return []*domain.Animal{}, nil
	}
	return s.animals.ListByFarms(ctx, farmIDs, species)
}

func (s *LivestockService) UpdateAnimal(ctx context.Context, id string, patch domain.AnimalPatch) (*domain.Animal, error) {
	animal, err := s.animals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(animal)
	if err := validateAnimal(animal); err != nil {
		return nil, err
	}
	animal.UpdatedAt = time.Now().UTC()
	if err := s.animals.Update(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// RemoveAnimal soft-deletes the animal.
func (s *LivestockService) RemoveAnimal(ctx context.Context, id string) error {
	animal, err := s.animals.FindByID(ctx, id)
	if err != nil {
		return err
	}
	animal.IsActive = false
	animal.UpdatedAt = time.Now().UTC()
	return s.animals.Update(ctx, animal)
}

// RecordHealth stores a visit for r.AnimalID. The record inherits the
// animal's farm and is attributed to recorder.
func (s *LivestockService) RecordHealth(ctx context.Context, recorder *domain.Account, r *domain.HealthRecord) (*domain.HealthRecord, error) {
	animal, err := s.animals.FindByID(ctx, r.AnimalID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.FarmID = animal.FarmID
	r.RecordedBy = recorder.ID
	if r.VisitDate.IsZero() {
		r.VisitDate = now
	}
	r.CreatedAt = now

	if err := s.records.Create(ctx, r); err != nil {
		s.logger.Error().Err(err).Msg("failed to create health record")
		return nil, err
	}
	s.logger.Info().Str("record_id", r.ID).Str("animal_id", r.AnimalID).Str("recorded_by", recorder.ID).Msg("health record created")
	return r, nil
}

func (s *LivestockService) GetHealthRecord(ctx context.Context, id string) (*domain.HealthRecord, error) {
	return s.records.FindByID(ctx, id)
}

func (s *LivestockService) ListHealthRecords(ctx context.Context, animalID string) ([]*domain.HealthRecord, error) {
	return s.records.ListByAnimal(ctx, animalID)
}

func (s *LivestockService) DeleteHealthRecord(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

func validateAnimal(a *domain.Animal) error {
	var details []string
	if n := len(a.TagNumber); n < 1 || n > 50 {
		details = append(details, "tag_number must be between 1 and 50 characters")
	}
	if !validSpecies[a.Species] {
		details = append(details, "species must be one of cattle, sheep, pigs, poultry, goats, horses")
	}
	if a.Gender != "" && !validGender[a.Gender] {
		details = append(details, "gender must be male or female")
	}
	if !validHealth[a.HealthStatus] {
		details = append(details, "health_status must be one of healthy, sick, under_treatment")
	}
	if len(details) > 0 {
		return domain.Invalid(details...)
	}
	return nil
}
