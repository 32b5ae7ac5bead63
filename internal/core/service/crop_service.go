package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type CropService struct {
	crops  ports.CropRepository
	farms  ports.FarmRepository
	now    Clock
	logger zerolog.Logger
}

func NewCropService(crops ports.CropRepository, farms ports.FarmRepository, now Clock, logger zerolog.Logger) *CropService {
	if now == nil {
		now = time.Now
	}
	return &CropService{crops: crops, farms: farms, now: now, logger: logger}
}

func (s *CropService) Create(ctx context.Context, c *domain.Crop) (*domain.Crop, error) {
	if c.Status == "" {
		c.Status = domain.CropPlanted
	}
	if err := validateCrop(c); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.crops.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create crop")
		return nil, err
	}
	s.logger.Info().Str("crop_id", c.ID).Str("farm_id", c.FarmID).Msg("crop created")
	c.Refresh(now)
	return c, nil
}

func (s *CropService) Get(ctx context.Context, id string) (*domain.Crop, error) {
	crop, err := s.crops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	crop.Refresh(s.now())
	return crop, nil
}

func (s *CropService) List(ctx context.Context, viewer *domain.Account, farmID, status string) ([]*domain.Crop, error) {
	farmIDs, err := visibleFarmIDs(ctx, s.farms, viewer, farmID)
	if err != nil {
		return nil, err
	}
	if len(farmIDs) == 0 {
		return []*domain.Crop{}, nil
	}
	want := domain.CropStatus(status)
	if want != "" && !validCropStatus(want) {
		return nil, domain.Invalid("status must be one of planted, growing, harvested, failed")
	}

	// Planted and growing are recomputed from dates, so filter after Refresh.
	stored := status
	if want != "" && !want.Terminal() {
		stored = ""
	}
	crops, err := s.crops.ListByFarms(ctx, farmIDs, stored)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]*domain.Crop, 0, len(crops))
	for _, c := range crops {
		c.Refresh(now)
		if want == "" || c.Status == want {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *CropService) Update(ctx context.Context, id string, patch domain.CropPatch) (*domain.Crop, error) {
	crop, err := s.crops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(crop)
	if err := validateCrop(crop); err != nil {
		return nil, err
	}
	crop.UpdatedAt = s.now().UTC()
	if err := s.crops.Update(ctx, crop); err != nil {
		return nil, err
	}
	crop.Refresh(s.now())
	return crop, nil
}

// SetStatus stores an explicit status, which is how a crop reaches harvested or failed.
func (s *CropService) SetStatus(ctx context.Context, id string, status domain.CropStatus) (*domain.Crop, error) {
	if !validCropStatus(status) {
		return nil, domain.Invalid("status must be one of planted, growing, harvested, failed")
	}
	crop, err := s.crops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	crop.Status = status
	crop.UpdatedAt = s.now().UTC()
	if err := s.crops.Update(ctx, crop); err != nil {
		return nil, err
	}
	s.logger.Info().Str("crop_id", id).Str("status", string(status)).Msg("crop status changed")
	crop.Refresh(s.now())
	return crop, nil
}

func (s *CropService) Delete(ctx context.Context, id string) error {
	return s.crops.Delete(ctx, id)
}

func validCropStatus(s domain.CropStatus) bool {
	switch s {
	case domain.CropPlanted, domain.CropGrowing, domain.CropHarvested, domain.CropFailed:
		return true
	}
	return false
}

func validateCrop(c *domain.Crop) error {
	var details []string
	if n := len(c.Name); n < 1 || n > 100 {
		details = append(details, "name must be between 1 and 100 characters")
	}
	if !validCropStatus(c.Status) {
		details = append(details, "status must be one of planted, growing, harvested, failed")
	}
	if c.AreaHectares != nil && *c.AreaHectares <= 0 {
		details = append(details, "area_hectares must be positive")
	}
	if c.PlantingDate != nil && c.ExpectedHarvestDate != nil && c.ExpectedHarvestDate.Before(*c.PlantingDate) {
		details = append(details, "expected_harvest_date must not precede planting_date")
	}
	if len(details) > 0 {
		return domain.Invalid(details...)
	}
	return nil
}
