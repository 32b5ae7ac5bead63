package service

import (
	"context"
	"math"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

// StatsService computes read-only farm and herd summaries.
type StatsService struct {
	farms   ports.FarmRepository
	animals ports.AnimalRepository
	crops   ports.CropRepository
}

func NewStatsService(farms ports.FarmRepository, animals ports.AnimalRepository, crops ports.CropRepository) *StatsService {
	return &StatsService{farms: farms, animals: animals, crops: crops}
}

func (s *StatsService) FarmStats(ctx context.Context, farmID string) (*domain.FarmStats, error) {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	ids := []string{farm.ID}
	animals, err := s.animals.ListByFarms(ctx, ids, "")
	if err != nil {
		return nil, err
	}
	crops, err := s.crops.ListByFarms(ctx, ids, "")
	if err != nil {
		return nil, err
	}

	stats := &domain.FarmStats{LivestockCount: len(animals), CropsCount: len(crops)}
	for _, c := range crops {
		if c.AreaHectares != nil {
			stats.TotalCropAreaHectares += *c.AreaHectares
		}
	}
	if farm.AreaHectares != nil && *farm.AreaHectares > 0 {
		stats.UtilizationPercentage = round1(stats.TotalCropAreaHectares / *farm.AreaHectares * 100)
	}
	return stats, nil
}

func (s *StatsService) SpeciesStats(ctx context.Context, viewer *domain.Account) (*domain.SpeciesStats, error) {
	stats := &domain.SpeciesStats{Species: map[string]int{}}
	farmIDs, err := visibleFarmIDs(ctx, s.farms, viewer, "")
	if err != nil {
		return nil, err
	}
	if len(farmIDs) == 0 {
		return stats, nil
	}
	animals, err := s.animals.ListByFarms(ctx, farmIDs, "")
	if err != nil {
		return nil, err
	}
	for _, a := range animals {
		stats.Species[a.Species]++
	}
	stats.Total = len(animals)
	return stats, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
