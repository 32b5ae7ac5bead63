package service

import (
	"context"
	"errors"
	"testing"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

func TestStatsService_FarmStats(t *testing.T) {
	farms := newStubFarmRepo(&domain.Farm{ID: farmID, OwnerID: farmerID, IsActive: true, AreaHectares: ptr(12.0)})
	animals := newStubAnimalRepo()
	animals.byID["a1"] = &domain.Animal{ID: "a1", FarmID: farmID, Species: "cattle", IsActive: true}
	animals.byID["a2"] = &domain.Animal{ID: "a2", FarmID: farmID, Species: "goats", IsActive: true}
	animals.byID["a3"] = &domain.Animal{ID: "a3", FarmID: farmID, Species: "goats", IsActive: false}
	crops := newStubCropRepo()
	crops.byID["c1"] = &domain.Crop{ID: "c1", FarmID: farmID, AreaHectares: ptr(2.5)}
	crops.byID["c2"] = &domain.Crop{ID: "c2", FarmID: farmID, AreaHectares: ptr(1.5)}
	crops.byID["c3"] = &domain.Crop{ID: "c3", FarmID: farmID}
	crops.byID["c4"] = &domain.Crop{ID: "c4", FarmID: missingID, AreaHectares: ptr(9.0)}

	stats, err := NewStatsService(farms, animals, crops).FarmStats(context.Background(), farmID)
	if err != nil {
		t.Fatalf("FarmStats failed: %v", err)
	}
	want := domain.FarmStats{LivestockCount: 2, CropsCount: 3, TotalCropAreaHectares: 4, UtilizationPercentage: 33.3}
	if *stats != want {
		t.Fatalf("expected %+v, got %+v", want, *stats)
	}
}

func TestStatsService_FarmStatsWithoutArea(t *testing.T) {
	farms := newStubFarmRepo(&domain.Farm{ID: farmID, OwnerID: farmerID, IsActive: true})
	crops := newStubCropRepo()
	crops.byID["c1"] = &domain.Crop{ID: "c1", FarmID: farmID, AreaHectares: ptr(2.0)}

	stats, err := NewStatsService(farms, newStubAnimalRepo(), crops).FarmStats(context.Background(), farmID)
	if err != nil {
		t.Fatalf("FarmStats failed: %v", err)
	}
	if stats.UtilizationPercentage != 0 || stats.TotalCropAreaHectares != 2 {
		t.Fatalf("unexpected stats %+v", *stats)
	}

	_, err = NewStatsService(farms, newStubAnimalRepo(), crops).FarmStats(context.Background(), missingID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatsService_SpeciesStatsScopedToViewer(t *testing.T) {
	const otherFarm = "dddddddd-dddd-4ddd-8ddd-dddddddddddd"
	farms := newStubFarmRepo(
		&domain.Farm{ID: farmID, OwnerID: farmerID, IsActive: true},
		&domain.Farm{ID: otherFarm, OwnerID: otherID, IsActive: true},
	)
	animals := newStubAnimalRepo()
	animals.byID["a1"] = &domain.Animal{ID: "a1", FarmID: farmID, Species: "cattle", IsActive: true}
	animals.byID["a2"] = &domain.Animal{ID: "a2", FarmID: farmID, Species: "cattle", IsActive: true}
	animals.byID["a3"] = &domain.Animal{ID: "a3", FarmID: farmID, Species: "sheep", IsActive: true}
	animals.byID["a4"] = &domain.Animal{ID: "a4", FarmID: otherFarm, Species: "pigs", IsActive: true}
	svc := NewStatsService(farms, animals, newStubCropRepo())

	stats, err := svc.SpeciesStats(context.Background(), newAccount(farmerID, domain.RoleFarmer))
	if err != nil {
		t.Fatalf("SpeciesStats failed: %v", err)
	}
	if stats.Total != 3 || stats.Species["cattle"] != 2 || stats.Species["sheep"] != 1 || stats.Species["pigs"] != 0 {
		t.Fatalf("unexpected stats %+v", *stats)
	}

	all, _ := svc.SpeciesStats(context.Background(), newAccount(adminID, domain.RoleAdmin))
	if all.Total != 4 {
		t.Fatalf("admin should count every farm, got %d", all.Total)
	}

	none, _ := svc.SpeciesStats(context.Background(), newAccount(vetID, domain.RoleVet))
	if none.Total != 0 || none.Species == nil {
		t.Fatalf("viewer without farms gets an empty map, got %+v", *none)
	}
}
