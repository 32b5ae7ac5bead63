package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

func TestCropService_StatusRecomputedOnRead(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	crops := newStubCropRepo()
	crops.byID["c1"] = &domain.Crop{
		ID: "c1", FarmID: farmID, Name: "Maize", Status: domain.CropPlanted,
		PlantingDate:        ptr(now.AddDate(0, -3, 0)),
		ExpectedHarvestDate: ptr(now.AddDate(0, 0, -1)),
	}
	crops.byID["c2"] = &domain.Crop{
		ID: "c2", FarmID: farmID, Name: "Beans", Status: domain.CropHarvested,
		ExpectedHarvestDate: ptr(now.AddDate(0, 0, -10)),
	}
	svc := NewCropService(crops, newStubFarmRepo(), fixedClock(now), discardLogger)

	c1, err := svc.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if c1.Status != domain.CropGrowing || !c1.HarvestDue {
		t.Errorf("expected growing and harvest due, got %s due=%v", c1.Status, c1.HarvestDue)
	}

	c2, _ := svc.Get(context.Background(), "c2")
	if c2.Status != domain.CropHarvested || c2.HarvestDue {
		t.Errorf("terminal crop must not be recomputed, got %s due=%v", c2.Status, c2.HarvestDue)
	}
}

func TestCropService_CreateAndSetStatus(t *testing.T) {
	crops := newStubCropRepo()
	svc := NewCropService(crops, newStubFarmRepo(), nil, discardLogger)

	c, err := svc.Create(context.Background(), &domain.Crop{FarmID: farmID, Name: "Sorghum"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.Status != domain.CropPlanted {
		t.Errorf("default status should be planted, got %s", c.Status)
	}

	if _, err := svc.SetStatus(context.Background(), c.ID, "rotten"); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
	updated, err := svc.SetStatus(context.Background(), c.ID, domain.CropFailed)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if updated.Status != domain.CropFailed {
		t.Errorf("expected failed, got %s", updated.Status)
	}
}

func TestCropService_DatesOrder(t *testing.T) {
	svc := NewCropService(newStubCropRepo(), newStubFarmRepo(), nil, discardLogger)
	planted := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), &domain.Crop{
		FarmID: farmID, Name: "Maize",
		PlantingDate:        &planted,
		ExpectedHarvestDate: ptr(planted.AddDate(0, 0, -1)),
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCropService_ListFiltersOnDisplayedStatus(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	crops := newStubCropRepo()
	crops.byID["sown"] = &domain.Crop{
		ID: "sown", FarmID: farmID, Name: "Maize", Status: domain.CropPlanted,
		PlantingDate: ptr(now.AddDate(0, -3, 0)),
	}
	crops.byID["seed"] = &domain.Crop{
		ID: "seed", FarmID: farmID, Name: "Beans", Status: domain.CropPlanted,
		PlantingDate: ptr(now.AddDate(0, 0, 7)),
	}
	crops.byID["done"] = &domain.Crop{ID: "done", FarmID: farmID, Name: "Kale", Status: domain.CropHarvested}
	svc := NewCropService(crops, newStubFarmRepo(), fixedClock(now), discardLogger)
	viewer := newAccount(farmerID, domain.RoleFarmer)

	tests := []struct {
		status string
		want   string
	}{
		{"growing", "sown"},
		{"planted", "seed"},
		{"harvested", "done"},
	}
	for _, tt := range tests {
		got, err := svc.List(context.Background(), viewer, farmID, tt.status)
		if err != nil {
			t.Fatalf("%s: List failed: %v", tt.status, err)
		}
		if len(got) != 1 || got[0].ID != tt.want || string(got[0].Status) != tt.status {
			t.Errorf("%s: expected only %s, got %+v", tt.status, tt.want, got)
		}
	}

	all, _ := svc.List(context.Background(), viewer, farmID, "")
	if len(all) != 3 {
		t.Errorf("unfiltered list should return 3 crops, got %d", len(all))
	}

	var verr *domain.ValidationError
	if _, err := svc.List(context.Background(), viewer, farmID, "rotten"); !errors.As(err, &verr) {
		t.Errorf("unknown status should be a ValidationError, got %v", err)
	}
}
