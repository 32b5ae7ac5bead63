package service

import (
	"context"
	"errors"
	"testing"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

func newTestLivestock() (*LivestockService, *stubAnimalRepo, *stubHealthRepo) {
	farms := newStubFarmRepo(
		&domain.Farm{ID: farmID, OwnerID: farmerID, Name: "Mine", IsActive: true},
		&domain.Farm{ID: missingID, OwnerID: otherID, Name: "Theirs", IsActive: true},
	)
	animals := newStubAnimalRepo()
	records := newStubHealthRepo()
	return NewLivestockService(animals, records, farms, newStubIdempotency(), 0, discardLogger), animals, records
}

func cow(farm, tag string) *domain.Animal {
	return &domain.Animal{FarmID: farm, TagNumber: tag, Species: "cattle", Gender: "female"}
}

func TestLivestockService_CreateAnimal(t *testing.T) {
	svc, _, _ := newTestLivestock()
	owner := newAccount(farmerID, domain.RoleFarmer)

	a, _, err := svc.CreateAnimal(context.Background(), owner, cow(farmID, "KE-001"), "")
	if err != nil {
		t.Fatalf("CreateAnimal failed: %v", err)
	}
	if a.HealthStatus != domain.HealthHealthy || !a.IsActive {
		t.Errorf("unexpected defaults %+v", a)
	}

	if _, _, err := svc.CreateAnimal(context.Background(), owner, cow(farmID, "KE-001"), ""); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate tag must conflict, got %v", err)
	}
	if _, _, err := svc.CreateAnimal(context.Background(), owner, cow(missingID, "KE-001"), ""); err != nil {
		t.Fatalf("same tag on another farm is allowed: %v", err)
	}
}

func TestLivestockService_CreateAnimal_Validation(t *testing.T) {
	svc, _, _ := newTestLivestock()
	a := cow(farmID, "KE-002")
	a.Species = "llama"

	var verr *domain.ValidationError
	if _, _, err := svc.CreateAnimal(context.Background(), newAccount(farmerID, domain.RoleFarmer), a, ""); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLivestockService_ListAnimals(t *testing.T) {
	svc, animals, _ := newTestLivestock()
	animals.byID["a1"] = &domain.Animal{ID: "a1", FarmID: farmID, Species: "cattle", IsActive: true}
	animals.byID["a2"] = &domain.Animal{ID: "a2", FarmID: missingID, Species: "goats", IsActive: true}
	animals.byID["a3"] = &domain.Animal{ID: "a3", FarmID: farmID, Species: "goats", IsActive: false}

	own, _ := svc.ListAnimals(context.Background(), newAccount(farmerID, domain.RoleFarmer), "", "")
	if len(own) != 1 || own[0].ID != "a1" {
		t.Fatalf("farmer should see own active animals, got %+v", own)
	}
	all, _ := svc.ListAnimals(context.Background(), newAccount(adminID, domain.RoleAdmin), "", "")
	if len(all) != 2 {
		t.Fatalf("admin should see all active animals, got %d", len(all))
	}
	goats, _ := svc.ListAnimals(context.Background(), newAccount(adminID, domain.RoleAdmin), "", "goats")
	if len(goats) != 1 || goats[0].ID != "a2" {
		t.Fatalf("species filter failed, got %+v", goats)
	}
	none, err := svc.ListAnimals(context.Background(), newAccount(vetID, domain.RoleVet), "", "")
	if err != nil || len(none) != 0 {
		t.Fatalf("account without farms should see nothing, got %+v (%v)", none, err)
	}
}

func TestLivestockService_RecordHealth(t *testing.T) {
	svc, animals, records := newTestLivestock()
	animals.byID[animalID] = &domain.Animal{ID: animalID, FarmID: farmID, Species: "cattle", IsActive: true}

	rec, err := svc.RecordHealth(context.Background(), newAccount(vetID, domain.RoleVet), &domain.HealthRecord{AnimalID: animalID, Diagnosis: "mastitis"})
	if err != nil {
		t.Fatalf("RecordHealth failed: %v", err)
	}
	if rec.FarmID != farmID || rec.RecordedBy != vetID || rec.VisitDate.IsZero() {
		t.Errorf("unexpected record %+v", rec)
	}
	if len(records.byID) != 1 {
		t.Errorf("expected 1 stored record, got %d", len(records.byID))
	}

	list, _ := svc.ListHealthRecords(context.Background(), animalID)
	if len(list) != 1 {
		t.Errorf("expected 1 record for animal, got %d", len(list))
	}
}

func TestLivestockService_RemoveAnimalIsSoft(t *testing.T) {
	svc, animals, _ := newTestLivestock()
	animals.byID[animalID] = &domain.Animal{ID: animalID, FarmID: farmID, Species: "cattle", IsActive: true}

	if err := svc.RemoveAnimal(context.Background(), animalID); err != nil {
		t.Fatalf("RemoveAnimal failed: %v", err)
	}
	if animals.byID[animalID].IsActive {
		t.Error("animal should be inactive")
	}
}
