package service

import (
	"context"
	"errors"
	"testing"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

func TestFarmService_Create(t *testing.T) {
	repo := newStubFarmRepo()
	svc := NewFarmService(repo, nil, 0, discardLogger)

	farm, replayed, err := svc.Create(context.Background(), newAccount(farmerID, domain.RoleFarmer), &domain.Farm{Name: "Shamba"}, "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if replayed {
		t.Error("first create must not be a replay")
	}
	if farm.OwnerID != farmerID || !farm.IsActive || farm.FarmType != domain.FarmTypeMixed {
		t.Errorf("unexpected farm %+v", farm)
	}
	if _, ok := repo.byID[farm.ID]; !ok {
		t.Error("farm not stored")
	}
}

func TestFarmService_Create_Validation(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), nil, 0, discardLogger)
	owner := newAccount(farmerID, domain.RoleFarmer)

	bad := []*domain.Farm{
		{Name: "x"},
		{Name: "Shamba", FarmType: "orchard"},
		{Name: "Shamba", Latitude: ptr(91.0)},
		{Name: "Shamba", AreaHectares: ptr(0.0)},
	}
	for _, f := range bad {
		var verr *domain.ValidationError
		if _, _, err := svc.Create(context.Background(), owner, f, ""); !errors.As(err, &verr) {
			t.Errorf("%+v: expected ValidationError, got %v", f, err)
		}
	}
}

func TestFarmService_Create_IdempotencyReplay(t *testing.T) {
	repo := newStubFarmRepo()
	idem := newStubIdempotency()
	svc := NewFarmService(repo, idem, 0, discardLogger)
	owner := newAccount(farmerID, domain.RoleFarmer)

	first, _, err := svc.Create(context.Background(), owner, &domain.Farm{Name: "Shamba"}, "key-1")
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, replayed, err := svc.Create(context.Background(), owner, &domain.Farm{Name: "Shamba"}, "key-1")
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !replayed || second.ID != first.ID {
		t.Fatalf("expected replay of %s, got %s (replayed=%v)", first.ID, second.ID, replayed)
	}
	if len(repo.byID) != 1 {
		t.Errorf("expected 1 stored farm, got %d", len(repo.byID))
	}

	// Keys are scoped per account.
	if _, replayed, _ := svc.Create(context.Background(), newAccount(otherID, domain.RoleFarmer), &domain.Farm{Name: "Shamba"}, "key-1"); replayed {
		t.Error("another account's key must not replay")
	}
}

func TestFarmService_Create_IdempotencyStoreDown(t *testing.T) {
	idem := newStubIdempotency()
	idem.err = errors.New("redis down")
	svc := NewFarmService(newStubFarmRepo(), idem, 0, discardLogger)

	if _, _, err := svc.Create(context.Background(), newAccount(farmerID, domain.RoleFarmer), &domain.Farm{Name: "Shamba"}, "key-1"); err != nil {
		t.Fatalf("create must succeed without the idempotency store: %v", err)
	}
}

func TestFarmService_ListAndDeactivate(t *testing.T) {
	repo := newStubFarmRepo(
		&domain.Farm{ID: farmID, OwnerID: farmerID, Name: "Mine", IsActive: true},
		&domain.Farm{ID: missingID, OwnerID: otherID, Name: "Theirs", IsActive: true},
	)
	svc := NewFarmService(repo, nil, 0, discardLogger)

	own, _ := svc.List(context.Background(), newAccount(farmerID, domain.RoleFarmer))
	if len(own) != 1 || own[0].ID != farmID {
		t.Fatalf("farmer should see only own farm, got %+v", own)
	}
	all, _ := svc.List(context.Background(), newAccount(adminID, domain.RoleAdmin))
	if len(all) != 2 {
		t.Fatalf("admin should see all farms, got %d", len(all))
	}

	if err := svc.Deactivate(context.Background(), farmID); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	own, _ = svc.List(context.Background(), newAccount(farmerID, domain.RoleFarmer))
	if len(own) != 0 {
		t.Errorf("deactivated farm still listed")
	}
	if _, err := svc.Get(context.Background(), farmID); err != nil {
		t.Errorf("deactivated farm should still resolve: %v", err)
	}
}

func TestFarmService_UpdateKeepsOwner(t *testing.T) {
	repo := newStubFarmRepo(&domain.Farm{ID: farmID, OwnerID: farmerID, Name: "Mine", FarmType: domain.FarmTypeCrop, IsActive: true})
	svc := NewFarmService(repo, nil, 0, discardLogger)

	farm, err := svc.Update(context.Background(), farmID, domain.FarmPatch{Name: ptr("Renamed")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if farm.Name != "Renamed" || farm.OwnerID != farmerID {
		t.Errorf("unexpected farm after update %+v", farm)
	}
}
