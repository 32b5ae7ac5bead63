package service

import (
	"context"
	"testing"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

func TestSaleService_CreateComputesTotals(t *testing.T) {
	repo := newStubSaleRepo()
	svc := NewSaleService(repo, nil, 0, discardLogger)

	sale, _, err := svc.Create(context.Background(), newAccount(farmerID, domain.RoleFarmer), &domain.Sale{
		CustomerName: "Mama Njeri",
		Item:         "milk",
		Quantity:     20,
		UnitPrice:    50,
		AmountPaid:   400,
		TotalAmount:  1, // ignored
	}, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if sale.TotalAmount != 1000 || sale.AmountPending != 600 || sale.PaymentStatus != domain.PaymentPartial {
		t.Errorf("unexpected totals %+v", sale)
	}
	if sale.FarmerID != farmerID {
		t.Errorf("sale must belong to the caller, got %q", sale.FarmerID)
	}
}

func TestSaleService_RecordPayment(t *testing.T) {
	repo := newStubSaleRepo()
	svc := NewSaleService(repo, nil, 0, discardLogger)
	sale, _, _ := svc.Create(context.Background(), newAccount(farmerID, domain.RoleFarmer), &domain.Sale{
		CustomerName: "Kamau", Item: "eggs", Quantity: 10, UnitPrice: 15,
	}, "")
	if sale.PaymentStatus != domain.PaymentPending {
		t.Fatalf("new unpaid sale should be pending, got %s", sale.PaymentStatus)
	}

	paid, err := svc.RecordPayment(context.Background(), sale.ID, ptr(150.0), "")
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if paid.PaymentStatus != domain.PaymentPaid || paid.AmountPending != 0 {
		t.Errorf("expected fully paid, got %+v", paid)
	}

	overridden, err := svc.RecordPayment(context.Background(), sale.ID, nil, string(domain.PaymentPartial))
	if err != nil {
		t.Fatalf("status override failed: %v", err)
	}
	if overridden.PaymentStatus != domain.PaymentPartial {
		t.Errorf("explicit status should win, got %s", overridden.PaymentStatus)
	}

	if _, err := svc.RecordPayment(context.Background(), sale.ID, nil, ""); err == nil {
		t.Error("empty payment update must be rejected")
	}
}

func TestSaleService_CreateReplay(t *testing.T) {
	repo := newStubSaleRepo()
	svc := NewSaleService(repo, newStubIdempotency(), 0, discardLogger)
	farmer := newAccount(farmerID, domain.RoleFarmer)
	in := func() *domain.Sale {
		return &domain.Sale{CustomerName: "Otieno", Item: "maize", Quantity: 2, UnitPrice: 3000}
	}

	first, _, _ := svc.Create(context.Background(), farmer, in(), "sale-key")
	second, replayed, err := svc.Create(context.Background(), farmer, in(), "sale-key")
	if err != nil || !replayed || second.ID != first.ID {
		t.Fatalf("expected replay, got replayed=%v id=%s err=%v", replayed, second.ID, err)
	}
	if len(repo.byID) != 1 {
		t.Errorf("expected one stored sale, got %d", len(repo.byID))
	}
}
