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

type SaleService struct {
	repo   ports.SaleRepository
	idem   idempotency
	logger zerolog.Logger
}

func NewSaleService(repo ports.SaleRepository, idem ports.IdempotencyStore, idemTTL time.Duration, logger zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, idem: newIdempotency(idem, idemTTL, logger), logger: logger}
}

// Create records a sale for farmer. The total is always quantity times unit
// price; any amount already paid sets the initial payment status.
func (s *SaleService) Create(ctx context.Context, farmer *domain.Account, sale *domain.Sale, idempotencyKey string) (*domain.Sale, bool, error) {
	scope := scopeFor(domain.KindSale, farmer.ID)
	if id := s.idem.seen(ctx, scope, idempotencyKey); id != "" {
		existing, err := s.repo.FindByID(ctx, id)
		if err == nil {
			s.logger.Info().Str("idempotency_key", idempotencyKey).Str("sale_id", id).Msg("idempotent replay")
			return existing, true, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, err
		}
	}

	if err := validateSale(sale); err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	sale.ID = uuid.NewString()
	sale.FarmerID = farmer.ID
	sale.TotalAmount = sale.Quantity * sale.UnitPrice
	sale.ApplyPayment(sale.AmountPaid)
	if sale.SaleDate.IsZero() {
		sale.SaleDate = now
	}
	sale.CreatedAt = now
	sale.UpdatedAt = now

	if err := s.repo.Create(ctx, sale); err != nil {
		s.logger.Error().Err(err).Msg("failed to create sale")
		return nil, false, err
	}
	s.idem.remember(ctx, scope, idempotencyKey, sale.ID)
	s.logger.Info().Str("sale_id", sale.ID).Str("farmer_id", farmer.ID).Float64("total", sale.TotalAmount).Msg("sale recorded")
	return sale, false, nil
}

func (s *SaleService) Get(ctx context.Context, id string) (*domain.Sale, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SaleService) List(ctx context.Context, farmerID, paymentStatus string) ([]*domain.Sale, error) {
	if paymentStatus != "" && !domain.ValidPaymentStatus(paymentStatus) {
		return nil, domain.Invalid("payment_status must be one of pending, partial, paid")
	}
	return s.repo.ListByFarmer(ctx, farmerID, paymentStatus)
}

func (s *SaleService) RecordPayment(ctx context.Context, id string, amountPaid *float64, status string) (*domain.Sale, error) {
	if amountPaid == nil && status == "" {
		return nil, domain.Invalid("amount_paid or payment_status is required")
	}
	if amountPaid != nil && *amountPaid < 0 {
		return nil, domain.Invalid("amount_paid must not be negative")
	}
	if status != "" && !domain.ValidPaymentStatus(status) {
		return nil, domain.Invalid("payment_status must be one of pending, partial, paid")
	}

	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if amountPaid != nil {
		sale.ApplyPayment(*amountPaid)
	}
	if status != "" {
		sale.PaymentStatus = domain.PaymentStatus(status)
	}
	sale.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	s.logger.Info().Str("sale_id", id).Str("payment_status", string(sale.PaymentStatus)).Msg("payment recorded")
	return sale, nil
}

func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateSale(sale *domain.Sale) error {
	var details []string
	if sale.CustomerName == "" {
		details = append(details, "customer_name is required")
	}
	if sale.Item == "" {
		details = append(details, "item is required")
	}
	if sale.Quantity <= 0 {
		details = append(details, "quantity must be positive")
	}
	if sale.UnitPrice < 0 {
		details = append(details, "unit_price must not be negative")
	}
	if sale.AmountPaid < 0 {
		details = append(details, "amount_paid must not be negative")
	}
	if len(details) > 0 {
		return domain.Invalid(details...)
	}
	return nil
}
