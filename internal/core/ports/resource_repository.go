package ports

import (
	"context"
	"time"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

// OwnerLookup fetches the owner-relevant projection of a stored resource.
// It returns domain.ErrNotFound when no resource of that kind has the id.
type OwnerLookup interface {
	LookupOwner(ctx context.Context, kind domain.ResourceKind, id string) (domain.OwnerRef, error)
}

// Find/Update/Delete methods below return domain.ErrNotFound for a missing id.

type FarmRepository interface {
	Create(ctx context.Context, f *domain.Farm) error
	FindByID(ctx context.Context, id string) (*domain.Farm, error)
	// ListByOwner returns active farms; an empty ownerID lists every active farm.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Farm, error)
	Update(ctx context.Context, f *domain.Farm) error
}

type AnimalRepository interface {
	Create(ctx context.Context, a *domain.Animal) error
	FindByID(ctx context.Context, id string) (*domain.Animal, error)
	// ExistsTag reports whether an active animal on farmID already uses tag.
	ExistsTag(ctx context.Context, farmID, tag string) (bool, error)
	ListByFarms(ctx context.Context, farmIDs []string, species string) ([]*domain.Animal, error)
	Update(ctx context.Context, a *domain.Animal) error
}

type CropRepository interface {
	Create(ctx context.Context, c *domain.Crop) error
	FindByID(ctx context.Context, id string) (*domain.Crop, error)
	ListByFarms(ctx context.Context, farmIDs []string, status string) ([]*domain.Crop, error)
	Update(ctx context.Context, c *domain.Crop) error
	Delete(ctx context.Context, id string) error
}

type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) error
	FindByID(ctx context.Context, id string) (*domain.Sale, error)
	// ListByFarmer filters by farmer and, when set, payment status; an empty farmerID lists every sale.
	ListByFarmer(ctx context.Context, farmerID, paymentStatus string) ([]*domain.Sale, error)
	Update(ctx context.Context, s *domain.Sale) error
	Delete(ctx context.Context, id string) error
}

type HealthRecordRepository interface {
	Create(ctx context.Context, r *domain.HealthRecord) error
	FindByID(ctx context.Context, id string) (*domain.HealthRecord, error)
	ListByAnimal(ctx context.Context, animalID string) ([]*domain.HealthRecord, error)
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contact, error)
	Update(ctx context.Context, c *domain.Contact) error
	Delete(ctx context.Context, id string) error
}

type FeedRepository interface {
	Create(ctx context.Context, f *domain.Feed) error
	FindByID(ctx context.Context, id string) (*domain.Feed, error)
	// ListByFarms returns feedings on farmIDs matching filter, newest date first.
	ListByFarms(ctx context.Context, farmIDs []string, filter domain.FeedFilter) ([]*domain.Feed, error)
	Update(ctx context.Context, f *domain.Feed) error
	Delete(ctx context.Context, id string) error
}

type ProduceRepository interface {
	Create(ctx context.Context, p *domain.Produce) error
	FindByID(ctx context.Context, id string) (*domain.Produce, error)
	// ListByOwner filters by type when set.
	ListByOwner(ctx context.Context, ownerID, produceType string) ([]*domain.Produce, error)
	Update(ctx context.Context, p *domain.Produce) error
	Delete(ctx context.Context, id string) error
}

// IdempotencyStore remembers which resource a client-supplied
// Idempotency-Key produced, scoped per account and resource kind.
type IdempotencyStore interface {
	// Lookup returns the stored resource id, or "" when the key is unseen.
	Lookup(ctx context.Context, scope, key string) (string, error)
	Remember(ctx context.Context, scope, key, resourceID string, ttl time.Duration) error
}
