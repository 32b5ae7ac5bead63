package ports

import (
	"context"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

// Services below assume the caller already passed the authorization
// pipeline for the ids it hands in. Create methods taking an idempotency key
// report replayed=true when the key matched an earlier create.

type FarmService interface {
	Create(ctx context.Context, owner *domain.Account, f *domain.Farm, idempotencyKey string) (farm *domain.Farm, replayed bool, err error)
	Get(ctx context.Context, id string) (*domain.Farm, error)
	// List returns the viewer's active farms, or every active farm for admins.
	List(ctx context.Context, viewer *domain.Account) ([]*domain.Farm, error)
	Update(ctx context.Context, id string, patch domain.FarmPatch) (*domain.Farm, error)
	Deactivate(ctx context.Context, id string) error
}

type LivestockService interface {
	CreateAnimal(ctx context.Context, owner *domain.Account, a *domain.Animal, idempotencyKey string) (animal *domain.Animal, replayed bool, err error)
	GetAnimal(ctx context.Context, id string) (*domain.Animal, error)
	// ListAnimals lists animals on farmID, or on all of the viewer's farms when farmID is empty.
	ListAnimals(ctx context.Context, viewer *domain.Account, farmID, species string) ([]*domain.Animal, error)
	UpdateAnimal(ctx context.Context, id string, patch domain.AnimalPatch) (*domain.Animal, error)
	RemoveAnimal(ctx context.Context, id string) error

	RecordHealth(ctx context.Context, recorder *domain.Account, r *domain.HealthRecord) (*domain.HealthRecord, error)
	GetHealthRecord(ctx context.Context, id string) (*domain.HealthRecord, error)
	ListHealthRecords(ctx context.Context, animalID string) ([]*domain.HealthRecord, error)
	DeleteHealthRecord(ctx context.Context, id string) error
}

type CropService interface {
	Create(ctx context.Context, c *domain.Crop) (*domain.Crop, error)
	Get(ctx context.Context, id string) (*domain.Crop, error)
	List(ctx context.Context, viewer *domain.Account, farmID, status string) ([]*domain.Crop, error)
	Update(ctx context.Context, id string, patch domain.CropPatch) (*domain.Crop, error)
	SetStatus(ctx context.Context, id string, status domain.CropStatus) (*domain.Crop, error)
	Delete(ctx context.Context, id string) error
}

type SaleService interface {
	Create(ctx context.Context, farmer *domain.Account, s *domain.Sale, idempotencyKey string) (sale *domain.Sale, replayed bool, err error)
	Get(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context, farmerID, paymentStatus string) ([]*domain.Sale, error)
	// RecordPayment applies amountPaid (when set) and then an explicit status (when non-empty).
	RecordPayment(ctx context.Context, id string, amountPaid *float64, status string) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

// ContactPatch lists the mutable contact fields.
type ContactPatch struct {
	Name     *string
	Category *string
	Phone    *string
	Email    *string
	Notes    *string
}

type ContactService interface {
	Create(ctx context.Context, owner *domain.Account, c *domain.Contact) (*domain.Contact, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context, ownerID string) ([]*domain.Contact, error)
	Update(ctx context.Context, id string, patch ContactPatch) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

type StatsService interface {
	FarmStats(ctx context.Context, farmID string) (*domain.FarmStats, error)
	// SpeciesStats counts active animals on the viewer's farms, or every farm for admins.
	SpeciesStats(ctx context.Context, viewer *domain.Account) (*domain.SpeciesStats, error)
}

type FeedService interface {
	Create(ctx context.Context, f *domain.Feed) (*domain.Feed, error)
	Get(ctx context.Context, id string) (*domain.Feed, error)
	List(ctx context.Context, viewer *domain.Account, filter domain.FeedFilter) ([]*domain.Feed, error)
	Update(ctx context.Context, id string, patch domain.FeedPatch) (*domain.Feed, error)
	Delete(ctx context.Context, id string) error
	// Summary aggregates the viewer's feedings of the last days days; 0 means 30.
	Summary(ctx context.Context, viewer *domain.Account, days int) (*domain.FeedSummary, error)
}

type ProduceService interface {
	Create(ctx context.Context, owner *domain.Account, p *domain.Produce) (*domain.Produce, error)
	Get(ctx context.Context, id string) (*domain.Produce, error)
	List(ctx context.Context, ownerID, produceType string) ([]*domain.Produce, error)
	Update(ctx context.Context, id string, patch domain.ProducePatch) (*domain.Produce, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, ownerID string) (*domain.ProduceSummary, error)
}
