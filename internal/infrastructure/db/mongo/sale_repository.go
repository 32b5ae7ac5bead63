package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type SaleRepository struct {
	col *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{col: db.Collection(collectionSales)}
}

func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) error {
	return insertOne(ctx, r.col, s)
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (*domain.Sale, error) {
	return findByID[domain.Sale](ctx, r.col, id)
}

func (r *SaleRepository) ListByFarmer(ctx context.Context, farmerID, paymentStatus string) ([]*domain.Sale, error) {
	filter := bson.M{}
	if farmerID != "" {
		filter["farmer_id"] = farmerID
	}
	if paymentStatus != "" {
		filter["payment_status"] = paymentStatus
	}
	return findMany[domain.Sale](ctx, r.col, filter, bson.D{{Key: "sale_date", Value: -1}})
}

func (r *SaleRepository) Update(ctx context.Context, s *domain.Sale) error {
	return replaceByID(ctx, r.col, s.ID, s)
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection(collectionContacts)}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	return insertOne(ctx, r.col, c)
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	return findByID[domain.Contact](ctx, r.col, id)
}

func (r *ContactRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contact, error) {
	return findMany[domain.Contact](ctx, r.col, bson.M{"owner_id": ownerID}, bson.D{{Key: "name", Value: 1}})
}

func (r *ContactRepository) Update(ctx context.Context, c *domain.Contact) error {
	return replaceByID(ctx, r.col, c.ID, c)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

var (
	_ ports.SaleRepository    = (*SaleRepository)(nil)
	_ ports.ContactRepository = (*ContactRepository)(nil)
)
