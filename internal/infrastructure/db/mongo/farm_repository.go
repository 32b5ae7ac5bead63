package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type FarmRepository struct {
	col *mongo.Collection
}

func NewFarmRepository(db *mongo.Database) *FarmRepository {
	return &FarmRepository{col: db.Collection(collectionFarms)}
}

func (r *FarmRepository) Create(ctx context.Context, f *domain.Farm) error {
	return insertOne(ctx, r.col, f)
}

func (r *FarmRepository) FindByID(ctx context.Context, id string) (*domain.Farm, error) {
	return findByID[domain.Farm](ctx, r.col, id)
}

func (r *FarmRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Farm, error) {
	filter := bson.M{"is_active": true}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}
	return findMany[domain.Farm](ctx, r.col, filter, bson.D{{Key: "created_at", Value: -1}})
}

func (r *FarmRepository) Update(ctx context.Context, f *domain.Farm) error {
	return replaceByID(ctx, r.col, f.ID, f)
}

var _ ports.FarmRepository = (*FarmRepository)(nil)
