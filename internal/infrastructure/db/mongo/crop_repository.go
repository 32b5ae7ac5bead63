package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type CropRepository struct {
	col *mongo.Collection
}

func NewCropRepository(db *mongo.Database) *CropRepository {
	return &CropRepository{col: db.Collection(collectionCrops)}
}

func (r *CropRepository) Create(ctx context.Context, c *domain.Crop) error {
	return insertOne(ctx, r.col, c)
}

func (r *CropRepository) FindByID(ctx context.Context, id string) (*domain.Crop, error) {
	return findByID[domain.Crop](ctx, r.col, id)
}

func (r *CropRepository) ListByFarms(ctx context.Context, farmIDs []string, status string) ([]*domain.Crop, error) {
	filter := byFarms(farmIDs)
	if status != "" {
		filter["status"] = status
	}
	return findMany[domain.Crop](ctx, r.col, filter, bson.D{{Key: "planting_date", Value: -1}})
}

func (r *CropRepository) Update(ctx context.Context, c *domain.Crop) error {
	return replaceByID(ctx, r.col, c.ID, c)
}

func (r *CropRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

var _ ports.CropRepository = (*CropRepository)(nil)
