package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type FeedRepository struct {
	col *mongo.Collection
}

func NewFeedRepository(db *mongo.Database) *FeedRepository {
	return &FeedRepository{col: db.Collection(collectionFeeds)}
}

func (r *FeedRepository) Create(ctx context.Context, f *domain.Feed) error {
	return insertOne(ctx, r.col, f)
}

func (r *FeedRepository) FindByID(ctx context.Context, id string) (*domain.Feed, error) {
	return findByID[domain.Feed](ctx, r.col, id)
}

func (r *FeedRepository) ListByFarms(ctx context.Context, farmIDs []string, filter domain.FeedFilter) ([]*domain.Feed, error) {
	return findMany[domain.Feed](ctx, r.col, feedFilter(farmIDs, filter), bson.D{{Key: "date", Value: -1}})
}

func (r *FeedRepository) Update(ctx context.Context, f *domain.Feed) error {
	return replaceByID(ctx, r.col, f.ID, f)
}

func (r *FeedRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

func feedFilter(farmIDs []string, ff domain.FeedFilter) bson.M {
	filter := byFarms(farmIDs)
	if ff.AnimalID != "" {
		filter["animal_id"] = ff.AnimalID
	}
	if ff.From != nil || ff.To != nil {
		date := bson.M{}
		if ff.From != nil {
			date["$gte"] = *ff.From
		}
		if ff.To != nil {
			date["$lte"] = *ff.To
		}
		filter["date"] = date
	}
	return filter
}

type ProduceRepository struct {
	col *mongo.Collection
}

func NewProduceRepository(db *mongo.Database) *ProduceRepository {
	return &ProduceRepository{col: db.Collection(collectionProduce)}
}

func (r *ProduceRepository) Create(ctx context.Context, p *domain.Produce) error {
	return insertOne(ctx, r.col, p)
}

func (r *ProduceRepository) FindByID(ctx context.Context, id string) (*domain.Produce, error) {
	return findByID[domain.Produce](ctx, r.col, id)
}

func (r *ProduceRepository) ListByOwner(ctx context.Context, ownerID, produceType string) ([]*domain.Produce, error) {
	filter := bson.M{"owner_id": ownerID}
	if produceType != "" {
		filter["type"] = produceType
	}
	return findMany[domain.Produce](ctx, r.col, filter, bson.D{{Key: "harvest_date", Value: -1}, {Key: "created_at", Value: -1}})
}

func (r *ProduceRepository) Update(ctx context.Context, p *domain.Produce) error {
	return replaceByID(ctx, r.col, p.ID, p)
}

func (r *ProduceRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

var (
	_ ports.FeedRepository    = (*FeedRepository)(nil)
	_ ports.ProduceRepository = (*ProduceRepository)(nil)
)
