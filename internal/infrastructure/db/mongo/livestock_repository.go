package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type AnimalRepository struct {
	col *mongo.Collection
}

func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{col: db.Collection(collectionAnimals)}
}

func (r *AnimalRepository) Create(ctx context.Context, a *domain.Animal) error {
	return insertOne(ctx, r.col, a)
}

func (r *AnimalRepository) FindByID(ctx context.Context, id string) (*domain.Animal, error) {
	return findByID[domain.Animal](ctx, r.col, id)
}

func (r *AnimalRepository) ExistsTag(ctx context.Context, farmID, tag string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"farm_id": farmID, "tag_number": tag, "is_active": true})
	if err != nil {
		return false, fmt.Errorf("count animals: %w", err)
	}
	return n > 0, nil
}

func (r *AnimalRepository) ListByFarms(ctx context.Context, farmIDs []string, species string) ([]*domain.Animal, error) {
	filter := byFarms(farmIDs)
	filter["is_active"] = true
	if species != "" {
		filter["species"] = species
	}
	return findMany[domain.Animal](ctx, r.col, filter, bson.D{{Key: "created_at", Value: -1}})
}

func (r *AnimalRepository) Update(ctx context.Context, a *domain.Animal) error {
	return replaceByID(ctx, r.col, a.ID, a)
}

type HealthRecordRepository struct {
	col *mongo.Collection
}

func NewHealthRecordRepository(db *mongo.Database) *HealthRecordRepository {
	return &HealthRecordRepository{col: db.Collection(collectionHealthRecords)}
}

func (r *HealthRecordRepository) Create(ctx context.Context, rec *domain.HealthRecord) error {
	return insertOne(ctx, r.col, rec)
}

func (r *HealthRecordRepository) FindByID(ctx context.Context, id string) (*domain.HealthRecord, error) {
	return findByID[domain.HealthRecord](ctx, r.col, id)
}

func (r *HealthRecordRepository) ListByAnimal(ctx context.Context, animalID string) ([]*domain.HealthRecord, error) {
	return findMany[domain.HealthRecord](ctx, r.col, bson.M{"animal_id": animalID}, bson.D{{Key: "visit_date", Value: -1}})
}

func (r *HealthRecordRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

var (
	_ ports.AnimalRepository       = (*AnimalRepository)(nil)
	_ ports.HealthRecordRepository = (*HealthRecordRepository)(nil)
)
