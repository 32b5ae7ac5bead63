package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

const (
	collectionAccounts      = "accounts"
	collectionFarms         = "farms"
	collectionAnimals       = "animals"
	collectionCrops         = "crops"
	collectionSales         = "sales"
	collectionHealthRecords = "health_records"
	collectionContacts      = "contacts"
	collectionFeeds         = "feeds"
	collectionProduce       = "produce"
)

type Config struct {
	URI      string
	Database string
	// Timeout bounds connecting, the first ping and server selection.
	Timeout time.Duration
}

// Connect opens a client, pings the primary and returns the client and the
// FarmTrak database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.Database == "" {
		return nil, nil, fmt.Errorf("mongo database name is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("farmtrak-api").
		SetServerSelectionTimeout(timeout)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the unique and lookup indexes every repository relies on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		collectionAccounts: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		collectionFarms: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "is_active", Value: 1}}},
		},
		collectionAnimals: {
			{Keys: bson.D{{Key: "farm_id", Value: 1}, {Key: "tag_number", Value: 1}}},
		},
		collectionCrops: {
			{Keys: bson.D{{Key: "farm_id", Value: 1}}},
		},
		collectionSales: {
			{Keys: bson.D{{Key: "farmer_id", Value: 1}, {Key: "sale_date", Value: -1}}},
		},
		collectionHealthRecords: {
			{Keys: bson.D{{Key: "animal_id", Value: 1}, {Key: "visit_date", Value: -1}}},
		},
		collectionContacts: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
		collectionFeeds: {
			{Keys: bson.D{{Key: "farm_id", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "animal_id", Value: 1}}},
		},
		collectionProduce: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "type", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}
