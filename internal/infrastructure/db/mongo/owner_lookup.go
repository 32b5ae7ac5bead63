package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

// ownerField maps each kind to its collection and the single field naming
// its owner (direct) or parent farm.
var ownerField = map[domain.ResourceKind]struct {
	collection string
	field      string
	direct     bool
}{
	domain.KindFarm:         {collectionFarms, "owner_id", true},
	domain.KindSale:         {collectionSales, "farmer_id", true},
	domain.KindContact:      {collectionContacts, "owner_id", true},
	domain.KindProduce:      {collectionProduce, "owner_id", true},
	domain.KindAnimal:       {collectionAnimals, "farm_id", false},
	domain.KindCrop:         {collectionCrops, "farm_id", false},
	domain.KindHealthRecord: {collectionHealthRecords, "farm_id", false},
	domain.KindFeed:         {collectionFeeds, "farm_id", false},
}

// OwnerLookup reads only the owner-relevant field of a document.
type OwnerLookup struct {
	db *mongo.Database
}

func NewOwnerLookup(db *mongo.Database) *OwnerLookup {
	return &OwnerLookup{db: db}
}

func (l *OwnerLookup) LookupOwner(ctx context.Context, kind domain.ResourceKind, id string) (domain.OwnerRef, error) {
	col, ok := ownerField[kind]
	if !ok {
		return domain.OwnerRef{}, fmt.Errorf("owner lookup: unknown resource kind %q", kind)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bson.M
	opts := options.FindOne().SetProjection(bson.M{col.field: 1})
	if err := l.db.Collection(col.collection).FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.OwnerRef{}, domain.ErrNotFound
		}
		return domain.OwnerRef{}, fmt.Errorf("owner lookup %s: %w", kind, err)
	}

	value, _ := doc[col.field].(string)
	ref := domain.OwnerRef{Kind: kind, ID: id}
	if col.direct {
		ref.OwnerID = value
	} else {
		ref.FarmID = value
	}
	return ref, nil
}

var _ ports.OwnerLookup = (*OwnerLookup)(nil)
