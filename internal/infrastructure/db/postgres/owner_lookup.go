package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

var ownerColumn = map[domain.ResourceKind]struct {
	table  string
	column string
	direct bool
}{
	domain.KindFarm:         {"farms", "owner_id", true},
	domain.KindSale:         {"sales", "farmer_id", true},
	domain.KindContact:      {"contacts", "owner_id", true},
	domain.KindProduce:      {"produce", "owner_id", true},
	domain.KindAnimal:       {"animals", "farm_id", false},
	domain.KindCrop:         {"crops", "farm_id", false},
	domain.KindHealthRecord: {"health_records", "farm_id", false},
	domain.KindFeed:         {"feeds", "farm_id", false},
}

// OwnerLookup selects the single owner or parent-farm column of a row.
type OwnerLookup struct {
	db *gorm.DB
}

func NewOwnerLookup(p *Postgres) *OwnerLookup {
	return &OwnerLookup{db: p.DB}
}

func (l *OwnerLookup) LookupOwner(ctx context.Context, kind domain.ResourceKind, id string) (domain.OwnerRef, error) {
	col, ok := ownerColumn[kind]
	if !ok {
		return domain.OwnerRef{}, fmt.Errorf("owner lookup: unknown resource kind %q", kind)
	}

	var values []string
	err := l.db.WithContext(ctx).Table(col.table).
		Where("id = ?", id).
		Limit(1).
		Pluck(col.column, &values).Error
	if err != nil {
		return domain.OwnerRef{}, translate("owner lookup "+string(kind), err)
	}
	if len(values) == 0 {
		return domain.OwnerRef{}, domain.ErrNotFound
	}

	ref := domain.OwnerRef{Kind: kind, ID: id}
	if col.direct {
		ref.OwnerID = values[0]
	} else {
		ref.FarmID = values[0]
	}
	return ref, nil
}

var _ ports.OwnerLookup = (*OwnerLookup)(nil)
