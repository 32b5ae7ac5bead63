package mongo

import (
	"testing"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

func TestOwnerField_MatchesDocumentTags(t *testing.T) {
	tests := []struct {
		kind   domain.ResourceKind
		field  string
		direct bool
	}{
		{domain.KindFarm, "owner_id", true},
		{domain.KindSale, "farmer_id", true},
		{domain.KindContact, "owner_id", true},
		{domain.KindAnimal, "farm_id", false},
		{domain.KindCrop, "farm_id", false},
		{domain.KindHealthRecord, "farm_id", false},
		{domain.KindFeed, "farm_id", false},
		{domain.KindProduce, "owner_id", true},
	}
	for _, tt := range tests {
		col, ok := ownerField[tt.kind]
		if !ok {
			t.Fatalf("no owner field for %s", tt.kind)
		}
		if col.field != tt.field || col.direct != tt.direct {
			t.Fatalf("%s: got %+v", tt.kind, col)
		}
	}
}
