package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

func TestFeedFilter(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	plain := feedFilter([]string{"f1"}, domain.FeedFilter{})
	if _, ok := plain["date"]; ok {
		t.Fatalf("empty filter must not constrain date: %v", plain)
	}
	if _, ok := plain["animal_id"]; ok {
		t.Fatalf("empty filter must not constrain animal: %v", plain)
	}

	full := feedFilter([]string{"f1", "f2"}, domain.FeedFilter{AnimalID: "a1", From: &from, To: &to})
	if full["animal_id"] != "a1" {
		t.Errorf("expected animal_id a1, got %v", full["animal_id"])
	}
	date, ok := full["date"].(bson.M)
	if !ok || date["$gte"] != from || date["$lte"] != to {
		t.Errorf("unexpected date range %v", full["date"])
	}
	farms, ok := full["farm_id"].(bson.M)
	if !ok || len(farms["$in"].([]string)) != 2 {
		t.Errorf("unexpected farm filter %v", full["farm_id"])
	}
}
