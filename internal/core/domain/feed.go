package domain

import "time"

const DefaultFeedUnit = "kg"

// Feed is one feeding of an animal. FarmID is copied from the animal at
// creation, like HealthRecord.
type Feed struct {
	ID          string    `json:"id" bson:"_id"`
	AnimalID    string    `json:"animal_id" bson:"animal_id"`
	FarmID      string    `json:"farm_id" bson:"farm_id"`
	FeedType    string    `json:"feed_type" bson:"feed_type"`
	Quantity    float64   `json:"quantity" bson:"quantity"`
	Unit        string    `json:"unit" bson:"unit"`
	FeedingTime string    `json:"feeding_time,omitempty" bson:"feeding_time,omitempty"`
	Date        time.Time `json:"date" bson:"date"`
	Supplements string    `json:"supplements,omitempty" bson:"supplements,omitempty"`
	Cost        *float64  `json:"cost,omitempty" bson:"cost,omitempty"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// FeedPatch lists the mutable feed fields. The animal cannot change.
type FeedPatch struct {
	FeedType    *string
	Quantity    *float64
	Unit        *string
	FeedingTime *string
	Date        *time.Time
	Supplements *string
	Cost        *float64
	Notes       *string
}

func (p FeedPatch) Apply(f *Feed) {
	setString(&f.FeedType, p.FeedType)
	setString(&f.Unit, p.Unit)
	setString(&f.FeedingTime, p.FeedingTime)
	setString(&f.Supplements, p.Supplements)
	setString(&f.Notes, p.Notes)
	if p.Quantity != nil {
		f.Quantity = *p.Quantity
	}
	if p.Date != nil {
		f.Date = *p.Date
	}
	if p.Cost != nil {
		f.Cost = p.Cost
	}
}

// FeedFilter narrows a feed listing. Zero fields match everything.
type FeedFilter struct {
	AnimalID string
	From     *time.Time
	To       *time.Time
}

// Match reports whether f passes the filter.
func (ff FeedFilter) Match(f *Feed) bool {
	if ff.AnimalID != "" && f.AnimalID != ff.AnimalID {
		return false
	}
	if ff.From != nil && f.Date.Before(*ff.From) {
		return false
	}
	if ff.To != nil && f.Date.After(*ff.To) {
		return false
	}
	return true
}

// FeedTypeTotal aggregates feedings of one type and unit.
type FeedTypeTotal struct {
	FeedType      string  `json:"feed_type"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalCost     float64 `json:"total_cost"`
}

// DailyFeed aggregates one calendar day (UTC).
type DailyFeed struct {
	Date          string  `json:"date"`
	TotalQuantity float64 `json:"total_quantity"`
	AnimalsFed    int     `json:"animals_fed"`
}

// FeedSummary covers the feedings of the last Days days.
type FeedSummary struct {
	Days       int             `json:"days"`
	TotalCost  float64         `json:"total_cost"`
	FeedByType []FeedTypeTotal `json:"feed_by_type"`
	DailyFeed  []DailyFeed     `json:"daily_feed"`
}
