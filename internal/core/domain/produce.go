package domain

import "time"

// Produce is harvested or collected output held by a farmer. CropID and
// AnimalID optionally name its source; the farmer owns it directly.
type Produce struct {
	ID              string     `json:"id" bson:"_id"`
	OwnerID         string     `json:"owner_id" bson:"owner_id"`
	Name            string     `json:"name" bson:"name"`
	Type            string     `json:"type" bson:"type"`
	Quantity        float64    `json:"quantity" bson:"quantity"`
	Unit            string     `json:"unit" bson:"unit"`
	HarvestDate     *time.Time `json:"harvest_date,omitempty" bson:"harvest_date,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty" bson:"expiry_date,omitempty"`
	QualityGrade    string     `json:"quality_grade,omitempty" bson:"quality_grade,omitempty"`
	StorageLocation string     `json:"storage_location,omitempty" bson:"storage_location,omitempty"`
	CropID          string     `json:"crop_id,omitempty" bson:"crop_id,omitempty"`
	AnimalID        string     `json:"animal_id,omitempty" bson:"animal_id,omitempty"`
	Notes           string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" bson:"updated_at"`
}

// ProducePatch lists the mutable produce fields. Sources cannot move.
type ProducePatch struct {
	Name            *string
	Type            *string
	Quantity        *float64
	Unit            *string
	HarvestDate     *time.Time
	ExpiryDate      *time.Time
	QualityGrade    *string
	StorageLocation *string
	Notes           *string
}

func (p ProducePatch) Apply(pr *Produce) {
	setString(&pr.Name, p.Name)
	setString(&pr.Type, p.Type)
	setString(&pr.Unit, p.Unit)
	setString(&pr.QualityGrade, p.QualityGrade)
	setString(&pr.StorageLocation, p.StorageLocation)
	setString(&pr.Notes, p.Notes)
	if p.Quantity != nil {
		pr.Quantity = *p.Quantity
	}
	if p.HarvestDate != nil {
		pr.HarvestDate = p.HarvestDate
	}
	if p.ExpiryDate != nil {
		pr.ExpiryDate = p.ExpiryDate
	}
}

// ProduceTypeTotal is the stock of one produce type and unit.
type ProduceTypeTotal struct {
	Type          string  `json:"type"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
}

// MonthlyProduce aggregates produce harvested in one month ("2006-01").
type MonthlyProduce struct {
	Month         string  `json:"month"`
	TotalQuantity float64 `json:"total_quantity"`
	RecordCount   int     `json:"record_count"`
}

// ProduceSummary is the stock overview of one farmer.
type ProduceSummary struct {
	ByType   []ProduceTypeTotal `json:"by_type"`
	Monthly  []MonthlyProduce   `json:"monthly"`
	Expiring []*Produce         `json:"expiring"`
}
