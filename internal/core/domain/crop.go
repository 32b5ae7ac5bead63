package domain

import "time"

// CropStatus is the stored lifecycle label of a crop.
type CropStatus string

const (
	CropPlanted   CropStatus = "planted"
	CropGrowing   CropStatus = "growing"
	CropHarvested CropStatus = "harvested"
	CropFailed    CropStatus = "failed"
)

// Terminal reports whether the status is final and never recomputed.
func (s CropStatus) Terminal() bool {
	return s == CropHarvested || s == CropFailed
}

// Crop is a planting on a farm. Its accountable owner is the owner of FarmID.
type Crop struct {
	ID                  string     `json:"id" bson:"_id"`
	FarmID              string     `json:"farm_id" bson:"farm_id"`
	Name                string     `json:"name" bson:"name"`
	Variety             string     `json:"variety,omitempty" bson:"variety,omitempty"`
	AreaHectares        *float64   `json:"area_hectares,omitempty" bson:"area_hectares,omitempty"`
	PlantingDate        *time.Time `json:"planting_date,omitempty" bson:"planting_date,omitempty"`
	ExpectedHarvestDate *time.Time `json:"expected_harvest_date,omitempty" bson:"expected_harvest_date,omitempty"`
	Status              CropStatus `json:"status" bson:"status"`
	HarvestDue          bool       `json:"harvest_due" bson:"-"`
	Notes               string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt           time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" bson:"updated_at"`
}

// Refresh recomputes the date-derived fields of a non-terminal crop as of now.
func (c *Crop) Refresh(now time.Time) {
	c.HarvestDue = false
	if c.Status.Terminal() {
		return
	}
	if c.Status == CropPlanted && c.PlantingDate != nil && c.PlantingDate.Before(now) {
		c.Status = CropGrowing
	}
	if c.ExpectedHarvestDate != nil && c.ExpectedHarvestDate.Before(now) {
		c.HarvestDue = true
	}
}

// CropPatch lists the mutable crop fields.
type CropPatch struct {
	Name                *string
	Variety             *string
	AreaHectares        *float64
	PlantingDate        *time.Time
	ExpectedHarvestDate *time.Time
	Notes               *string
}

func (p CropPatch) Apply(c *Crop) {
	setString(&c.Name, p.Name)
	setString(&c.Variety, p.Variety)
	setString(&c.Notes, p.Notes)
	if p.AreaHectares != nil {
		c.AreaHectares = p.AreaHectares
	}
	if p.PlantingDate != nil {
		c.PlantingDate = p.PlantingDate
	}
	if p.ExpectedHarvestDate != nil {
		c.ExpectedHarvestDate = p.ExpectedHarvestDate
	}
}
