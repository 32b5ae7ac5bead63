package domain

import "time"

const (
	HealthHealthy        = "healthy"
	HealthSick           = "sick"
	HealthUnderTreatment = "under_treatment"
)

// Animal is a livestock record. Its accountable owner is the owner of FarmID.
type Animal struct {
	ID            string     `json:"id" bson:"_id"`
	FarmID        string     `json:"farm_id" bson:"farm_id"`
	TagNumber     string     `json:"tag_number" bson:"tag_number"`
	Name          string     `json:"name,omitempty" bson:"name,omitempty"`
	Species       string     `json:"species" bson:"species"`
	Breed         string     `json:"breed,omitempty" bson:"breed,omitempty"`
	Gender        string     `json:"gender,omitempty" bson:"gender,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty" bson:"purchase_date,omitempty"`
	PurchasePrice *float64   `json:"purchase_price,omitempty" bson:"purchase_price,omitempty"`
	CurrentWeight *float64   `json:"current_weight,omitempty" bson:"current_weight,omitempty"`
	HealthStatus  string     `json:"health_status" bson:"health_status"`
	Location      string     `json:"location,omitempty" bson:"location,omitempty"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty"`
	IsActive      bool       `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" bson:"updated_at"`
}

// AnimalPatch lists the mutable animal fields. FarmID cannot move.
type AnimalPatch struct {
	Name          *string
	Breed         *string
	Gender        *string
	BirthDate     *time.Time
	CurrentWeight *float64
	HealthStatus  *string
	Location      *string
	Notes         *string
}

func (p AnimalPatch) Apply(a *Animal) {
	setString(&a.Name, p.Name)
	setString(&a.Breed, p.Breed)
	setString(&a.Gender, p.Gender)
	setString(&a.HealthStatus, p.HealthStatus)
	setString(&a.Location, p.Location)
	setString(&a.Notes, p.Notes)
	if p.BirthDate != nil {
		a.BirthDate = p.BirthDate
	}
	if p.CurrentWeight != nil {
		a.CurrentWeight = p.CurrentWeight
	}
}

// HealthRecord is a veterinary visit for an animal. FarmID is copied from the
// animal at creation so the record resolves to its owner in one hop.
type HealthRecord struct {
	ID              string     `json:"id" bson:"_id"`
	AnimalID        string     `json:"animal_id" bson:"animal_id"`
	FarmID          string     `json:"farm_id" bson:"farm_id"`
	RecordedBy      string     `json:"recorded_by" bson:"recorded_by"`
	VisitDate       time.Time  `json:"visit_date" bson:"visit_date"`
	Diagnosis       string     `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	Treatment       string     `json:"treatment,omitempty" bson:"treatment,omitempty"`
	Medications     string     `json:"medications,omitempty" bson:"medications,omitempty"`
	Vaccination     bool       `json:"vaccination" bson:"vaccination"`
	NextCheckupDate *time.Time `json:"next_checkup_date,omitempty" bson:"next_checkup_date,omitempty"`
	Cost            *float64   `json:"cost,omitempty" bson:"cost,omitempty"`
	Notes           string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
}

// SpeciesStats counts active animals per species.
type SpeciesStats struct {
	Species map[string]int `json:"species"`
	Total   int            `json:"total"`
}
