package domain

import "time"

const (
	FarmTypeCrop      = "crop"
	FarmTypeLivestock = "livestock"
	FarmTypeMixed     = "mixed"
)

// Farm is the root owned resource; animals, crops and health records hang off it.
type Farm struct {
	ID              string     `json:"id" bson:"_id"`
	OwnerID         string     `json:"owner_id" bson:"owner_id"`
	Name            string     `json:"name" bson:"name"`
	Description     string     `json:"description,omitempty" bson:"description,omitempty"`
	Location        string     `json:"location,omitempty" bson:"location,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty" bson:"longitude,omitempty"`
	AreaHectares    *float64   `json:"area_hectares,omitempty" bson:"area_hectares,omitempty"`
	FarmType        string     `json:"farm_type" bson:"farm_type"`
	EstablishedDate *time.Time `json:"established_date,omitempty" bson:"established_date,omitempty"`
	ContactPhone    string     `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	ContactEmail    string     `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	IsActive        bool       `json:"is_active" bson:"is_active"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" bson:"updated_at"`
}

// FarmPatch lists the mutable farm fields; nil leaves a field untouched.
type FarmPatch struct {
	Name            *string
	Description     *string
	Location        *string
	Latitude        *float64
	Longitude       *float64
	AreaHectares    *float64
	FarmType        *string
	EstablishedDate *time.Time
	ContactPhone    *string
	ContactEmail    *string
	IsActive        *bool
}

// Apply copies the non-nil patch fields onto f. Identity and ownership are
// never patched.
func (p FarmPatch) Apply(f *Farm) {
	setString(&f.Name, p.Name)
	setString(&f.Description, p.Description)
	setString(&f.Location, p.Location)
	setString(&f.FarmType, p.FarmType)
	setString(&f.ContactPhone, p.ContactPhone)
	setString(&f.ContactEmail, p.ContactEmail)
	if p.Latitude != nil {
		f.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		f.Longitude = p.Longitude
	}
	if p.AreaHectares != nil {
		f.AreaHectares = p.AreaHectares
	}
	if p.EstablishedDate != nil {
		f.EstablishedDate = p.EstablishedDate
	}
	if p.IsActive != nil {
		f.IsActive = *p.IsActive
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// FarmStats summarises what a farm holds. UtilizationPercentage is the
// planted share of the farm's area, 0 when the area is unknown.
type FarmStats struct {
	LivestockCount        int     `json:"livestock_count"`
	CropsCount            int     `json:"crops_count"`
	TotalCropAreaHectares float64 `json:"total_crop_area_hectares"`
	UtilizationPercentage float64 `json:"utilization_percentage"`
}
