package handler

import (
	"time"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

// --- Auth ---

type registerRequest struct {
	Email          string `json:"email"           validate:"required,email"`
	Password       string `json:"password"        validate:"required,min=6"`
	FullName       string `json:"full_name"       validate:"required,min=2,max=100"`
	Phone          string `json:"phone"           validate:"omitempty,max=20"`
	Role           string `json:"role"            validate:"required,oneof=farmer vet agrovet"`
	Location       string `json:"location"        validate:"omitempty,max=200"`
	Specialization string `json:"specialization"  validate:"omitempty,max=100"`
	ClinicName     string `json:"clinic_name"     validate:"omitempty,max=100"`
	LicenseNumber  string `json:"license_number"  validate:"omitempty,max=50"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	FullName       *string `json:"full_name"      validate:"omitempty,min=2,max=100"`
	Phone          *string `json:"phone"          validate:"omitempty,max=20"`
	Location       *string `json:"location"       validate:"omitempty,max=200"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
	ClinicName     *string `json:"clinic_name"    validate:"omitempty,max=100"`
}

type authResponse struct {
	Message   string          `json:"message,omitempty"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      *domain.Account `json:"user"`
}

type profileResponse struct {
	User *domain.Account `json:"user"`
}

// --- Farms ---

type createFarmRequest struct {
	Name            string     `json:"name"             validate:"required,min=2,max=100"`
	Description     string     `json:"description"      validate:"omitempty,max=500"`
	Location        string     `json:"location"         validate:"omitempty,max=200"`
	Latitude        *float64   `json:"latitude"         validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64   `json:"longitude"        validate:"omitempty,gte=-180,lte=180"`
	AreaHectares    *float64   `json:"area_hectares"    validate:"omitempty,gt=0"`
	FarmType        string     `json:"farm_type"        validate:"omitempty,oneof=crop livestock mixed"`
	EstablishedDate *time.Time `json:"established_date"`
	ContactPhone    string     `json:"contact_phone"    validate:"omitempty,max=20"`
	ContactEmail    string     `json:"contact_email"    validate:"omitempty,email"`
}

func (r createFarmRequest) farm() *domain.Farm {
	return &domain.Farm{
		Name:            r.Name,
		Description:     r.Description,
		Location:        r.Location,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		AreaHectares:    r.AreaHectares,
		FarmType:        r.FarmType,
		EstablishedDate: r.EstablishedDate,
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
	}
}

type updateFarmRequest struct {
	Name            *string    `json:"name"             validate:"omitempty,min=2,max=100"`
	Description     *string    `json:"description"      validate:"omitempty,max=500"`
	Location        *string    `json:"location"         validate:"omitempty,max=200"`
	Latitude        *float64   `json:"latitude"         validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64   `json:"longitude"        validate:"omitempty,gte=-180,lte=180"`
	AreaHectares    *float64   `json:"area_hectares"    validate:"omitempty,gt=0"`
	FarmType        *string    `json:"farm_type"        validate:"omitempty,oneof=crop livestock mixed"`
	EstablishedDate *time.Time `json:"established_date"`
	ContactPhone    *string    `json:"contact_phone"    validate:"omitempty,max=20"`
	ContactEmail    *string    `json:"contact_email"    validate:"omitempty,email"`
	IsActive        *bool      `json:"is_active"`
}

func (r updateFarmRequest) patch() domain.FarmPatch {
	return domain.FarmPatch{
		Name:            r.Name,
		Description:     r.Description,
		Location:        r.Location,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		AreaHectares:    r.AreaHectares,
		FarmType:        r.FarmType,
		EstablishedDate: r.EstablishedDate,
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
		IsActive:        r.IsActive,
	}
}

// --- Animals ---

type createAnimalRequest struct {
	FarmID        string     `json:"farm_id"        validate:"required,uuid"`
	TagNumber     string     `json:"tag_number"     validate:"required,min=1,max=50"`
	Name          string     `json:"name"           validate:"omitempty,max=100"`
	Species       string     `json:"species"        validate:"required,oneof=cattle sheep pigs poultry goats horses"`
	Breed         string     `json:"breed"          validate:"omitempty,max=100"`
	Gender        string     `json:"gender"         validate:"omitempty,oneof=male female"`
	BirthDate     *time.Time `json:"birth_date"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PurchasePrice *float64   `json:"purchase_price" validate:"omitempty,gte=0"`
	CurrentWeight *float64   `json:"current_weight" validate:"omitempty,gt=0"`
	HealthStatus  string     `json:"health_status"  validate:"omitempty,oneof=healthy sick under_treatment"`
	Location      string     `json:"location"       validate:"omitempty,max=200"`
	Notes         string     `json:"notes"          validate:"omitempty,max=1000"`
}

func (r createAnimalRequest) animal() *domain.Animal {
	return &domain.Animal{
		FarmID:        r.FarmID,
		TagNumber:     r.TagNumber,
		Name:          r.Name,
		Species:       r.Species,
		Breed:         r.Breed,
		Gender:        r.Gender,
		BirthDate:     r.BirthDate,
		PurchaseDate:  r.PurchaseDate,
		PurchasePrice: r.PurchasePrice,
		CurrentWeight: r.CurrentWeight,
		HealthStatus:  r.HealthStatus,
		Location:      r.Location,
		Notes:         r.Notes,
	}
}

type updateAnimalRequest struct {
	Name          *string    `json:"name"           validate:"omitempty,max=100"`
	Breed         *string    `json:"breed"          validate:"omitempty,max=100"`
	Gender        *string    `json:"gender"         validate:"omitempty,oneof=male female"`
	BirthDate     *time.Time `json:"birth_date"`
	CurrentWeight *float64   `json:"current_weight" validate:"omitempty,gt=0"`
	HealthStatus  *string    `json:"health_status"  validate:"omitempty,oneof=healthy sick under_treatment"`
	Location      *string    `json:"location"       validate:"omitempty,max=200"`
	Notes         *string    `json:"notes"          validate:"omitempty,max=1000"`
}

func (r updateAnimalRequest) patch() domain.AnimalPatch {
	return domain.AnimalPatch{
		Name:          r.Name,
		Breed:         r.Breed,
		Gender:        r.Gender,
		BirthDate:     r.BirthDate,
		CurrentWeight: r.CurrentWeight,
		HealthStatus:  r.HealthStatus,
		Location:      r.Location,
		Notes:         r.Notes,
	}
}

// --- Crops ---

type createCropRequest struct {
	FarmID              string     `json:"farm_id"               validate:"required,uuid"`
	Name                string     `json:"name"                  validate:"required,min=1,max=100"`
	Variety             string     `json:"variety"               validate:"omitempty,max=100"`
	AreaHectares        *float64   `json:"area_hectares"         validate:"omitempty,gt=0"`
	PlantingDate        *time.Time `json:"planting_date"`
	ExpectedHarvestDate *time.Time `json:"expected_harvest_date"`
	Status              string     `json:"status"                validate:"omitempty,oneof=planted growing harvested failed"`
	Notes               string     `json:"notes"                 validate:"omitempty,max=1000"`
}

func (r createCropRequest) crop() *domain.Crop {
	return &domain.Crop{
		FarmID:              r.FarmID,
		Name:                r.Name,
		Variety:             r.Variety,
		AreaHectares:        r.AreaHectares,
		PlantingDate:        r.PlantingDate,
		ExpectedHarvestDate: r.ExpectedHarvestDate,
		Status:              domain.CropStatus(r.Status),
		Notes:               r.Notes,
	}
}

type updateCropRequest struct {
	Name                *string    `json:"name"                  validate:"omitempty,min=1,max=100"`
	Variety             *string    `json:"variety"               validate:"omitempty,max=100"`
	AreaHectares        *float64   `json:"area_hectares"         validate:"omitempty,gt=0"`
	PlantingDate        *time.Time `json:"planting_date"`
	ExpectedHarvestDate *time.Time `json:"expected_harvest_date"`
	Notes               *string    `json:"notes"                 validate:"omitempty,max=1000"`
}

func (r updateCropRequest) patch() domain.CropPatch {
	return domain.CropPatch{
		Name:                r.Name,
		Variety:             r.Variety,
		AreaHectares:        r.AreaHectares,
		PlantingDate:        r.PlantingDate,
		ExpectedHarvestDate: r.ExpectedHarvestDate,
		Notes:               r.Notes,
	}
}

type cropStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planted growing harvested failed"`
}

// --- Sales ---

type createSaleRequest struct {
	FarmID        string    `json:"farm_id"        validate:"omitempty,uuid"`
	CustomerName  string    `json:"customer_name"  validate:"required,min=1,max=100"`
	CustomerPhone string    `json:"customer_phone" validate:"omitempty,max=20"`
	Item          string    `json:"item"           validate:"required,max=100"`
	Quantity      float64   `json:"quantity"       validate:"required,gt=0"`
	Unit          string    `json:"unit"           validate:"omitempty,max=20"`
	UnitPrice     float64   `json:"unit_price"     validate:"gte=0"`
	AmountPaid    float64   `json:"amount_paid"    validate:"gte=0"`
	SaleDate      time.Time `json:"sale_date"`
}

func (r createSaleRequest) sale() *domain.Sale {
	return &domain.Sale{
		FarmID:        r.FarmID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Item:          r.Item,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
		UnitPrice:     r.UnitPrice,
		AmountPaid:    r.AmountPaid,
		SaleDate:      r.SaleDate,
	}
}

type paymentRequest struct {
	AmountPaid    *float64 `json:"amount_paid"    validate:"omitempty,gte=0"`
	PaymentStatus string   `json:"payment_status" validate:"omitempty,oneof=pending partial paid"`
}

// --- Health records ---

type createHealthRecordRequest struct {
	AnimalID        string     `json:"animal_id"         validate:"required,uuid"`
	VisitDate       time.Time  `json:"visit_date"`
	Diagnosis       string     `json:"diagnosis"         validate:"omitempty,max=500"`
	Treatment       string     `json:"treatment"         validate:"omitempty,max=500"`
	Medications     string     `json:"medications"       validate:"omitempty,max=500"`
	Vaccination     bool       `json:"vaccination"`
	NextCheckupDate *time.Time `json:"next_checkup_date"`
	Cost            *float64   `json:"cost"              validate:"omitempty,gte=0"`
	Notes           string     `json:"notes"             validate:"omitempty,max=1000"`
}

func (r createHealthRecordRequest) record() *domain.HealthRecord {
	return &domain.HealthRecord{
		AnimalID:        r.AnimalID,
		VisitDate:       r.VisitDate,
		Diagnosis:       r.Diagnosis,
		Treatment:       r.Treatment,
		Medications:     r.Medications,
		Vaccination:     r.Vaccination,
		NextCheckupDate: r.NextCheckupDate,
		Cost:            r.Cost,
		Notes:           r.Notes,
	}
}

// --- Contacts ---

type contactRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Category *string `json:"category" validate:"omitempty,oneof=vet agrovet buyer supplier other"`
	Phone    *string `json:"phone"    validate:"omitempty,max=20"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Notes    *string `json:"notes"    validate:"omitempty,max=1000"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// --- Feeds ---

type createFeedRequest struct {
	AnimalID    string    `json:"animal_id"    validate:"required,uuid"`
	FeedType    string    `json:"feed_type"    validate:"required,min=1,max=100"`
	Quantity    float64   `json:"quantity"     validate:"required,gt=0"`
	Unit        string    `json:"unit"         validate:"omitempty,max=20"`
	FeedingTime string    `json:"feeding_time" validate:"omitempty,max=20"`
	Date        time.Time `json:"date"`
	Supplements string    `json:"supplements"  validate:"omitempty,max=500"`
	Cost        *float64  `json:"cost"         validate:"omitempty,gt=0"`
	Notes       string    `json:"notes"        validate:"omitempty,max=1000"`
}

func (r createFeedRequest) feed() *domain.Feed {
	return &domain.Feed{
		AnimalID:    r.AnimalID,
		FeedType:    r.FeedType,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		FeedingTime: r.FeedingTime,
		Date:        r.Date,
		Supplements: r.Supplements,
		Cost:        r.Cost,
		Notes:       r.Notes,
	}
}

type updateFeedRequest struct {
	FeedType    *string    `json:"feed_type"    validate:"omitempty,min=1,max=100"`
	Quantity    *float64   `json:"quantity"     validate:"omitempty,gt=0"`
	Unit        *string    `json:"unit"         validate:"omitempty,max=20"`
	FeedingTime *string    `json:"feeding_time" validate:"omitempty,max=20"`
	Date        *time.Time `json:"date"`
	Supplements *string    `json:"supplements"  validate:"omitempty,max=500"`
	Cost        *float64   `json:"cost"         validate:"omitempty,gt=0"`
	Notes       *string    `json:"notes"        validate:"omitempty,max=1000"`
}

func (r updateFeedRequest) patch() domain.FeedPatch {
	return domain.FeedPatch{
		FeedType:    r.FeedType,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		FeedingTime: r.FeedingTime,
		Date:        r.Date,
		Supplements: r.Supplements,
		Cost:        r.Cost,
		Notes:       r.Notes,
	}
}

// --- Produce ---

type createProduceRequest struct {
	Name            string     `json:"name"             validate:"required,min=1,max=100"`
	Type            string     `json:"type"             validate:"required,max=50"`
	Quantity        float64    `json:"quantity"         validate:"required,gt=0"`
	Unit            string     `json:"unit"             validate:"required,max=20"`
	HarvestDate     *time.Time `json:"harvest_date"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	QualityGrade    string     `json:"quality_grade"    validate:"omitempty,max=20"`
	StorageLocation string     `json:"storage_location" validate:"omitempty,max=200"`
	CropID          string     `json:"crop_id"          validate:"omitempty,uuid"`
	AnimalID        string     `json:"animal_id"        validate:"omitempty,uuid"`
	Notes           string     `json:"notes"            validate:"omitempty,max=1000"`
}

func (r createProduceRequest) produce() *domain.Produce {
	return &domain.Produce{
		Name:            r.Name,
		Type:            r.Type,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		HarvestDate:     r.HarvestDate,
		ExpiryDate:      r.ExpiryDate,
		QualityGrade:    r.QualityGrade,
		StorageLocation: r.StorageLocation,
		CropID:          r.CropID,
		AnimalID:        r.AnimalID,
		Notes:           r.Notes,
	}
}

type updateProduceRequest struct {
	Name            *string    `json:"name"             validate:"omitempty,min=1,max=100"`
	Type            *string    `json:"type"             validate:"omitempty,max=50"`
	Quantity        *float64   `json:"quantity"         validate:"omitempty,gt=0"`
	Unit            *string    `json:"unit"             validate:"omitempty,max=20"`
	HarvestDate     *time.Time `json:"harvest_date"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	QualityGrade    *string    `json:"quality_grade"    validate:"omitempty,max=20"`
	StorageLocation *string    `json:"storage_location" validate:"omitempty,max=200"`
	Notes           *string    `json:"notes"            validate:"omitempty,max=1000"`
}

func (r updateProduceRequest) patch() domain.ProducePatch {
	return domain.ProducePatch{
		Name:            r.Name,
		Type:            r.Type,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		HarvestDate:     r.HarvestDate,
		ExpiryDate:      r.ExpiryDate,
		QualityGrade:    r.QualityGrade,
		StorageLocation: r.StorageLocation,
		Notes:           r.Notes,
	}
}

// --- Vets directory ---

// providerView is the public directory entry; contact details are only
// filled for authenticated callers.
type providerView struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	Specialization string `json:"specialization,omitempty"`
	Location       string `json:"location,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	ClinicName     string `json:"clinic_name,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// errorEnvelope documents the body rendered by the API error handler.
type errorEnvelope struct {
	Error struct {
		Code      string   `json:"code"`
		Message   string   `json:"message"`
		Timestamp string   `json:"timestamp"`
		Path      string   `json:"path"`
		Method    string   `json:"method"`
		Details   []string `json:"details,omitempty"`
	} `json:"error"`
}
