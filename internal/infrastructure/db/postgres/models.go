package postgres

import (
	"time"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
)

type accountModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	Email          string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	FullName       string `gorm:"not null"`
	Phone          string
	Role           string `gorm:"index;not null"`
	Location       string
	Specialization string
	ClinicName     string
	LicenseNumber  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (accountModel) TableName() string { return "accounts" }

func accountModelFrom(a *domain.Account) accountModel {
	return accountModel{
		ID:             a.ID,
		Email:          a.Email,
		PasswordHash:   a.PasswordHash,
		FullName:       a.FullName,
		Phone:          a.Phone,
		Role:           a.Role,
		Location:       a.Location,
		Specialization: a.Specialization,
		ClinicName:     a.ClinicName,
		LicenseNumber:  a.LicenseNumber,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (m accountModel) toEntity() *domain.Account {
	return &domain.Account{
		ID:             m.ID,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		FullName:       m.FullName,
		Phone:          m.Phone,
		Role:           m.Role,
		Location:       m.Location,
		Specialization: m.Specialization,
		ClinicName:     m.ClinicName,
		LicenseNumber:  m.LicenseNumber,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type farmModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	OwnerID         string `gorm:"type:uuid;index;not null"`
	Name            string `gorm:"not null"`
	Description     string
	Location        string
	Latitude        *float64
	Longitude       *float64
	AreaHectares    *float64
	FarmType        string `gorm:"not null"`
	EstablishedDate *time.Time
	ContactPhone    string
	ContactEmail    string
	IsActive        bool `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (farmModel) TableName() string { return "farms" }

func farmModelFrom(f *domain.Farm) farmModel {
	return farmModel{
		ID:              f.ID,
		OwnerID:         f.OwnerID,
		Name:            f.Name,
		Description:     f.Description,
		Location:        f.Location,
		Latitude:        f.Latitude,
		Longitude:       f.Longitude,
		AreaHectares:    f.AreaHectares,
		FarmType:        f.FarmType,
		EstablishedDate: f.EstablishedDate,
		ContactPhone:    f.ContactPhone,
		ContactEmail:    f.ContactEmail,
		IsActive:        f.IsActive,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func (m farmModel) toEntity() *domain.Farm {
	return &domain.Farm{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Name:            m.Name,
		Description:     m.Description,
		Location:        m.Location,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		AreaHectares:    m.AreaHectares,
		FarmType:        m.FarmType,
		EstablishedDate: m.EstablishedDate,
		ContactPhone:    m.ContactPhone,
		ContactEmail:    m.ContactEmail,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

type animalModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	FarmID        string `gorm:"type:uuid;index:idx_animals_farm_tag;not null"`
	TagNumber     string `gorm:"index:idx_animals_farm_tag;not null"`
	Name          string
	Species       string `gorm:"not null"`
	Breed         string
	Gender        string
	BirthDate     *time.Time
	PurchaseDate  *time.Time
	PurchasePrice *float64
	CurrentWeight *float64
	HealthStatus  string
	Location      string
	Notes         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (animalModel) TableName() string { return "animals" }

func animalModelFrom(a *domain.Animal) animalModel {
	return animalModel{
		ID:            a.ID,
		FarmID:        a.FarmID,
		TagNumber:     a.TagNumber,
		Name:          a.Name,
		Species:       a.Species,
		Breed:         a.Breed,
		Gender:        a.Gender,
		BirthDate:     a.BirthDate,
		PurchaseDate:  a.PurchaseDate,
		PurchasePrice: a.PurchasePrice,
		CurrentWeight: a.CurrentWeight,
		HealthStatus:  a.HealthStatus,
		Location:      a.Location,
		Notes:         a.Notes,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m animalModel) toEntity() *domain.Animal {
	return &domain.Animal{
		ID:            m.ID,
		FarmID:        m.FarmID,
		TagNumber:     m.TagNumber,
		Name:          m.Name,
		Species:       m.Species,
		Breed:         m.Breed,
		Gender:        m.Gender,
		BirthDate:     m.BirthDate,
		PurchaseDate:  m.PurchaseDate,
		PurchasePrice: m.PurchasePrice,
		CurrentWeight: m.CurrentWeight,
		HealthStatus:  m.HealthStatus,
		Location:      m.Location,
		Notes:         m.Notes,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type cropModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	FarmID              string `gorm:"type:uuid;index;not null"`
	Name                string `gorm:"not null"`
	Variety             string
	AreaHectares        *float64
	PlantingDate        *time.Time
	ExpectedHarvestDate *time.Time
	Status              string `gorm:"not null"`
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (cropModel) TableName() string { return "crops" }

func cropModelFrom(c *domain.Crop) cropModel {
	return cropModel{
		ID:                  c.ID,
		FarmID:              c.FarmID,
		Name:                c.Name,
		Variety:             c.Variety,
		AreaHectares:        c.AreaHectares,
		PlantingDate:        c.PlantingDate,
		ExpectedHarvestDate: c.ExpectedHarvestDate,
		Status:              string(c.Status),
		Notes:               c.Notes,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m cropModel) toEntity() *domain.Crop {
	return &domain.Crop{
		ID:                  m.ID,
		FarmID:              m.FarmID,
		Name:                m.Name,
		Variety:             m.Variety,
		AreaHectares:        m.AreaHectares,
		PlantingDate:        m.PlantingDate,
		ExpectedHarvestDate: m.ExpectedHarvestDate,
		Status:              domain.CropStatus(m.Status),
		Notes:               m.Notes,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

type saleModel struct {
	ID            string  `gorm:"primaryKey;type:uuid"`
	FarmerID      string  `gorm:"type:uuid;index;not null"`
	FarmID        *string `gorm:"type:uuid"`
	CustomerName  string  `gorm:"not null"`
	CustomerPhone string
	Item          string `gorm:"not null"`
	Quantity      float64
	Unit          string
	UnitPrice     float64
	TotalAmount   float64
	AmountPaid    float64
	AmountPending float64
	PaymentStatus string `gorm:"index"`
	SaleDate      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (saleModel) TableName() string { return "sales" }

func saleModelFrom(s *domain.Sale) saleModel {
	m := saleModel{
		ID:            s.ID,
		FarmerID:      s.FarmerID,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Item:          s.Item,
		Quantity:      s.Quantity,
		Unit:          s.Unit,
		UnitPrice:     s.UnitPrice,
		TotalAmount:   s.TotalAmount,
		AmountPaid:    s.AmountPaid,
		AmountPending: s.AmountPending,
		PaymentStatus: string(s.PaymentStatus),
		SaleDate:      s.SaleDate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.FarmID != "" {
		farmID := s.FarmID
		m.FarmID = &farmID
	}
	return m
}

func (m saleModel) toEntity() *domain.Sale {
	s := &domain.Sale{
		ID:            m.ID,
		FarmerID:      m.FarmerID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Item:          m.Item,
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		UnitPrice:     m.UnitPrice,
		TotalAmount:   m.TotalAmount,
		AmountPaid:    m.AmountPaid,
		AmountPending: m.AmountPending,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		SaleDate:      m.SaleDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.FarmID != nil {
		s.FarmID = *m.FarmID
	}
	return s
}

type healthRecordModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	AnimalID        string `gorm:"type:uuid;index;not null"`
	FarmID          string `gorm:"type:uuid;not null"`
	RecordedBy      string `gorm:"type:uuid"`
	VisitDate       time.Time
	Diagnosis       string
	Treatment       string
	Medications     string
	Vaccination     bool
	NextCheckupDate *time.Time
	Cost            *float64
	Notes           string
	CreatedAt       time.Time
}

func (healthRecordModel) TableName() string { return "health_records" }

func healthRecordModelFrom(r *domain.HealthRecord) healthRecordModel {
	return healthRecordModel{
		ID:              r.ID,
		AnimalID:        r.AnimalID,
		FarmID:          r.FarmID,
		RecordedBy:      r.RecordedBy,
		VisitDate:       r.VisitDate,
		Diagnosis:       r.Diagnosis,
		Treatment:       r.Treatment,
		Medications:     r.Medications,
		Vaccination:     r.Vaccination,
		NextCheckupDate: r.NextCheckupDate,
		Cost:            r.Cost,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
	}
}

func (m healthRecordModel) toEntity() *domain.HealthRecord {
	return &domain.HealthRecord{
		ID:              m.ID,
		AnimalID:        m.AnimalID,
		FarmID:          m.FarmID,
		RecordedBy:      m.RecordedBy,
		VisitDate:       m.VisitDate,
		Diagnosis:       m.Diagnosis,
		Treatment:       m.Treatment,
		Medications:     m.Medications,
		Vaccination:     m.Vaccination,
		NextCheckupDate: m.NextCheckupDate,
		Cost:            m.Cost,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}

type contactModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OwnerID   string `gorm:"type:uuid;index;not null"`
	Name      string `gorm:"not null"`
	Category  string
	Phone     string
	Email     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (contactModel) TableName() string { return "contacts" }

func contactModelFrom(c *domain.Contact) contactModel {
	return contactModel{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Category:  c.Category,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m contactModel) toEntity() *domain.Contact {
	return &domain.Contact{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Category:  m.Category,
		Phone:     m.Phone,
		Email:     m.Email,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type feedModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	AnimalID    string    `gorm:"type:uuid;index;not null"`
	FarmID      string    `gorm:"type:uuid;index:idx_feeds_farm_date;not null"`
	FeedType    string    `gorm:"not null"`
	Quantity    float64   `gorm:"not null"`
	Unit        string    `gorm:"not null"`
	FeedingTime string
	Date        time.Time `gorm:"index:idx_feeds_farm_date"`
	Supplements string
	Cost        *float64
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (feedModel) TableName() string { return "feeds" }

func feedModelFrom(f *domain.Feed) feedModel {
	return feedModel{
		ID:          f.ID,
		AnimalID:    f.AnimalID,
		FarmID:      f.FarmID,
		FeedType:    f.FeedType,
		Quantity:    f.Quantity,
		Unit:        f.Unit,
		FeedingTime: f.FeedingTime,
		Date:        f.Date,
		Supplements: f.Supplements,
		Cost:        f.Cost,
		Notes:       f.Notes,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (m feedModel) toEntity() *domain.Feed {
	return &domain.Feed{
		ID:          m.ID,
		AnimalID:    m.AnimalID,
		FarmID:      m.FarmID,
		FeedType:    m.FeedType,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		FeedingTime: m.FeedingTime,
		Date:        m.Date,
		Supplements: m.Supplements,
		Cost:        m.Cost,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type produceModel struct {
	ID              string  `gorm:"primaryKey;type:uuid"`
	OwnerID         string  `gorm:"type:uuid;index:idx_produce_owner_type;not null"`
	Name            string  `gorm:"not null"`
	Type            string  `gorm:"index:idx_produce_owner_type;not null"`
	Quantity        float64 `gorm:"not null"`
	Unit            string  `gorm:"not null"`
	HarvestDate     *time.Time
	ExpiryDate      *time.Time
	QualityGrade    string
	StorageLocation string
	CropID          *string `gorm:"type:uuid"`
	AnimalID        *string `gorm:"type:uuid"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (produceModel) TableName() string { return "produce" }

func produceModelFrom(p *domain.Produce) produceModel {
	return produceModel{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Name:            p.Name,
		Type:            p.Type,
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		HarvestDate:     p.HarvestDate,
		ExpiryDate:      p.ExpiryDate,
		QualityGrade:    p.QualityGrade,
		StorageLocation: p.StorageLocation,
		CropID:          nullableID(p.CropID),
		AnimalID:        nullableID(p.AnimalID),
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m produceModel) toEntity() *domain.Produce {
	p := &domain.Produce{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Name:            m.Name,
		Type:            m.Type,
		Quantity:        m.Quantity,
		Unit:            m.Unit,
		HarvestDate:     m.HarvestDate,
		ExpiryDate:      m.ExpiryDate,
		QualityGrade:    m.QualityGrade,
		StorageLocation: m.StorageLocation,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.CropID != nil {
		p.CropID = *m.CropID
	}
	if m.AnimalID != nil {
		p.AnimalID = *m.AnimalID
	}
	return p
}

// nullableID maps an empty optional reference to SQL NULL.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func toEntities[M interface{ toEntity() *E }, E any](rows []M) []*E {
	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out
}
