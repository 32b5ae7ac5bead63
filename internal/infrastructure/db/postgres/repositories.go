package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(p *Postgres) *AccountRepository {
	return &AccountRepository{db: p.DB}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	row := accountModelFrom(a)
	err := translate("insert account", r.db.WithContext(ctx).Create(&row).Error)
	if errors.Is(err, domain.ErrConflict) {
		return domain.ErrAccountExists
	}
	return err
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	row := accountModelFrom(a)
	err := saved("update account", r.db.WithContext(ctx).Model(&accountModel{}).Where("id = ?", a.ID).Select("*").Updates(&row))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrAccountNotFound
	}
	return err
}

func (r *AccountRepository) ListByRoles(ctx context.Context, roles []string) ([]*domain.Account, error) {
	var rows []accountModel
	if err := r.db.WithContext(ctx).Where("role IN ?", roles).Order("full_name ASC").Find(&rows).Error; err != nil {
		return nil, translate("list accounts", err)
	}
	return toEntities[accountModel, domain.Account](rows), nil
}

func (r *AccountRepository) first(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var row accountModel
	err := translate("find account", r.db.WithContext(ctx).Where(query, arg).First(&row).Error)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toEntity(), nil
}

type FarmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(p *Postgres) *FarmRepository {
	return &FarmRepository{db: p.DB}
}

func (r *FarmRepository) Create(ctx context.Context, f *domain.Farm) error {
	row := farmModelFrom(f)
	return translate("insert farm", r.db.WithContext(ctx).Create(&row).Error)
}

func (r *FarmRepository) FindByID(ctx context.Context, id string) (*domain.Farm, error) {
	var row farmModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate("find farm", err)
	}
	return row.toEntity(), nil
}

func (r *FarmRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Farm, error) {
	tx := r.db.WithContext(ctx).Where("is_active = ?", true)
	if ownerID != "" {
		tx = tx.Where("owner_id = ?", ownerID)
	}
	var rows []farmModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, translate("list farms", err)
	}
	return toEntities[farmModel, domain.Farm](rows), nil
}

func (r *FarmRepository) Update(ctx context.Context, f *domain.Farm) error {
	row := farmModelFrom(f)
	return saved("update farm", r.db.WithContext(ctx).Model(&farmModel{}).Where("id = ?", f.ID).Select("*").Updates(&row))
}

type AnimalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(p *Postgres) *AnimalRepository {
	return &AnimalRepository{db: p.DB}
}

func (r *AnimalRepository) Create(ctx context.Context, a *domain.Animal) error {
	row := animalModelFrom(a)
	return translate("insert animal", r.db.WithContext(ctx).Create(&row).Error)
}

func (r *AnimalRepository) FindByID(ctx context.Context, id string) (*domain.Animal, error) {
	var row animalModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate("find animal", err)
	}
	return row.toEntity(), nil
}

func (r *AnimalRepository) ExistsTag(ctx context.Context, farmID, tag string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&animalModel{}).
		Where("farm_id = ? AND tag_number = ? AND is_active = ?", farmID, tag, true).
		Count(&n).Error
	if err != nil {
		return false, translate("count animals", err)
	}
	return n > 0, nil
}

func (r *AnimalRepository) ListByFarms(ctx context.Context, farmIDs []string, species string) ([]*domain.Animal, error) {
	tx := r.db.WithContext(ctx).Where("farm_id IN ? AND is_active = ?", farmIDs, true)
	if species != "" {
		tx = tx.Where("species = ?", species)
	}
	var rows []animalModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, translate("list animals", err)
	}
	return toEntities[animalModel, domain.Animal](rows), nil
}

func (r *AnimalRepository) Update(ctx context.Context, a *domain.Animal) error {
	row := animalModelFrom(a)
	return saved("update animal", r.db.WithContext(ctx).Model(&animalModel{}).Where("id = ?", a.ID).Select("*").Updates(&row))
}

type CropRepository struct {
	db *gorm.DB
}

func NewCropRepository(p *Postgres) *CropRepository {
	return &CropRepository{db: p.DB}
}

func (r *CropRepository) Create(ctx context.Context, c *domain.Crop) error {
	row := cropModelFrom(c)
	return translate("insert crop", r.db.WithContext(ctx).Create(&row).Error)
}

func (r *CropRepository) FindByID(ctx context.Context, id string) (*domain.Crop, error) {
	var row cropModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate("find crop", err)
	}
	return row.toEntity(), nil
}

func (r *CropRepository) ListByFarms(ctx context.Context, farmIDs []string, status string) ([]*domain.Crop, error) {
	tx := r.db.WithContext(ctx).Where("farm_id IN ?", farmIDs)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var rows []cropModel
	if err := tx.Order("planting_date DESC").Find(&rows).Error; err != nil {
		return nil, translate("list crops", err)
	}
	return toEntities[cropModel, domain.Crop](rows), nil
}

func (r *CropRepository) Update(ctx context.Context, c *domain.Crop) error {
	row := cropModelFrom(c)
	return saved("update crop", r.db.WithContext(ctx).Model(&cropModel{}).Where("id = ?", c.ID).Select("*").Updates(&row))
}

func (r *CropRepository) Delete(ctx context.Context, id string) error {
	return saved("delete crop", r.db.WithContext(ctx).Where("id = ?", id).Delete(&cropModel{}))
}

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(p *Postgres) *SaleRepository {
	return &SaleRepository{db: p.DB}
}

func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) error {
	row := saleModelFrom(s)
	return translate("insert sale", r.db.WithContext(ctx).Create(&row).Error)
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (*domain.Sale, error) {
	var row saleModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate("find sale", err)
	}
	return row.toEntity(), nil
}

func (r *SaleRepository) ListByFarmer(ctx context.Context, farmerID, paymentStatus string) ([]*domain.Sale, error) {
	tx := r.db.WithContext(ctx).Model(&saleModel{})
	if farmerID != "" {
		tx = tx.Where("farmer_id = ?", farmerID)
	}
	if paymentStatus != "" {
		tx = tx.Where("payment_status = ?", paymentStatus)
	}
	var rows []saleModel
	if err := tx.Order("sale_date DESC").Find(&rows).Error; err != nil {
		return nil, translate("list sales", err)
	}
	return toEntities[saleModel, domain.Sale](rows), nil
}

func (r *SaleRepository) Update(ctx context.Context, s *domain.Sale) error {
	row := saleModelFrom(s)
	return saved("update sale", r.db.WithContext(ctx).Model(&saleModel{}).Where("id = ?", s.ID).Select("*").Updates(&row))
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	return saved("delete sale", r.db.WithContext(ctx).Where("id = ?", id).Delete(&saleModel{}))
}

type HealthRecordRepository struct {
	db *gorm.DB
}

func NewHealthRecordRepository(p *Postgres) *HealthRecordRepository {
	return &HealthRecordRepository{db: p.DB}
}

func (r *HealthRecordRepository) Create(ctx context.Context, rec *domain.HealthRecord) error {
	row := healthRecordModelFrom(rec)
	return translate("insert health record", r.db.WithContext(ctx).Create(&row).Error)
}

func (r *HealthRecordRepository) FindByID(ctx context.Context, id string) (*domain.HealthRecord, error) {
	var row healthRecordModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate("find health record", err)
	}
	return row.toEntity(), nil
}

func (r *HealthRecordRepository) ListByAnimal(ctx context.Context, animalID string) ([]*domain.HealthRecord, error) {
	var rows []healthRecordModel
	if err := r.db.WithContext(ctx).Where("animal_id = ?", animalID).Order("visit_date DESC").Find(&rows).Error; err != nil {
		return nil, translate("list health records", err)
	}
	return toEntities[healthRecordModel, domain.HealthRecord](rows), nil
}

func (r *HealthRecordRepository) Delete(ctx context.Context, id string) error {
	return saved("delete health record", r.db.WithContext(ctx).Where("id = ?", id).Delete(&healthRecordModel{}))
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(p *Postgres) *ContactRepository {
	return &ContactRepository{db: p.DB}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	row := contactModelFrom(c)
	return translate("insert contact", r.db.WithContext(ctx).Create(&row).Error)
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	var row contactModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate("find contact", err)
	}
	return row.toEntity(), nil
}

func (r *ContactRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Contact, error) {
	var rows []contactModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, translate("list contacts", err)
	}
	return toEntities[contactModel, domain.Contact](rows), nil
}

func (r *ContactRepository) Update(ctx context.Context, c *domain.Contact) error {
	row := contactModelFrom(c)
	return saved("update contact", r.db.WithContext(ctx).Model(&contactModel{}).Where("id = ?", c.ID).Select("*").Updates(&row))
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return saved("delete contact", r.db.WithContext(ctx).Where("id = ?", id).Delete(&contactModel{}))
}

type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(p *Postgres) *FeedRepository {
	return &FeedRepository{db: p.DB}
}

func (r *FeedRepository) Create(ctx context.Context, f *domain.Feed) error {
	row := feedModelFrom(f)
	return translate("insert feed", r.db.WithContext(ctx).Create(&row).Error)
}

func (r *FeedRepository) FindByID(ctx context.Context, id string) (*domain.Feed, error) {
	var row feedModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate("find feed", err)
	}
	return row.toEntity(), nil
}

func (r *FeedRepository) ListByFarms(ctx context.Context, farmIDs []string, filter domain.FeedFilter) ([]*domain.Feed, error) {
	tx := r.db.WithContext(ctx).Where("farm_id IN ?", farmIDs)
	if filter.AnimalID != "" {
		tx = tx.Where("animal_id = ?", filter.AnimalID)
	}
	if filter.From != nil {
		tx = tx.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		tx = tx.Where("date <= ?", *filter.To)
	}
	var rows []feedModel
	if err := tx.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, translate("list feeds", err)
	}
	return toEntities[feedModel, domain.Feed](rows), nil
}

func (r *FeedRepository) Update(ctx context.Context, f *domain.Feed) error {
	row := feedModelFrom(f)
	return saved("update feed", r.db.WithContext(ctx).Model(&feedModel{}).Where("id = ?", f.ID).Select("*").Updates(&row))
}

func (r *FeedRepository) Delete(ctx context.Context, id string) error {
	return saved("delete feed", r.db.WithContext(ctx).Where("id = ?", id).Delete(&feedModel{}))
}

type ProduceRepository struct {
	db *gorm.DB
}

func NewProduceRepository(p *Postgres) *ProduceRepository {
	return &ProduceRepository{db: p.DB}
}

func (r *ProduceRepository) Create(ctx context.Context, p *domain.Produce) error {
	row := produceModelFrom(p)
	return translate("insert produce", r.db.WithContext(ctx).Create(&row).Error)
}

func (r *ProduceRepository) FindByID(ctx context.Context, id string) (*domain.Produce, error) {
	var row produceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate("find produce", err)
	}
	return row.toEntity(), nil
}

func (r *ProduceRepository) ListByOwner(ctx context.Context, ownerID, produceType string) ([]*domain.Produce, error) {
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if produceType != "" {
		tx = tx.Where("type = ?", produceType)
	}
	var rows []produceModel
	if err := tx.Order("harvest_date DESC NULLS LAST").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, translate("list produce", err)
	}
	return toEntities[produceModel, domain.Produce](rows), nil
}

func (r *ProduceRepository) Update(ctx context.Context, p *domain.Produce) error {
	row := produceModelFrom(p)
	return saved("update produce", r.db.WithContext(ctx).Model(&produceModel{}).Where("id = ?", p.ID).Select("*").Updates(&row))
}

func (r *ProduceRepository) Delete(ctx context.Context, id string) error {
	return saved("delete produce", r.db.WithContext(ctx).Where("id = ?", id).Delete(&produceModel{}))
}

var (
	_ ports.AccountRepository      = (*AccountRepository)(nil)
	_ ports.FarmRepository         = (*FarmRepository)(nil)
	_ ports.AnimalRepository       = (*AnimalRepository)(nil)
	_ ports.CropRepository         = (*CropRepository)(nil)
	_ ports.SaleRepository         = (*SaleRepository)(nil)
	_ ports.HealthRecordRepository = (*HealthRecordRepository)(nil)
	_ ports.ContactRepository      = (*ContactRepository)(nil)
	_ ports.FeedRepository         = (*FeedRepository)(nil)
	_ ports.ProduceRepository      = (*ProduceRepository)(nil)
)
