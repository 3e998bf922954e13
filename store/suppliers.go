package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
)

type supplierStore struct {
	db *gorm.DB
}

// NewSupplierStore returns a GORM-backed SupplierStore.
func NewSupplierStore(db *gorm.DB) SupplierStore {
	return &supplierStore{db: db}
}

func (s *supplierStore) Create(ctx context.Context, sup *models.Supplier) error {
	return wrapErr(s.db.WithContext(ctx).Create(sup).Error, "create supplier")
}

func (s *supplierStore) ByID(ctx context.Context, id uint) (*models.Supplier, error) {
	var sup models.Supplier
	if err := s.db.WithContext(ctx).First(&sup, "supplier_id = ?", id).Error; err != nil {
		return nil, wrapErr(err, "find supplier")
	}
	return &sup, nil
}

func (s *supplierStore) Update(ctx context.Context, sup *models.Supplier) error {
	return wrapErr(s.db.WithContext(ctx).Save(sup).Error, "update supplier")
}

func (s *supplierStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Supplier{}, "supplier_id = ?", id)
	if res.Error != nil {
		return wrapErr(res.Error, "delete supplier")
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *supplierStore) List(ctx context.Context, spec *query.Spec) ([]models.Supplier, int64, error) {
	var totalCount int64
	if err := spec.Apply(s.db.WithContext(ctx).Model(&models.Supplier{})).Count(&totalCount).Error; err != nil {
		return nil, 0, wrapErr(err, "count suppliers")
	}

	suppliers := []models.Supplier{}
	if err := spec.ApplyPaged(s.db.WithContext(ctx)).Find(&suppliers).Error; err != nil {
		return nil, 0, wrapErr(err, "list suppliers")
	}
	return suppliers, totalCount, nil
}

func (s *supplierStore) Search(ctx context.Context, term string, limit int) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	pattern := "%" + term + "%"
	err := s.db.WithContext(ctx).
		Where("company_name ILIKE ? OR contact_name ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern).
		Order("company_name").
		Limit(limit).
		Find(&suppliers).Error
	if err != nil {
		return nil, wrapErr(err, "search suppliers")
	}
	return suppliers, nil
}

func (s *supplierStore) All(ctx context.Context) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	if err := s.db.WithContext(ctx).Find(&suppliers).Error; err != nil {
		return nil, wrapErr(err, "load suppliers")
	}
	return suppliers, nil
}
