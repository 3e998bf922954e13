package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
)

type productStore struct {
	db *gorm.DB
}

// NewProductStore returns a GORM-backed ProductStore.
func NewProductStore(db *gorm.DB) ProductStore {
	return &productStore{db: db}
}

func (s *productStore) Create(ctx context.Context, p *models.Product) error {
	return wrapErr(s.db.WithContext(ctx).Create(p).Error, "create product")
}

func (s *productStore) ByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, "product_id = ?", id).Error; err != nil {
		return nil, wrapErr(err, "find product")
	}
	return &p, nil
}

func (s *productStore) Update(ctx context.Context, p *models.Product) error {
	return wrapErr(s.db.WithContext(ctx).Save(p).Error, "update product")
}

func (s *productStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, "product_id = ?", id)
	if res.Error != nil {
		return wrapErr(res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *productStore) List(ctx context.Context, spec *query.Spec) ([]models.Product, int64, error) {
	var totalCount int64
	if err := spec.Apply(s.db.WithContext(ctx).Model(&models.Product{})).Count(&totalCount).Error; err != nil {
		return nil, 0, wrapErr(err, "count products")
	}

	products := []models.Product{}
	if err := spec.ApplyPaged(s.db.WithContext(ctx)).Find(&products).Error; err != nil {
		return nil, 0, wrapErr(err, "list products")
	}
	return products, totalCount, nil
}

func (s *productStore) Search(ctx context.Context, term string, limit int) ([]models.Product, error) {
	products := []models.Product{}
	pattern := "%" + term + "%"
	err := s.db.WithContext(ctx).
		Where("product_name ILIKE ? OR package ILIKE ?", pattern, pattern).
		Order("product_name").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, wrapErr(err, "search products")
	}
	return products, nil
}

func (s *productStore) All(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, wrapErr(err, "load products")
	}
	return products, nil
}

func (s *productStore) CountBySupplier(ctx context.Context, supplierID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error
	if err != nil {
		return 0, wrapErr(err, "count products by supplier")
	}
	return count, nil
}
