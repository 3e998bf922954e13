package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
)

type customerStore struct {
	db *gorm.DB
}

// NewCustomerStore returns a GORM-backed CustomerStore.
func NewCustomerStore(db *gorm.DB) CustomerStore {
	return &customerStore{db: db}
}

func (s *customerStore) Create(ctx context.Context, c *models.Customer) error {
	return wrapErr(s.db.WithContext(ctx).Create(c).Error, "create customer")
}

func (s *customerStore) ByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, "customer_id = ?", id).Error; err != nil {
		return nil, wrapErr(err, "find customer")
	}
	return &c, nil
}

func (s *customerStore) Update(ctx context.Context, c *models.Customer) error {
	return wrapErr(s.db.WithContext(ctx).Save(c).Error, "update customer")
}

func (s *customerStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Customer{}, "customer_id = ?", id)
	if res.Error != nil {
		return wrapErr(res.Error, "delete customer")
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *customerStore) List(ctx context.Context, spec *query.Spec) ([]models.Customer, int64, error) {
	var totalCount int64
	if err := spec.Apply(s.db.WithContext(ctx).Model(&models.Customer{})).Count(&totalCount).Error; err != nil {
		return nil, 0, wrapErr(err, "count customers")
	}

	customers := []models.Customer{}
	if err := spec.ApplyPaged(s.db.WithContext(ctx)).Find(&customers).Error; err != nil {
		return nil, 0, wrapErr(err, "list customers")
	}
	return customers, totalCount, nil
}

func (s *customerStore) Search(ctx context.Context, term string, limit int) ([]models.Customer, error) {
	customers := []models.Customer{}
	pattern := "%" + term + "%"
	err := s.db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern).
		Order("last_name, first_name").
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, wrapErr(err, "search customers")
	}
	return customers, nil
}

func (s *customerStore) All(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, wrapErr(err, "load customers")
	}
	return customers, nil
}
