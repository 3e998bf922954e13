package store

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
)

// Storage-level outcomes the rules engines react to. Everything else that
// bubbles up from the database is an unclassified storage failure.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key value")
	ErrStaleRecord    = errors.New("record version is stale")
)

// CustomerStore persists customers.
type CustomerStore interface {
	Create(ctx context.Context, c *models.Customer) error
	ByID(ctx context.Context, id uint) (*models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, spec *query.Spec) ([]models.Customer, int64, error)
	Search(ctx context.Context, term string, limit int) ([]models.Customer, error)
	All(ctx context.Context) ([]models.Customer, error)
}

// SupplierStore persists suppliers.
type SupplierStore interface {
	Create(ctx context.Context, s *models.Supplier) error
	ByID(ctx context.Context, id uint) (*models.Supplier, error)
	Update(ctx context.Context, s *models.Supplier) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, spec *query.Spec) ([]models.Supplier, int64, error)
	Search(ctx context.Context, term string, limit int) ([]models.Supplier, error)
	All(ctx context.Context) ([]models.Supplier, error)
}

// ProductStore persists products.
type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	ByID(ctx context.Context, id uint) (*models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, spec *query.Spec) ([]models.Product, int64, error)
	Search(ctx context.Context, term string, limit int) ([]models.Product, error)
	All(ctx context.Context) ([]models.Product, error)
	CountBySupplier(ctx context.Context, supplierID uint) (int64, error)
}

// OrderStore persists the order aggregate. Create, UpdateItem, DeleteItem and
// Delete each span the order and its items in one transaction; UpdateItem and
// DeleteItem additionally guard the order row by version.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	ByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context, spec *query.Spec) ([]models.Order, int64, error)
	Delete(ctx context.Context, o *models.Order) error
	ItemByID(ctx context.Context, id uint) (*models.OrderItem, error)
	UpdateItem(ctx context.Context, item *models.OrderItem, order *models.Order) error
	DeleteItem(ctx context.Context, item *models.OrderItem, order *models.Order) error
	Between(ctx context.Context, from, to time.Time) ([]models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	AllItems(ctx context.Context) ([]models.OrderItem, error)
	CountByCustomer(ctx context.Context, customerID uint) (int64, error)
	CountItemsByProduct(ctx context.Context, productID uint) (int64, error)
	CountItems(ctx context.Context, orderID uint) (int64, error)
}

// wrapErr maps driver errors onto the store's sentinel errors.
func wrapErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(ErrRecordNotFound, msg)
	}
	if isUniqueViolation(err) {
		return errors.Wrap(ErrDuplicateKey, msg)
	}
	return errors.Wrap(err, msg)
}

// isUniqueViolation detects a PostgreSQL unique constraint violation (23505).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "SQLSTATE 23505") || strings.Contains(s, "duplicate key value")
}
