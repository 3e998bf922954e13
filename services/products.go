package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/store"
)

// ProductService manages products. A product referenced by order items is
// never hard-deleted; it is discontinued instead, which blocks new orders
// while leaving historical items intact.
type ProductService struct {
	products  store.ProductStore
	suppliers store.SupplierStore
	orders    store.OrderStore
}

// NewProductService creates the product rules.
func NewProductService(products store.ProductStore, suppliers store.SupplierStore, orders store.OrderStore) *ProductService {
	return &ProductService{products: products, suppliers: suppliers, orders: orders}
}

func (s *ProductService) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := s.validateProduct(ctx, p); err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, storageErr(err, "create product")
	}
	return p, nil
}

func (s *ProductService) ByID(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.products.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("product %d does not exist", id))
		}
		return nil, storageErr(err, "load product")
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in *models.Product) (*models.Product, error) {
	if err := s.validateProduct(ctx, in); err != nil {
		return nil, err
	}
	p, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ProductName = in.ProductName
	p.SupplierID = in.SupplierID
	p.UnitPrice = in.UnitPrice
	p.Package = in.Package
	if err := s.products.Update(ctx, p); err != nil {
		return nil, storageErr(err, "update product")
	}
	return p, nil
}

// Delete refuses to remove a product referenced by any order item; such
// products should be discontinued instead.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.ByID(ctx, id); err != nil {
		return err
	}
	refs, err := s.orders.CountItemsByProduct(ctx, id)
	if err != nil {
		return storageErr(err, "count product references")
	}
	if refs > 0 {
		return invalidOperation(fmt.Sprintf("product %d is referenced by %d order item(s); discontinue it instead", id, refs))
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return storageErr(err, "delete product")
	}
	return nil
}

// Discontinue blocks new orders for the product. Discontinuing an already
// discontinued product fails.
func (s *ProductService) Discontinue(ctx context.Context, id uint) (*models.Product, error) {
	return s.setDiscontinued(ctx, id, true)
}

// Reactivate makes a discontinued product orderable again.
func (s *ProductService) Reactivate(ctx context.Context, id uint) (*models.Product, error) {
	return s.setDiscontinued(ctx, id, false)
}

func (s *ProductService) setDiscontinued(ctx context.Context, id uint, discontinued bool) (*models.Product, error) {
	p, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsDiscontinued == discontinued {
		if discontinued {
			return nil, invalidOperation(fmt.Sprintf("product %d is already discontinued", id))
		}
		return nil, invalidOperation(fmt.Sprintf("product %d is already active", id))
	}
	p.IsDiscontinued = discontinued
	if err := s.products.Update(ctx, p); err != nil {
		return nil, storageErr(err, "update product")
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context, filter ProductFilter, params query.Params) ([]models.Product, query.PageInfo, error) {
	if err := filter.Validate(); err != nil {
		return nil, query.PageInfo{}, err
	}
	products, totalCount, err := s.products.List(ctx, filter.Spec(params))
	if err != nil {
		return nil, query.PageInfo{}, storageErr(err, "list products")
	}
	return products, query.NewPageInfo(totalCount, params), nil
}

func (s *ProductService) Search(ctx context.Context, term string) ([]models.Product, error) {
	term = strings.TrimSpace(term)
	if len(term) < query.SearchMinTermLength {
		return nil, invalidInput("search term must be at least 2 characters")
	}
	products, err := s.products.Search(ctx, term, query.SearchLimit)
	if err != nil {
		return nil, storageErr(err, "search products")
	}
	return products, nil
}

func (s *ProductService) validateProduct(ctx context.Context, p *models.Product) error {
	if strings.TrimSpace(p.ProductName) == "" {
		return invalidInput("product name must not be empty")
	}
	if !p.UnitPrice.IsPositive() {
		return invalidInput("unit price must be greater than zero")
	}
	if _, err := s.suppliers.ByID(ctx, p.SupplierID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return notFound(fmt.Sprintf("supplier %d does not exist", p.SupplierID))
		}
		return storageErr(err, "look up supplier")
	}
	return nil
}
