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

// SupplierService manages suppliers and guards their deletion while they
// still own products.
type SupplierService struct {
	suppliers store.SupplierStore
	products  store.ProductStore
}

// NewSupplierService creates the supplier rules.
func NewSupplierService(suppliers store.SupplierStore, products store.ProductStore) *SupplierService {
	return &SupplierService{suppliers: suppliers, products: products}
}

func (s *SupplierService) Create(ctx context.Context, sup *models.Supplier) (*models.Supplier, error) {
	if strings.TrimSpace(sup.CompanyName) == "" {
		return nil, invalidInput("company name must not be empty")
	}
	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, storageErr(err, "create supplier")
	}
	return sup, nil
}

func (s *SupplierService) ByID(ctx context.Context, id uint) (*models.Supplier, error) {
	sup, err := s.suppliers.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("supplier %d does not exist", id))
		}
		return nil, storageErr(err, "load supplier")
	}
	return sup, nil
}

func (s *SupplierService) Update(ctx context.Context, id uint, in *models.Supplier) (*models.Supplier, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, invalidInput("company name must not be empty")
	}
	sup, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sup.CompanyName = in.CompanyName
	sup.ContactName = in.ContactName
	sup.City = in.City
	sup.Country = in.Country
	sup.Phone = in.Phone
	sup.Fax = in.Fax
	if err := s.suppliers.Update(ctx, sup); err != nil {
		return nil, storageErr(err, "update supplier")
	}
	return sup, nil
}

// Delete refuses to remove a supplier that still owns products.
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.ByID(ctx, id); err != nil {
		return err
	}
	owned, err := s.products.CountBySupplier(ctx, id)
	if err != nil {
		return storageErr(err, "count supplier products")
	}
	if owned > 0 {
		return invalidOperation(fmt.Sprintf("supplier %d still owns %d product(s)", id, owned))
	}
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return storageErr(err, "delete supplier")
	}
	return nil
}

func (s *SupplierService) List(ctx context.Context, filter SupplierFilter, params query.Params) ([]models.Supplier, query.PageInfo, error) {
	suppliers, totalCount, err := s.suppliers.List(ctx, filter.Spec(params))
	if err != nil {
		return nil, query.PageInfo{}, storageErr(err, "list suppliers")
	}
	return suppliers, query.NewPageInfo(totalCount, params), nil
}

func (s *SupplierService) Search(ctx context.Context, term string) ([]models.Supplier, error) {
	term = strings.TrimSpace(term)
	if len(term) < query.SearchMinTermLength {
		return nil, invalidInput("search term must be at least 2 characters")
	}
	suppliers, err := s.suppliers.Search(ctx, term, query.SearchLimit)
	if err != nil {
		return nil, storageErr(err, "search suppliers")
	}
	return suppliers, nil
}
