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

// CustomerService manages customers and guards their deletion while they
// still own orders.
type CustomerService struct {
	customers store.CustomerStore
	orders    store.OrderStore
}

// NewCustomerService creates the customer rules.
func NewCustomerService(customers store.CustomerStore, orders store.OrderStore) *CustomerService {
	return &CustomerService{customers: customers, orders: orders}
}

func (s *CustomerService) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	if err := validateCustomer(c); err != nil {
		return nil, err
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, storageErr(err, "create customer")
	}
	return c, nil
}

func (s *CustomerService) ByID(ctx context.Context, id uint) (*models.Customer, error) {
	c, err := s.customers.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("customer %d does not exist", id))
		}
		return nil, storageErr(err, "load customer")
	}
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id uint, in *models.Customer) (*models.Customer, error) {
	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	c, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.City = in.City
	c.Country = in.Country
	c.Phone = in.Phone
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, storageErr(err, "update customer")
	}
	return c, nil
}

// Delete refuses to remove a customer that still owns orders.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.ByID(ctx, id); err != nil {
		return err
	}
	owned, err := s.orders.CountByCustomer(ctx, id)
	if err != nil {
		return storageErr(err, "count customer orders")
	}
	if owned > 0 {
		return invalidOperation(fmt.Sprintf("customer %d still owns %d order(s)", id, owned))
	}
	if err := s.customers.Delete(ctx, id); err != nil {
		return storageErr(err, "delete customer")
	}
	return nil
}

func (s *CustomerService) List(ctx context.Context, filter CustomerFilter, params query.Params) ([]models.Customer, query.PageInfo, error) {
	customers, totalCount, err := s.customers.List(ctx, filter.Spec(params))
	if err != nil {
		return nil, query.PageInfo{}, storageErr(err, "list customers")
	}
	return customers, query.NewPageInfo(totalCount, params), nil
}

// Search returns up to 20 customers matching the term; terms shorter than
// two characters are rejected.
func (s *CustomerService) Search(ctx context.Context, term string) ([]models.Customer, error) {
	term = strings.TrimSpace(term)
	if len(term) < query.SearchMinTermLength {
		return nil, invalidInput("search term must be at least 2 characters")
	}
	customers, err := s.customers.Search(ctx, term, query.SearchLimit)
	if err != nil {
		return nil, storageErr(err, "search customers")
	}
	return customers, nil
}

func validateCustomer(c *models.Customer) error {
	if strings.TrimSpace(c.FirstName) == "" {
		return invalidInput("first name must not be empty")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return invalidInput("last name must not be empty")
	}
	return nil
}
