package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
)

// CustomerFilter narrows customer listings. Search matches first name, last
// name and phone, case-insensitively.
type CustomerFilter struct {
	Search  string
	City    string
	Country string
}

func (f CustomerFilter) Spec(params query.Params) *query.Spec {
	spec := query.NewSpec("last_name, first_name", params)
	if f.Search != "" {
		spec.WhereContainsAny([]string{"first_name", "last_name", "phone"}, f.Search)
	}
	if f.City != "" {
		spec.Where("city = ?", f.City)
	}
	if f.Country != "" {
		spec.Where("country = ?", f.Country)
	}
	return spec
}

// SupplierFilter narrows supplier listings.
type SupplierFilter struct {
	Search  string
	City    string
	Country string
}

func (f SupplierFilter) Spec(params query.Params) *query.Spec {
	spec := query.NewSpec("company_name", params)
	if f.Search != "" {
		spec.WhereContainsAny([]string{"company_name", "contact_name", "phone"}, f.Search)
	}
	if f.City != "" {
		spec.Where("city = ?", f.City)
	}
	if f.Country != "" {
		spec.Where("country = ?", f.Country)
	}
	return spec
}

// ProductFilter narrows product listings. Price bounds must be non-negative
// and min must not exceed max.
type ProductFilter struct {
	Search       string
	SupplierID   uint
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Discontinued *bool
}

func (f ProductFilter) Validate() error {
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return invalidInput("minimum price must not be negative")
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return invalidInput("maximum price must not be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return invalidInput("minimum price exceeds maximum price")
	}
	return nil
}

func (f ProductFilter) Spec(params query.Params) *query.Spec {
	spec := query.NewSpec("product_name", params)
	if f.Search != "" {
		spec.WhereContainsAny([]string{"product_name", "package"}, f.Search)
	}
	if f.SupplierID != 0 {
		spec.Where("supplier_id = ?", f.SupplierID)
	}
	if f.MinPrice != nil {
		spec.Where("unit_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		spec.Where("unit_price <= ?", *f.MaxPrice)
	}
	if f.Discontinued != nil {
		spec.Where("is_discontinued = ?", *f.Discontinued)
	}
	return spec
}

// OrderFilter narrows order listings. Amount bounds must be non-negative,
// min must not exceed max, and the date range must not be inverted.
type OrderFilter struct {
	CustomerID uint
	From       *time.Time
	To         *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

func (f OrderFilter) Validate() error {
	if f.MinAmount != nil && f.MinAmount.IsNegative() {
		return invalidInput("minimum amount must not be negative")
	}
	if f.MaxAmount != nil && f.MaxAmount.IsNegative() {
		return invalidInput("maximum amount must not be negative")
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MinAmount.GreaterThan(*f.MaxAmount) {
		return invalidInput("minimum amount exceeds maximum amount")
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return invalidInput("date range start is after its end")
	}
	return nil
}

func (f OrderFilter) Spec(params query.Params) *query.Spec {
	spec := query.NewSpec("order_date DESC, order_id DESC", params)
	if f.CustomerID != 0 {
		spec.Where("customer_id = ?", f.CustomerID)
	}
	if f.From != nil {
		spec.Where("order_date >= ?", *f.From)
	}
	if f.To != nil {
		spec.Where("order_date <= ?", *f.To)
	}
	if f.MinAmount != nil {
		spec.Where("total_amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		spec.Where("total_amount <= ?", *f.MaxAmount)
	}
	return spec
}
