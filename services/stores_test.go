package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/store"
)

// In-memory store fakes backing the service tests. They honor the same
// sentinel-error contract as the real GORM stores.

var _ store.CustomerStore = &fakeCustomerStore{}

type fakeCustomerStore struct {
	byID   map[uint]*models.Customer
	nextID uint
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{byID: map[uint]*models.Customer{}}
}

func (f *fakeCustomerStore) Create(_ context.Context, c *models.Customer) error {
	f.nextID++
	c.CustomerID = f.nextID
	clone := *c
	f.byID[c.CustomerID] = &clone
	return nil
}

func (f *fakeCustomerStore) ByID(_ context.Context, id uint) (*models.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCustomerStore) Update(_ context.Context, c *models.Customer) error {
	if _, ok := f.byID[c.CustomerID]; !ok {
		return store.ErrRecordNotFound
	}
	clone := *c
	f.byID[c.CustomerID] = &clone
	return nil
}

func (f *fakeCustomerStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.byID[id]; !ok {
		return store.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCustomerStore) List(_ context.Context, _ *query.Spec) ([]models.Customer, int64, error) {
	all := f.sorted()
	return all, int64(len(all)), nil
}

func (f *fakeCustomerStore) Search(_ context.Context, term string, limit int) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.sorted() {
		if strings.Contains(strings.ToLower(c.FirstName+" "+c.LastName), strings.ToLower(term)) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCustomerStore) All(_ context.Context) ([]models.Customer, error) {
	return f.sorted(), nil
}

func (f *fakeCustomerStore) sorted() []models.Customer {
	out := make([]models.Customer, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out
}

var _ store.SupplierStore = &fakeSupplierStore{}

type fakeSupplierStore struct {
	byID   map[uint]*models.Supplier
	nextID uint
}

func newFakeSupplierStore() *fakeSupplierStore {
	return &fakeSupplierStore{byID: map[uint]*models.Supplier{}}
}

func (f *fakeSupplierStore) Create(_ context.Context, s *models.Supplier) error {
	f.nextID++
	s.SupplierID = f.nextID
	clone := *s
	f.byID[s.SupplierID] = &clone
	return nil
}

func (f *fakeSupplierStore) ByID(_ context.Context, id uint) (*models.Supplier, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSupplierStore) Update(_ context.Context, s *models.Supplier) error {
	if _, ok := f.byID[s.SupplierID]; !ok {
		return store.ErrRecordNotFound
	}
	clone := *s
	f.byID[s.SupplierID] = &clone
	return nil
}

func (f *fakeSupplierStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.byID[id]; !ok {
		return store.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSupplierStore) List(_ context.Context, _ *query.Spec) ([]models.Supplier, int64, error) {
	all := f.sorted()
	return all, int64(len(all)), nil
}

func (f *fakeSupplierStore) Search(_ context.Context, term string, limit int) ([]models.Supplier, error) {
	var out []models.Supplier
	for _, s := range f.sorted() {
		if strings.Contains(strings.ToLower(s.CompanyName), strings.ToLower(term)) {
			out = append(out, s)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeSupplierStore) All(_ context.Context) ([]models.Supplier, error) {
	return f.sorted(), nil
}

func (f *fakeSupplierStore) sorted() []models.Supplier {
	out := make([]models.Supplier, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SupplierID < out[j].SupplierID })
	return out
}

var _ store.ProductStore = &fakeProductStore{}

type fakeProductStore struct {
	byID   map[uint]*models.Product
	nextID uint
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{byID: map[uint]*models.Product{}}
}

func (f *fakeProductStore) Create(_ context.Context, p *models.Product) error {
	f.nextID++
	p.ProductID = f.nextID
	clone := *p
	f.byID[p.ProductID] = &clone
	return nil
}

func (f *fakeProductStore) ByID(_ context.Context, id uint) (*models.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductStore) Update(_ context.Context, p *models.Product) error {
	if _, ok := f.byID[p.ProductID]; !ok {
		return store.ErrRecordNotFound
	}
	clone := *p
	f.byID[p.ProductID] = &clone
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.byID[id]; !ok {
		return store.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeProductStore) List(_ context.Context, _ *query.Spec) ([]models.Product, int64, error) {
	all := f.sorted()
	return all, int64(len(all)), nil
}

func (f *fakeProductStore) Search(_ context.Context, term string, limit int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.sorted() {
		if strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(term)) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeProductStore) All(_ context.Context) ([]models.Product, error) {
	return f.sorted(), nil
}

func (f *fakeProductStore) CountBySupplier(_ context.Context, supplierID uint) (int64, error) {
	var n int64
	for _, p := range f.byID {
		if p.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductStore) sorted() []models.Product {
	out := make([]models.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

var _ store.OrderStore = &fakeOrderStore{}

type fakeOrderStore struct {
	byID       map[uint]*models.Order
	itemsByID  map[uint]*models.OrderItem
	nextID     uint
	nextItemID uint

	// duplicatesLeft makes Create fail with ErrDuplicateKey that many times.
	duplicatesLeft int
	// staleNext makes the next UpdateItem/DeleteItem fail with ErrStaleRecord.
	staleNext bool
	// createCalls counts Create attempts including rejected ones.
	createCalls int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{byID: map[uint]*models.Order{}, itemsByID: map[uint]*models.OrderItem{}}
}

func (f *fakeOrderStore) Create(_ context.Context, o *models.Order) error {
	f.createCalls++
	if f.duplicatesLeft > 0 {
		f.duplicatesLeft--
		return store.ErrDuplicateKey
	}
	for _, existing := range f.byID {
		if existing.OrderNumber == o.OrderNumber {
			return store.ErrDuplicateKey
		}
	}

	f.nextID++
	o.OrderID = f.nextID
	for i := range o.Items {
		f.nextItemID++
		o.Items[i].ItemID = f.nextItemID
		o.Items[i].OrderID = o.OrderID
	}

	clone := *o
	clone.Items = nil
	f.byID[o.OrderID] = &clone
	for i := range o.Items {
		item := o.Items[i]
		f.itemsByID[item.ItemID] = &item
	}
	return nil
}

func (f *fakeOrderStore) ByID(_ context.Context, id uint) (*models.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	clone := *o
	clone.Items = f.itemsOf(id)
	return &clone, nil
}

func (f *fakeOrderStore) List(_ context.Context, _ *query.Spec) ([]models.Order, int64, error) {
	all, _ := f.All(context.Background())
	return all, int64(len(all)), nil
}

func (f *fakeOrderStore) Delete(_ context.Context, o *models.Order) error {
	if _, ok := f.byID[o.OrderID]; !ok {
		return store.ErrRecordNotFound
	}
	for id, item := range f.itemsByID {
		if item.OrderID == o.OrderID {
			delete(f.itemsByID, id)
		}
	}
	delete(f.byID, o.OrderID)
	return nil
}

func (f *fakeOrderStore) ItemByID(_ context.Context, id uint) (*models.OrderItem, error) {
	item, ok := f.itemsByID[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	clone := *item
	if o, ok := f.byID[item.OrderID]; ok {
		clone.Order = *o
	}
	return &clone, nil
}

func (f *fakeOrderStore) UpdateItem(_ context.Context, item *models.OrderItem, order *models.Order) error {
	if err := f.guardWrite(order); err != nil {
		return err
	}
	if _, ok := f.itemsByID[item.ItemID]; !ok {
		return store.ErrRecordNotFound
	}
	itemClone := *item
	itemClone.Order = models.Order{}
	f.itemsByID[item.ItemID] = &itemClone
	f.applyOrder(order)
	return nil
}

func (f *fakeOrderStore) DeleteItem(_ context.Context, item *models.OrderItem, order *models.Order) error {
	if err := f.guardWrite(order); err != nil {
		return err
	}
	if _, ok := f.itemsByID[item.ItemID]; !ok {
		return store.ErrRecordNotFound
	}
	delete(f.itemsByID, item.ItemID)
	f.applyOrder(order)
	return nil
}

func (f *fakeOrderStore) Between(_ context.Context, from, to time.Time) ([]models.Order, error) {
	var out []models.Order
	all, _ := f.All(context.Background())
	for _, o := range all {
		if !o.OrderDate.Before(from) && !o.OrderDate.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) All(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.byID))
	for _, o := range f.byID {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out, nil
}

func (f *fakeOrderStore) AllItems(_ context.Context) ([]models.OrderItem, error) {
	out := make([]models.OrderItem, 0, len(f.itemsByID))
	for _, item := range f.itemsByID {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (f *fakeOrderStore) CountByCustomer(_ context.Context, customerID uint) (int64, error) {
	var n int64
	for _, o := range f.byID {
		if o.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderStore) CountItemsByProduct(_ context.Context, productID uint) (int64, error) {
	var n int64
	for _, item := range f.itemsByID {
		if item.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderStore) CountItems(_ context.Context, orderID uint) (int64, error) {
	var n int64
	for _, item := range f.itemsByID {
		if item.OrderID == orderID {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderStore) guardWrite(order *models.Order) error {
	if f.staleNext {
		f.staleNext = false
		return store.ErrStaleRecord
	}
	stored, ok := f.byID[order.OrderID]
	if !ok {
		return store.ErrRecordNotFound
	}
	if stored.Version != order.Version {
		return store.ErrStaleRecord
	}
	return nil
}

func (f *fakeOrderStore) applyOrder(order *models.Order) {
	order.Version++
	clone := *order
	clone.Items = nil
	f.byID[order.OrderID] = &clone
}

func (f *fakeOrderStore) itemsOf(orderID uint) []models.OrderItem {
	var out []models.OrderItem
	for _, item := range f.itemsByID {
		if item.OrderID == orderID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}
