package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/store"
)

// EditWindow is the period after creation during which an order and its
// items may still be mutated.
const EditWindow = 24 * time.Hour

// maxOrderNumberAttempts bounds regeneration when a generated order number
// collides with the unique index.
const maxOrderNumberAttempts = 3

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderService enforces the order aggregate rules: items are created with the
// order, mutations re-derive the total, and the order always retains at least
// one item.
type OrderService struct {
	orders    store.OrderStore
	customers store.CustomerStore
	products  store.ProductStore
}

// NewOrderService creates the aggregate rules engine.
func NewOrderService(orders store.OrderStore, customers store.CustomerStore, products store.ProductStore) *OrderService {
	return &OrderService{orders: orders, customers: customers, products: products}
}

// Create builds and persists a new order aggregate. Product prices are
// snapshotted into the items; later product price changes never alter them.
func (s *OrderService) Create(ctx context.Context, customerID uint, inputs []OrderItemInput) (*models.Order, error) {
	if _, err := s.customers.ByID(ctx, customerID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("customer %d does not exist", customerID))
		}
		return nil, storageErr(err, "look up customer")
	}

	if len(inputs) == 0 {
		return nil, invalidInput("an order requires at least one item")
	}

	now := time.Now().UTC()
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		product, err := s.products.ByID(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return nil, notFound(fmt.Sprintf("product %d does not exist", in.ProductID))
			}
			return nil, storageErr(err, "look up product")
		}
		if product.IsDiscontinued {
			return nil, invalidOperation(fmt.Sprintf("product %q is discontinued", product.ProductName))
		}
		if in.Quantity < 1 {
			return nil, invalidInput(fmt.Sprintf("quantity for product %d must be at least 1", in.ProductID))
		}
		items = append(items, models.OrderItem{
			ProductID: in.ProductID,
			UnitPrice: product.UnitPrice,
			Quantity:  in.Quantity,
		})
	}

	order := &models.Order{
		CustomerID:  customerID,
		OrderDate:   now,
		TotalAmount: models.SumItems(items),
		Version:     1,
		Items:       items,
	}

	// The unique index on order_number is the final arbiter: on a collision
	// regenerate and retry a bounded number of times.
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		order.OrderNumber = generateOrderNumber(now)
		err := s.orders.Create(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, store.ErrDuplicateKey) {
			return nil, storageErr(err, "persist order")
		}
	}
	return nil, errors.Wrap(ErrConflict, "could not allocate a unique order number")
}

// ByID loads an order with its items.
func (s *OrderService) ByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("order %d does not exist", id))
		}
		return nil, storageErr(err, "load order")
	}
	return order, nil
}

// List returns a filtered, sorted order page plus its sizing metadata.
func (s *OrderService) List(ctx context.Context, filter OrderFilter, params query.Params) ([]models.Order, query.PageInfo, error) {
	if err := filter.Validate(); err != nil {
		return nil, query.PageInfo{}, err
	}
	orders, totalCount, err := s.orders.List(ctx, filter.Spec(params))
	if err != nil {
		return nil, query.PageInfo{}, storageErr(err, "list orders")
	}
	return orders, query.NewPageInfo(totalCount, params), nil
}

// UpdateItemQuantity changes an item's quantity and re-derives the order
// total in the same transaction.
func (s *OrderService) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) (*models.OrderItem, error) {
	item, err := s.itemInEditWindow(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, invalidInput("quantity must be at least 1")
	}

	order := item.Order
	delta := int64(quantity - item.Quantity)
	order.TotalAmount = order.TotalAmount.Add(item.UnitPrice.Mul(decimal.NewFromInt(delta)))
	item.Quantity = quantity

	if err := s.orders.UpdateItem(ctx, item, &order); err != nil {
		return nil, s.resolveWriteErr(ctx, order.OrderID, err, "update order item")
	}
	item.Order = order
	return item, nil
}

// DeleteItem removes an item and re-derives the order total. The order's last
// remaining item cannot be deleted; the whole order must be deleted instead.
func (s *OrderService) DeleteItem(ctx context.Context, itemID uint) error {
	item, err := s.itemInEditWindow(ctx, itemID)
	if err != nil {
		return err
	}

	remaining, err := s.orders.CountItems(ctx, item.OrderID)
	if err != nil {
		return storageErr(err, "count order items")
	}
	if remaining <= 1 {
		return invalidOperation("an order must retain at least one item; delete the order instead")
	}

	order := item.Order
	order.TotalAmount = order.TotalAmount.Sub(item.Subtotal())

	if err := s.orders.DeleteItem(ctx, item, &order); err != nil {
		return s.resolveWriteErr(ctx, order.OrderID, err, "delete order item")
	}
	return nil
}

// Delete removes an order and all its items as a unit.
func (s *OrderService) Delete(ctx context.Context, orderID uint) error {
	order, err := s.orders.ByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return notFound(fmt.Sprintf("order %d does not exist", orderID))
		}
		return storageErr(err, "load order")
	}
	if time.Now().UTC().Sub(order.OrderDate) > EditWindow {
		return invalidOperation("edit window closed")
	}
	if err := s.orders.Delete(ctx, order); err != nil {
		return storageErr(err, "delete order")
	}
	return nil
}

// itemInEditWindow loads an item with its owning order and checks the 24-hour
// edit window.
func (s *OrderService) itemInEditWindow(ctx context.Context, itemID uint) (*models.OrderItem, error) {
	item, err := s.orders.ItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("order item %d does not exist", itemID))
		}
		return nil, storageErr(err, "load order item")
	}
	if time.Now().UTC().Sub(item.Order.OrderDate) > EditWindow {
		return nil, invalidOperation("edit window closed")
	}
	return item, nil
}

// resolveWriteErr handles a failed aggregate write. A stale version triggers
// one existence re-check: a vanished order surfaces NotFound, otherwise the
// conflict is reported to the caller rather than silently retried.
func (s *OrderService) resolveWriteErr(ctx context.Context, orderID uint, err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrStaleRecord):
		if _, recheck := s.orders.ByID(ctx, orderID); errors.Is(recheck, store.ErrRecordNotFound) {
			return notFound(fmt.Sprintf("order %d no longer exists", orderID))
		}
		return errors.Wrap(ErrConflict, "order was modified concurrently")
	case errors.Is(err, store.ErrRecordNotFound):
		return notFound("order item no longer exists")
	default:
		return storageErr(err, msg)
	}
}

// generateOrderNumber derives an order number from the creation timestamp
// plus a random suffix.
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102150405"), suffix[:8])
}
