package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
)

type orderStore struct {
	db *gorm.DB
}

// NewOrderStore returns a GORM-backed OrderStore.
func NewOrderStore(db *gorm.DB) OrderStore {
	return &orderStore{db: db}
}

// Create persists the order and its items in one transaction. On failure no
// partial records remain.
func (s *orderStore) Create(ctx context.Context, o *models.Order) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	return wrapErr(err, "create order")
}

func (s *orderStore) ByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		First(&o, "order_id = ?", id).Error
	if err != nil {
		return nil, wrapErr(err, "find order")
	}
	return &o, nil
}

func (s *orderStore) List(ctx context.Context, spec *query.Spec) ([]models.Order, int64, error) {
	var totalCount int64
	if err := spec.Apply(s.db.WithContext(ctx).Model(&models.Order{})).Count(&totalCount).Error; err != nil {
		return nil, 0, wrapErr(err, "count orders")
	}

	orders := []models.Order{}
	if err := spec.ApplyPaged(s.db.WithContext(ctx).Preload("Items")).Find(&orders).Error; err != nil {
		return nil, 0, wrapErr(err, "list orders")
	}
	return orders, totalCount, nil
}

// Delete removes the order and cascades its items in one transaction.
func (s *orderStore) Delete(ctx context.Context, o *models.Order) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", o.OrderID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "order_id = ?", o.OrderID).Error
	})
	return wrapErr(err, "delete order")
}

func (s *orderStore) ItemByID(ctx context.Context, id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := s.db.WithContext(ctx).
		Preload("Order").
		First(&item, "item_id = ?", id).Error
	if err != nil {
		return nil, wrapErr(err, "find order item")
	}
	return &item, nil
}

// UpdateItem writes the item and the order's recomputed total in one
// transaction. The order row update is version-guarded: a stale version
// leaves both records untouched and reports ErrStaleRecord.
func (s *orderStore) UpdateItem(ctx context.Context, item *models.OrderItem, order *models.Order) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderItem{}).
			Where("item_id = ?", item.ItemID).
			Update("quantity", item.Quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return s.updateOrderTotal(tx, order)
	})
	return wrapErr(err, "update order item")
}

// DeleteItem removes the item and writes the order's recomputed total in one
// transaction, version-guarded like UpdateItem.
func (s *orderStore) DeleteItem(ctx context.Context, item *models.OrderItem, order *models.Order) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.OrderItem{}, "item_id = ?", item.ItemID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return s.updateOrderTotal(tx, order)
	})
	return wrapErr(err, "delete order item")
}

func (s *orderStore) updateOrderTotal(tx *gorm.DB, order *models.Order) error {
	res := tx.Model(&models.Order{}).
		Where("order_id = ? AND version = ?", order.OrderID, order.Version).
		Updates(map[string]interface{}{
			"total_amount": order.TotalAmount,
			"version":      order.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleRecord
	}
	order.Version++
	return nil
}

func (s *orderStore) Between(ctx context.Context, from, to time.Time) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Where("order_date >= ? AND order_date <= ?", from, to).
		Order("order_date").
		Find(&orders).Error
	if err != nil {
		return nil, wrapErr(err, "load orders between dates")
	}
	return orders, nil
}

func (s *orderStore) All(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, wrapErr(err, "load orders")
	}
	return orders, nil
}

func (s *orderStore) AllItems(ctx context.Context) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, wrapErr(err, "load order items")
	}
	return items, nil
}

func (s *orderStore) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, wrapErr(err, "count orders by customer")
	}
	return count, nil
}

func (s *orderStore) CountItemsByProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return 0, wrapErr(err, "count order items by product")
	}
	return count, nil
}

func (s *orderStore) CountItems(ctx context.Context, orderID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return 0, wrapErr(err, "count order items")
	}
	return count, nil
}
