package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents orders table. An order and its items form one consistency
// boundary: total_amount must always equal the sum of item unit_price * quantity.
type Order struct {
	OrderID     uint            `gorm:"primaryKey;column:order_id" json:"order_id"`
	OrderNumber string          `gorm:"type:varchar(30);not null;unique" json:"order_number"`
	CustomerID  uint            `gorm:"not null" json:"customer_id"`
	OrderDate   time.Time       `gorm:"not null" json:"order_date"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_amount"`
	// Version guards concurrent mutations of the aggregate.
	Version   int       `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Customer Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents order_items table. UnitPrice is a snapshot of the
// product price at order creation and is never re-derived afterwards.
type OrderItem struct {
	ItemID    uint            `gorm:"primaryKey;column:item_id" json:"item_id"`
	OrderID   uint            `gorm:"not null" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal returns unit_price * quantity for the item.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SumItems returns the exact decimal sum of the items' subtotals.
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
