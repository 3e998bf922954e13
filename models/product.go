package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents products table
type Product struct {
	ProductID      uint            `gorm:"primaryKey;column:product_id" json:"product_id"`
	ProductName    string          `gorm:"type:varchar(200);not null" json:"product_name"`
	SupplierID     uint            `gorm:"not null" json:"supplier_id"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null;check:unit_price > 0" json:"unit_price"`
	Package        *string         `gorm:"type:varchar(100)" json:"package,omitempty"`
	IsDiscontinued bool            `gorm:"not null;default:false" json:"is_discontinued"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Relationships
	Supplier Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"order_items,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
