package models

import "time"

// Customer represents customers table
type Customer struct {
	CustomerID uint      `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(100);not null" json:"last_name"`
	City       *string   `gorm:"type:varchar(100)" json:"city,omitempty"`
	Country    *string   `gorm:"type:varchar(100)" json:"country,omitempty"`
	Phone      *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
