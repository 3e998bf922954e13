package models

import "time"

// Supplier represents suppliers table
type Supplier struct {
	SupplierID  uint      `gorm:"primaryKey;column:supplier_id" json:"supplier_id"`
	CompanyName string    `gorm:"type:varchar(200);not null" json:"company_name"`
	ContactName *string   `gorm:"type:varchar(100)" json:"contact_name,omitempty"`
	City        *string   `gorm:"type:varchar(100)" json:"city,omitempty"`
	Country     *string   `gorm:"type:varchar(100)" json:"country,omitempty"`
	Phone       *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Fax         *string   `gorm:"type:varchar(20)" json:"fax,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Products []Product `gorm:"foreignKey:SupplierID" json:"products,omitempty"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "suppliers"
}
