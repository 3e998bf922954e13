package database

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
)

// SeedData populates the database with a small sample data set. Existing
// data is left untouched.
func SeedData(db *gorm.DB) error {
	var customerCount int64
	if err := db.Model(&models.Customer{}).Count(&customerCount).Error; err != nil {
		return err
	}
	if customerCount > 0 {
		logrus.Info("Database already contains data, skipping seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		suppliers := []models.Supplier{
			{CompanyName: "Exotic Liquids", ContactName: strPtr("Charlotte Cooper"), City: strPtr("London"), Country: strPtr("UK"), Phone: strPtr("(171) 555-2222")},
			{CompanyName: "New Orleans Cajun Delights", ContactName: strPtr("Shelley Burke"), City: strPtr("New Orleans"), Country: strPtr("USA"), Phone: strPtr("(100) 555-4822")},
			{CompanyName: "Tokyo Traders", ContactName: strPtr("Yoshi Nagase"), City: strPtr("Tokyo"), Country: strPtr("Japan"), Phone: strPtr("(03) 3555-5011"), Fax: strPtr("(03) 3555-5012")},
		}
		if err := tx.Create(&suppliers).Error; err != nil {
			return err
		}

		products := []models.Product{
			{ProductName: "Chai", SupplierID: suppliers[0].SupplierID, UnitPrice: decimal.NewFromFloat(18.00), Package: strPtr("10 boxes x 20 bags")},
			{ProductName: "Chang", SupplierID: suppliers[0].SupplierID, UnitPrice: decimal.NewFromFloat(19.00), Package: strPtr("24 - 12 oz bottles")},
			{ProductName: "Chef Anton's Cajun Seasoning", SupplierID: suppliers[1].SupplierID, UnitPrice: decimal.NewFromFloat(22.00), Package: strPtr("48 - 6 oz jars")},
			{ProductName: "Mishi Kobe Niku", SupplierID: suppliers[2].SupplierID, UnitPrice: decimal.NewFromFloat(97.00), Package: strPtr("18 - 500 g pkgs."), IsDiscontinued: true},
			{ProductName: "Ikura", SupplierID: suppliers[2].SupplierID, UnitPrice: decimal.NewFromFloat(31.00), Package: strPtr("12 - 200 ml jars")},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		customers := []models.Customer{
			{FirstName: "Maria", LastName: "Anders", City: strPtr("Berlin"), Country: strPtr("Germany"), Phone: strPtr("030-0074321")},
			{FirstName: "Ana", LastName: "Trujillo", City: strPtr("Mexico City"), Country: strPtr("Mexico"), Phone: strPtr("(5) 555-4729")},
			{FirstName: "Thomas", LastName: "Hardy", City: strPtr("London"), Country: strPtr("UK"), Phone: strPtr("(171) 555-7788")},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		orders := []models.Order{
			{
				OrderNumber: "ORD-SEED-000001",
				CustomerID:  customers[0].CustomerID,
				OrderDate:   now.AddDate(0, 0, -7),
				Version:     1,
				Items: []models.OrderItem{
					{ProductID: products[0].ProductID, UnitPrice: products[0].UnitPrice, Quantity: 2},
					{ProductID: products[4].ProductID, UnitPrice: products[4].UnitPrice, Quantity: 1},
				},
			},
			{
				OrderNumber: "ORD-SEED-000002",
				CustomerID:  customers[1].CustomerID,
				OrderDate:   now.AddDate(0, 0, -2),
				Version:     1,
				Items: []models.OrderItem{
					{ProductID: products[2].ProductID, UnitPrice: products[2].UnitPrice, Quantity: 3},
				},
			},
		}
		for i := range orders {
			orders[i].TotalAmount = models.SumItems(orders[i].Items)
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}

		logrus.Infof("Seeded %d suppliers, %d products, %d customers, %d orders",
			len(suppliers), len(products), len(customers), len(orders))
		return nil
	})
}

func strPtr(s string) *string {
	return &s
}
