package infra

import (
	"context"
	"fmt"

	"inventory/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed inserts the sample catalogue when the store is empty. It reports
// whether rows were inserted; a store holding any row in any of the five
// tables is left untouched, so restarting against an existing file never
// duplicates the sample data.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{&model.Supplier{}, &model.SKU{}, &model.Product{}, &model.Order{}, &model.Sale{}} {
			var n int64
			if err := tx.Model(m).Count(&n).Error; err != nil {
				return fmt.Errorf("count rows: %w", err)
			}
			if n > 0 {
				return nil
			}
		}

		if err := tx.Create(sampleSKUs()).Error; err != nil {
			return fmt.Errorf("seed skus: %w", err)
		}
		if err := tx.Create(sampleSuppliers()).Error; err != nil {
			return fmt.Errorf("seed suppliers: %w", err)
		}
		if err := tx.Create(sampleProducts()).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		if err := tx.Create(sampleOrders()).Error; err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
		seeded = true
		return nil
	})
	return seeded, err
}

func sampleSKUs() []model.SKU {
	return []model.SKU{
		{Name: "Himalaya Factory", Location: "Bangalore, Karnataka", Capacity: 100},
		{Name: "Apple Manufacturing", Location: "Mumbai, Maharashtra", Capacity: 200},
		{Name: "Kellogg's Plant", Location: "Mumbai, Maharashtra", Capacity: 150},
		{Name: "Dove Manufacturing", Location: "Pune, Maharashtra", Capacity: 80},
		{Name: "Daawat Rice Factory", Location: "Karnal, Haryana", Capacity: 250},
		{Name: "Bombay Dyeing Factory", Location: "Mumbai, Maharashtra", Capacity: 120},
		{Name: "Tropicana Factory", Location: "Jaipur, Rajasthan", Capacity: 180},
		{Name: "Colgate-Palmolive Factory", Location: "Mumbai, Maharashtra", Capacity: 90},
		{Name: "Parker Pen Manufacturing", Location: "Ahmedabad, Gujarat", Capacity: 50},
		{Name: "ITC Paper Factory", Location: "Hyderabad, Telangana", Capacity: 70},
	}
}

func sampleSuppliers() []model.Supplier {
	return []model.Supplier{
		{Name: "Supplier 1", Email: "supplier1@example.com"},
		{Name: "Supplier 2", Email: "supplier2@example.com"},
		{Name: "Supplier 3", Email: "supplier3@example.com"},
		{Name: "Supplier 4", Email: "supplier4@example.com"},
		{Name: "Supplier 5", Email: "supplier5@example.com"},
	}
}

func sampleProducts() []model.Product {
	price := decimal.RequireFromString
	return []model.Product{
		{SKUID: 1, Name: "Shampoo", Price: price("5.99"), Quantity: 50, SupplierID: 1},
		{SKUID: 2, Name: "Apple", Price: price("0.99"), Quantity: 100, SupplierID: 2},
		{SKUID: 3, Name: "Cereals", Price: price("3.49"), Quantity: 80, SupplierID: 3},
		{SKUID: 4, Name: "Soap", Price: price("1.49"), Quantity: 120, SupplierID: 1},
		{SKUID: 5, Name: "Rice", Price: price("2.99"), Quantity: 200, SupplierID: 4},
		{SKUID: 6, Name: "Towel", Price: price("8.99"), Quantity: 30, SupplierID: 5},
		{SKUID: 7, Name: "Juice", Price: price("4.29"), Quantity: 70, SupplierID: 3},
		{SKUID: 8, Name: "Toothpaste", Price: price("2.49"), Quantity: 90, SupplierID: 1},
		{SKUID: 9, Name: "Pen", Price: price("1.99"), Quantity: 60, SupplierID: 2},
		{SKUID: 10, Name: "Book", Price: price("9.99"), Quantity: 20, SupplierID: 4},
	}
}

func sampleOrders() []model.Order {
	return []model.Order{
		{ProductID: 1, Quantity: 2, CustomerName: "John Doe", CustomerEmail: "john@example.com"},
		{ProductID: 2, Quantity: 5, CustomerName: "Jane Smith", CustomerEmail: "jane@example.com"},
		{ProductID: 3, Quantity: 3, CustomerName: "Alice Johnson", CustomerEmail: "alice@example.com"},
		{ProductID: 4, Quantity: 1, CustomerName: "Bob Brown", CustomerEmail: "bob@example.com"},
		{ProductID: 5, Quantity: 4, CustomerName: "Charlie Davis", CustomerEmail: "charlie@example.com"},
		{ProductID: 6, Quantity: 2, CustomerName: "Eva Wilson", CustomerEmail: "eva@example.com"},
		{ProductID: 7, Quantity: 3, CustomerName: "Frank Miller", CustomerEmail: "frank@example.com"},
		{ProductID: 8, Quantity: 2, CustomerName: "Grace Thompson", CustomerEmail: "grace@example.com"},
		{ProductID: 9, Quantity: 1, CustomerName: "Henry Garcia", CustomerEmail: "henry@example.com"},
		{ProductID: 10, Quantity: 2, CustomerName: "Ivy Clark", CustomerEmail: "ivy@example.com"},
	}
}
