package model

import "github.com/shopspring/decimal"

// Product is a stocked item. SKUID and SupplierID are plain columns: nothing
// enforces that the referenced rows exist, and deleting them leaves the
// reference dangling.
type Product struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	SKUID      int64           `gorm:"column:sku_id;index"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity   int             `gorm:"not null;default:0"`
	SupplierID int64           `gorm:"column:supplier_id;index"`
}

func (Product) TableName() string { return "products" }
