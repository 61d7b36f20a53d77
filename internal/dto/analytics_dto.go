package dto

import "github.com/shopspring/decimal"

// CapacityRow is one row of GET /capacity-analytics.
type CapacityRow struct {
	SKUID         int64  `json:"sku_id"         gorm:"column:sku_id"`
	SKUName       string `json:"sku_name"       gorm:"column:sku_name"`
	TotalCapacity int    `json:"total_capacity" gorm:"column:total_capacity"`
	UsedCapacity  int    `json:"used_capacity"  gorm:"column:used_capacity"`
}

// Remaining is the unused capacity; negative when the SKU is over capacity.
func (r CapacityRow) Remaining() int { return r.TotalCapacity - r.UsedCapacity }

// UnitsSoldRow is one row of GET /sales-analytics.
type UnitsSoldRow struct {
	ProductName string `json:"product_name" gorm:"column:product_name"`
	TotalSold   int    `json:"total_sold"   gorm:"column:total_sold"`
}

// StockReport feeds the PDF rendered by GET /reports/stock.
type StockReport struct {
	GeneratedAt string
	Products    []ProductResponse
	Capacity    []CapacityRow
	TotalValue  decimal.Decimal
}
