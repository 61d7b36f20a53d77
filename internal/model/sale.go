package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a completed sale. Price holds the line total
// (quantity × unit price), not the unit price.
type Sale struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	ProductID int64           `gorm:"column:product_id;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SaleDate  time.Time       `gorm:"type:date;not null"`
}

func (Sale) TableName() string { return "sales" }
