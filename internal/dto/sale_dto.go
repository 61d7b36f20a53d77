package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateSaleRequest is the body of POST /sales. Price is the unit price;
// when omitted the product's current price is used.
type CreateSaleRequest struct {
	ProductID int64            `json:"product_id" validate:"required,min=1"`
	Quantity  int              `json:"quantity"   validate:"required,min=1"`
	Price     *decimal.Decimal `json:"price"      validate:"omitempty,gte=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SaleResponse mirrors a sales row; Price is the line total.
type SaleResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	SaleDate  string          `json:"sale_date"` // YYYY-MM-DD
}

// StockAlert is emitted when a sale leaves a product below the low-stock threshold.
type StockAlert struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Remaining   int    `json:"remaining"`
	Threshold   int    `json:"threshold"`
}
