package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductRequest is the body of POST /products and PUT /products/:id.
// Updates are full-row: every field is written.
type ProductRequest struct {
	SKUID      int64           `json:"sku_id"      validate:"required,min=1"`
	Name       string          `json:"name"        validate:"required,min=1,max=120"`
	Price      decimal.Decimal `json:"price"       validate:"gte=0"`
	Quantity   int             `json:"quantity"    validate:"min=0"`
	SupplierID int64           `json:"supplier_id" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID         int64           `json:"id"`
	SKUID      int64           `json:"sku_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	SupplierID int64           `json:"supplier_id"`
}
