package dto

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers (5.99), not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// MessageResponse confirms a write: {"message": "Product created successfully"}.
type MessageResponse struct {
	Message string `json:"message"`
}
