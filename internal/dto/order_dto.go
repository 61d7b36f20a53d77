package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// OrderRequest is the body of POST /orders.
type OrderRequest struct {
	ProductID     int64  `json:"product_id"     validate:"required,min=1"`
	Quantity      int    `json:"quantity"       validate:"required,min=1"`
	CustomerName  string `json:"customer_name"  validate:"required,min=1,max=120"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

// UpdateOrderRequest is the body of PUT /orders/:id. Only non-null fields
// are written; absent fields keep their stored value.
type UpdateOrderRequest struct {
	ProductID     *int64  `json:"product_id"     validate:"omitempty,min=1"`
	Quantity      *int    `json:"quantity"       validate:"omitempty,min=1"`
	CustomerName  *string `json:"customer_name"  validate:"omitempty,min=1,max=120"`
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`
}

// Empty reports whether no field was supplied.
func (r UpdateOrderRequest) Empty() bool {
	return r.ProductID == nil && r.Quantity == nil && r.CustomerName == nil && r.CustomerEmail == nil
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderResponse struct {
	ID            int64  `json:"id"`
	ProductID     int64  `json:"product_id"`
	Quantity      int    `json:"quantity"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}
