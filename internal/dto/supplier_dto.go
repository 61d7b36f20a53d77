package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SupplierRequest is the body of POST /suppliers and PUT /suppliers/:id.
type SupplierRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=120"`
	Email string `json:"email" validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
