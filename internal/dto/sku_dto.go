package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SKURequest is the body of POST /skus and PUT /skus/:id.
type SKURequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=120"`
	Location string `json:"location" validate:"required,min=1,max=200"`
	Capacity int    `json:"capacity" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SKUResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}
