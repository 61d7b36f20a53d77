package handler

import (
	"net/http"

	"inventory/internal/dto"
	"inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// Record sells quantity units of a product. 404 when the product is
// absent, 400 when stock is insufficient; stock is unchanged in both cases.
func (h *SalesHandler) Record(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Record(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusCreated, "Sale added successfully")
}

func (h *SalesHandler) ListByProduct(c *gin.Context) {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}
	resp, err := h.svc.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
