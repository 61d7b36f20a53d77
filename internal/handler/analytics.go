package handler

import (
	"net/http"

	"inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct{ svc service.AnalyticsService }

func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Capacity lists every SKU with its capacity and the stock stored against it.
func (h *AnalyticsHandler) Capacity(c *gin.Context) {
	rows, err := h.svc.Capacity(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// UnitsSold lists every product name with the units ordered.
func (h *AnalyticsHandler) UnitsSold(c *gin.Context) {
	rows, err := h.svc.UnitsSold(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
