package handler

import (
	"net/http"

	"inventory/internal/dto"
	"inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusCreated, "Order created successfully")
}

func (h *OrdersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update is a partial update: only the fields present in the body change.
func (h *OrdersHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusOK, "Order updated successfully")
}

func (h *OrdersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusOK, "Order deleted successfully")
}
