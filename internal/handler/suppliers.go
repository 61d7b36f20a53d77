package handler

import (
	"net/http"

	"inventory/internal/dto"
	"inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type SuppliersHandler struct{ svc service.SupplierService }

func NewSuppliersHandler(svc service.SupplierService) *SuppliersHandler {
	return &SuppliersHandler{svc: svc}
}

func (h *SuppliersHandler) Create(c *gin.Context) {
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusCreated, "Supplier created successfully")
}

func (h *SuppliersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SuppliersHandler) Get(c *gin.Context) {
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

func (h *SuppliersHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusOK, "Supplier updated successfully")
}

func (h *SuppliersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusOK, "Supplier deleted successfully")
}
