package handler

import (
	"net/http"

	"inventory/internal/dto"
	"inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type SKUsHandler struct{ svc service.SKUService }

func NewSKUsHandler(svc service.SKUService) *SKUsHandler {
	return &SKUsHandler{svc: svc}
}

func (h *SKUsHandler) Create(c *gin.Context) {
	var req dto.SKURequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusCreated, "SKU created successfully")
}

func (h *SKUsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SKUsHandler) Get(c *gin.Context) {
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

func (h *SKUsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SKURequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusOK, "SKU updated successfully")
}

func (h *SKUsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusOK, "SKU deleted successfully")
}
