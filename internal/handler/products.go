package handler

import (
	"net/http"

	"inventory/internal/dto"
	"inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusCreated, "Product created successfully")
}

func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Get(c *gin.Context) {
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

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusOK, "Product updated successfully")
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	message(c, http.StatusOK, "Product deleted successfully")
}
