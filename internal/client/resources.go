package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"inventory/internal/dto"
)

// ── Products ─────────────────────────────────────────────────────────────────

func (c *Client) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, idPath("/products", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, req dto.ProductRequest) (string, error) {
	return c.write(ctx, http.MethodPost, "/products", req)
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, req dto.ProductRequest) (string, error) {
	return c.write(ctx, http.MethodPut, idPath("/products", id), req)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) (string, error) {
	return c.write(ctx, http.MethodDelete, idPath("/products", id), nil)
}

// ── SKUs ─────────────────────────────────────────────────────────────────────

func (c *Client) ListSKUs(ctx context.Context) ([]dto.SKUResponse, error) {
	var out []dto.SKUResponse
	if err := c.do(ctx, http.MethodGet, "/skus", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSKU(ctx context.Context, id int64) (*dto.SKUResponse, error) {
	var out dto.SKUResponse
	if err := c.do(ctx, http.MethodGet, idPath("/skus", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSKU(ctx context.Context, req dto.SKURequest) (string, error) {
	return c.write(ctx, http.MethodPost, "/skus", req)
}

func (c *Client) UpdateSKU(ctx context.Context, id int64, req dto.SKURequest) (string, error) {
	return c.write(ctx, http.MethodPut, idPath("/skus", id), req)
}

func (c *Client) DeleteSKU(ctx context.Context, id int64) (string, error) {
	return c.write(ctx, http.MethodDelete, idPath("/skus", id), nil)
}

// ── Suppliers ────────────────────────────────────────────────────────────────

func (c *Client) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	var out []dto.SupplierResponse
	if err := c.do(ctx, http.MethodGet, "/suppliers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSupplier(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	var out dto.SupplierResponse
	if err := c.do(ctx, http.MethodGet, idPath("/suppliers", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSupplier(ctx context.Context, req dto.SupplierRequest) (string, error) {
	return c.write(ctx, http.MethodPost, "/suppliers", req)
}

func (c *Client) UpdateSupplier(ctx context.Context, id int64, req dto.SupplierRequest) (string, error) {
	return c.write(ctx, http.MethodPut, idPath("/suppliers", id), req)
}

func (c *Client) DeleteSupplier(ctx context.Context, id int64) (string, error) {
	return c.write(ctx, http.MethodDelete, idPath("/suppliers", id), nil)
}

// ── Orders ───────────────────────────────────────────────────────────────────

func (c *Client) ListOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	var out []dto.OrderResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	if err := c.do(ctx, http.MethodGet, idPath("/orders", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, req dto.OrderRequest) (string, error) {
	return c.write(ctx, http.MethodPost, "/orders", req)
}

// UpdateOrder sends only the non-nil fields of req.
func (c *Client) UpdateOrder(ctx context.Context, id int64, req dto.UpdateOrderRequest) (string, error) {
	return c.write(ctx, http.MethodPut, idPath("/orders", id), orderPatchBody(req))
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) (string, error) {
	return c.write(ctx, http.MethodDelete, idPath("/orders", id), nil)
}

func orderPatchBody(req dto.UpdateOrderRequest) map[string]interface{} {
	body := make(map[string]interface{}, 4)
	if req.ProductID != nil {
		body["product_id"] = *req.ProductID
	}
	if req.Quantity != nil {
		body["quantity"] = *req.Quantity
	}
	if req.CustomerName != nil {
		body["customer_name"] = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		body["customer_email"] = *req.CustomerEmail
	}
	return body
}

// ── Sales ────────────────────────────────────────────────────────────────────

func (c *Client) RecordSale(ctx context.Context, req dto.CreateSaleRequest) (string, error) {
	return c.write(ctx, http.MethodPost, "/sales", req)
}

func (c *Client) ListSales(ctx context.Context, productID int64) ([]dto.SaleResponse, error) {
	var out []dto.SaleResponse
	if err := c.do(ctx, http.MethodGet, idPath("/sales", productID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Analytics & reports ──────────────────────────────────────────────────────

func (c *Client) CapacityAnalytics(ctx context.Context) ([]dto.CapacityRow, error) {
	var out []dto.CapacityRow
	if err := c.do(ctx, http.MethodGet, "/capacity-analytics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SalesAnalytics(ctx context.Context) ([]dto.UnitsSoldRow, error) {
	var out []dto.UnitsSoldRow
	if err := c.do(ctx, http.MethodGet, "/sales-analytics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StockReport streams the PDF stock report into w.
func (c *Client) StockReport(ctx context.Context, w io.Writer) (int64, error) {
	resp, err := c.send(ctx, http.MethodGet, "/reports/stock", nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("GET /reports/stock: read body: %w", err)
	}
	return n, nil
}
