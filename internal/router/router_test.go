package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"inventory/internal/config"
	"inventory/internal/dto"
	"inventory/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

// ── Helpers ──────────────────────────────────────────────────────────────────

func newTestRouter(t *testing.T, seed bool) *gin.Engine {
	t.Helper()
	db, err := infra.NewDatabase("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })

	if seed {
		_, err := infra.Seed(context.Background(), db)
		require.NoError(t, err)
	}

	cfg := &config.Config{Env: "test", LowStockThreshold: 10}
	return New(cfg, db, nil)
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decode(t, w, &body)
	return body.Detail
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.MessageResponse
	decode(t, w, &body)
	return body.Message
}

// ── Suppliers ────────────────────────────────────────────────────────────────

func TestSuppliers_CreateThenListContainsRow(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(t, r, http.MethodPost, "/suppliers", dto.SupplierRequest{Name: "Acme", Email: "a@acme.test"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Supplier created successfully", messageOf(t, w))

	w = do(t, r, http.MethodGet, "/suppliers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.SupplierResponse
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Positive(t, list[0].ID)
	assert.Equal(t, "Acme", list[0].Name)
	assert.Equal(t, "a@acme.test", list[0].Email)
}

func TestSuppliers_TrailingSlashAccepted(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(t, r, http.MethodGet, "/suppliers/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.SupplierResponse
	decode(t, w, &list)
	assert.Len(t, list, 5)

	w = do(t, r, http.MethodGet, "/suppliers/2/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var one dto.SupplierResponse
	decode(t, w, &one)
	assert.Equal(t, "Supplier 2", one.Name)
}

func TestSuppliers_ValidationFailure(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(t, r, http.MethodPost, "/suppliers", dto.SupplierRequest{Name: "Acme", Email: "not-an-email"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, w, &body)
	assert.Equal(t, "email", body.Fields["email"])
}

func TestSuppliers_MalformedJSON(t *testing.T) {
	r := newTestRouter(t, false)
	w := do(t, r, http.MethodPost, "/suppliers", `{"name": "Acme",`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ── Products ─────────────────────────────────────────────────────────────────

func TestProducts_GetAfterDeleteIsNotFound(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(t, r, http.MethodGet, "/products/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodDelete, "/products/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product deleted successfully", messageOf(t, w))

	w = do(t, r, http.MethodGet, "/products/3", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", detail(t, w))
}

func TestDelete_IsIdempotent(t *testing.T) {
	r := newTestRouter(t, false)

	for _, path := range []string{"/products/999", "/skus/999", "/suppliers/999", "/orders/999"} {
		first := do(t, r, http.MethodDelete, path, nil)
		second := do(t, r, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusOK, first.Code, path)
		assert.Equal(t, first.Body.String(), second.Body.String(), path)
	}
}

func TestGet_NeverCreatedIsNotFoundPerEntity(t *testing.T) {
	r := newTestRouter(t, false)

	cases := map[string]string{
		"/products/42":  "Product not found",
		"/skus/42":      "SKU not found",
		"/suppliers/42": "Supplier not found",
		"/orders/42":    "Order not found",
	}
	for path, want := range cases {
		w := do(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, want, detail(t, w), path)
	}
}

func TestProducts_UpdateMissingIsNotFound(t *testing.T) {
	r := newTestRouter(t, false)
	req := dto.ProductRequest{SKUID: 1, Name: "Soap", Price: decimal.RequireFromString("1.49"), Quantity: 5, SupplierID: 1}

	w := do(t, r, http.MethodPut, "/products/7", req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProducts_UpdateRewritesRow(t *testing.T) {
	r := newTestRouter(t, true)
	req := dto.ProductRequest{SKUID: 2, Name: "Shampoo XL", Price: decimal.RequireFromString("7.50"), Quantity: 45, SupplierID: 3}

	w := do(t, r, http.MethodPut, "/products/1", req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product updated successfully", messageOf(t, w))

	var p dto.ProductResponse
	decode(t, do(t, r, http.MethodGet, "/products/1", nil), &p)
	assert.Equal(t, "Shampoo XL", p.Name)
	assert.Equal(t, 45, p.Quantity)
	assert.True(t, decimal.RequireFromString("7.5").Equal(p.Price))
	assert.EqualValues(t, 2, p.SKUID)
	assert.EqualValues(t, 3, p.SupplierID)
}

func TestProducts_FreeProductAccepted(t *testing.T) {
	r := newTestRouter(t, false)
	req := dto.ProductRequest{SKUID: 1, Name: "Sample sachet", Price: decimal.Zero, Quantity: 100, SupplierID: 1}

	w := do(t, r, http.MethodPost, "/products", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/products", map[string]any{"sku_id": 1, "name": "Refund", "price": -1, "quantity": 1, "supplier_id": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestProducts_PriceStoredToTheCent(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(t, r, http.MethodPost, "/products", `{"sku_id":1,"name":"Gum","price":1.005,"quantity":10,"supplier_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var p dto.ProductResponse
	decode(t, do(t, r, http.MethodGet, "/products/1", nil), &p)
	assert.Equal(t, "1.01", p.Price.String())

	w = do(t, r, http.MethodPost, "/sales", `{"product_id":1,"quantity":3,"price":0.335}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sales []dto.SaleResponse
	decode(t, do(t, r, http.MethodGet, "/sales/1", nil), &sales)
	require.Len(t, sales, 1)
	assert.Equal(t, "1.02", sales[0].Price.String())
}

func TestProducts_InvalidID(t *testing.T) {
	r := newTestRouter(t, false)
	w := do(t, r, http.MethodGet, "/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestZeroAndNegativeIDsAreNotFound(t *testing.T) {
	r := newTestRouter(t, true)

	cases := map[string]string{
		"/products/0":  "Product not found",
		"/products/-3": "Product not found",
		"/skus/0":      "SKU not found",
		"/suppliers/0": "Supplier not found",
		"/orders/0":    "Order not found",
	}
	for path, want := range cases {
		w := do(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, want, detail(t, w), path)
	}
}

func TestDelete_ZeroIDSucceeds(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(t, r, http.MethodDelete, "/products/0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product deleted successfully", messageOf(t, w))

	var list []dto.ProductResponse
	decode(t, do(t, r, http.MethodGet, "/products", nil), &list)
	assert.Len(t, list, 10)
}

// ── Sales ────────────────────────────────────────────────────────────────────

func TestSales_SeededScenario(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(t, r, http.MethodPost, "/sales", map[string]any{"product_id": 1, "quantity": 10, "price": 5.99})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Sale added successfully", messageOf(t, w))

	var p dto.ProductResponse
	decode(t, do(t, r, http.MethodGet, "/products/1", nil), &p)
	assert.Equal(t, 40, p.Quantity)

	w = do(t, r, http.MethodGet, "/sales/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sales []dto.SaleResponse
	decode(t, w, &sales)
	require.Len(t, sales, 1)
	assert.Equal(t, 10, sales[0].Quantity)
	assert.True(t, decimal.RequireFromString("59.9").Equal(sales[0].Price), sales[0].Price.String())
	assert.Len(t, sales[0].SaleDate, len("2006-01-02"))
}

func TestSales_PriceDefaultsToProductPrice(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(t, r, http.MethodPost, "/sales", map[string]any{"product_id": 2, "quantity": 3})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sales []dto.SaleResponse
	decode(t, do(t, r, http.MethodGet, "/sales/2", nil), &sales)
	require.Len(t, sales, 1)
	assert.True(t, decimal.RequireFromString("2.97").Equal(sales[0].Price), sales[0].Price.String())
}

func TestSales_OutOfStockLeavesQuantity(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(t, r, http.MethodPost, "/sales", map[string]any{"product_id": 10, "quantity": 21, "price": 9.99})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Product is out of stock", detail(t, w))

	var p dto.ProductResponse
	decode(t, do(t, r, http.MethodGet, "/products/10", nil), &p)
	assert.Equal(t, 20, p.Quantity)

	var sales []dto.SaleResponse
	decode(t, do(t, r, http.MethodGet, "/sales/10", nil), &sales)
	assert.Empty(t, sales)
}

func TestSales_ConcurrentSalesNeverOversell(t *testing.T) {
	r := newTestRouter(t, true)

	// Book (id 10) starts with 20 units; 20 buyers each want 3.
	const buyers, qty = 20, 3
	var (
		wg       sync.WaitGroup
		sold     int32
		rejected int32
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(`{"product_id":10,"quantity":3}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			switch w.Code {
			case http.StatusCreated:
				atomic.AddInt32(&sold, 1)
			case http.StatusBadRequest:
				atomic.AddInt32(&rejected, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 20/qty, sold)
	assert.EqualValues(t, buyers-20/qty, rejected)

	var p dto.ProductResponse
	decode(t, do(t, r, http.MethodGet, "/products/10", nil), &p)
	assert.Equal(t, 20-qty*(20/qty), p.Quantity)

	var sales []dto.SaleResponse
	decode(t, do(t, r, http.MethodGet, "/sales/10", nil), &sales)
	assert.Len(t, sales, 20/qty)
}

func TestSales_ExactStockSucceeds(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(t, r, http.MethodPost, "/sales", map[string]any{"product_id": 10, "quantity": 20, "price": 9.99})
	require.Equal(t, http.StatusCreated, w.Code)

	var p dto.ProductResponse
	decode(t, do(t, r, http.MethodGet, "/products/10", nil), &p)
	assert.Equal(t, 0, p.Quantity)
}

func TestSales_UnknownProductIsNotFound(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(t, r, http.MethodPost, "/sales", map[string]any{"product_id": 5, "quantity": 1, "price": 1})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", detail(t, w))
}

func TestSales_ZeroQuantityRejected(t *testing.T) {
	r := newTestRouter(t, true)
	w := do(t, r, http.MethodPost, "/sales", map[string]any{"product_id": 1, "quantity": 0, "price": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ── Orders ───────────────────────────────────────────────────────────────────

func TestOrders_PartialUpdateChangesOnlyQuantity(t *testing.T) {
	r := newTestRouter(t, true)

	var before dto.OrderResponse
	decode(t, do(t, r, http.MethodGet, "/orders/2", nil), &before)

	w := do(t, r, http.MethodPut, "/orders/2", map[string]any{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Order updated successfully", messageOf(t, w))

	var after dto.OrderResponse
	decode(t, do(t, r, http.MethodGet, "/orders/2", nil), &after)
	assert.Equal(t, 5, after.Quantity)
	assert.Equal(t, before.ProductID, after.ProductID)
	assert.Equal(t, before.CustomerName, after.CustomerName)
	assert.Equal(t, before.CustomerEmail, after.CustomerEmail)
}

func TestOrders_UpdateWithNoFields(t *testing.T) {
	r := newTestRouter(t, true)
	w := do(t, r, http.MethodPut, "/orders/1", map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestOrders_UpdateMissingIsNotFound(t *testing.T) {
	r := newTestRouter(t, false)
	w := do(t, r, http.MethodPut, "/orders/77", map[string]any{"quantity": 5})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", detail(t, w))
}

// ── Analytics ────────────────────────────────────────────────────────────────

func TestCapacityAnalytics_EmptySKUReportsZero(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(t, r, http.MethodPost, "/skus", dto.SKURequest{Name: "Empty Plant", Location: "Nowhere", Capacity: 75})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/capacity-analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []dto.CapacityRow
	decode(t, w, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Empty Plant", rows[0].SKUName)
	assert.Equal(t, 75, rows[0].TotalCapacity)
	assert.Equal(t, 0, rows[0].UsedCapacity)
}

func TestCapacityAnalytics_SumsProductQuantities(t *testing.T) {
	r := newTestRouter(t, true)

	var rows []dto.CapacityRow
	decode(t, do(t, r, http.MethodGet, "/capacity-analytics", nil), &rows)
	require.Len(t, rows, 10)
	assert.Equal(t, "Himalaya Factory", rows[0].SKUName)
	assert.Equal(t, 100, rows[0].TotalCapacity)
	assert.Equal(t, 50, rows[0].UsedCapacity)
}

func TestSalesAnalytics_CountsOrderedUnits(t *testing.T) {
	r := newTestRouter(t, true)

	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/products",
		dto.ProductRequest{SKUID: 1, Name: "Unsold", Price: decimal.RequireFromString("1"), Quantity: 1, SupplierID: 1}).Code)

	var rows []dto.UnitsSoldRow
	decode(t, do(t, r, http.MethodGet, "/sales-analytics", nil), &rows)
	byName := map[string]int{}
	for _, row := range rows {
		byName[row.ProductName] = row.TotalSold
	}
	assert.Equal(t, 5, byName["Apple"])
	assert.Equal(t, 4, byName["Rice"])
	assert.Contains(t, byName, "Unsold")
	assert.Equal(t, 0, byName["Unsold"])
}

// ── Misc ─────────────────────────────────────────────────────────────────────

func TestStockReport_IsPDF(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(t, r, http.MethodGet, "/reports/stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"connected","redis":"disabled","dead_letters":0}`, w.Body.String())
}

func TestResponsesCarryRequestID(t *testing.T) {
	r := newTestRouter(t, false)
	w := do(t, r, http.MethodGet, "/products", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `[]`, w.Body.String())
}
