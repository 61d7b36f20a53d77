package client_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory/internal/client"
	"inventory/internal/config"
	"inventory/internal/dto"
	"inventory/internal/infra"
	"inventory/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, seed bool) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := infra.NewDatabase("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	if seed {
		_, err = infra.Seed(context.Background(), db)
		require.NoError(t, err)
	}
	srv := httptest.NewServer(router.New(&config.Config{Env: "test", LowStockThreshold: 10}, db, nil))
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/", 5*time.Second)
}

func TestClient_SupplierLifecycle(t *testing.T) {
	c := newServer(t, false)
	ctx := context.Background()

	msg, err := c.CreateSupplier(ctx, dto.SupplierRequest{Name: "Acme", Email: "a@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "Supplier created successfully", msg)

	list, err := c.ListSuppliers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	msg, err = c.UpdateSupplier(ctx, list[0].ID, dto.SupplierRequest{Name: "Acme Ltd", Email: "a@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "Supplier updated successfully", msg)

	got, err := c.GetSupplier(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", got.Name)

	_, err = c.DeleteSupplier(ctx, list[0].ID)
	require.NoError(t, err)
	_, err = c.GetSupplier(ctx, list[0].ID)
	assert.True(t, client.IsNotFound(err))
	assert.EqualError(t, err, "Supplier not found (HTTP 404)")
}

func TestClient_SaleAndOutOfStock(t *testing.T) {
	c := newServer(t, true)
	ctx := context.Background()

	p := decimal.RequireFromString("5.99")
	msg, err := c.RecordSale(ctx, dto.CreateSaleRequest{ProductID: 1, Quantity: 10, Price: &p})
	require.NoError(t, err)
	assert.Equal(t, "Sale added successfully", msg)

	sales, err := c.ListSales(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "59.9", sales[0].Price.String())

	_, err = c.RecordSale(ctx, dto.CreateSaleRequest{ProductID: 1, Quantity: 1000})
	assert.True(t, client.IsOutOfStock(err))
	assert.False(t, client.IsNotFound(err))
}

func TestClient_ValidationErrorCarriesFields(t *testing.T) {
	c := newServer(t, false)

	_, err := c.CreateSKU(context.Background(), dto.SKURequest{Name: "", Location: "Pune", Capacity: 1})
	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "required", apiErr.Fields["name"])
}

func TestClient_UpdateOrderSendsOnlySuppliedFields(t *testing.T) {
	c := newServer(t, true)
	ctx := context.Background()

	qty := 5
	_, err := c.UpdateOrder(ctx, 1, dto.UpdateOrderRequest{Quantity: &qty})
	require.NoError(t, err)

	o, err := c.GetOrder(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, o.Quantity)
	assert.Equal(t, "John Doe", o.CustomerName)
}

func TestClient_Analytics(t *testing.T) {
	c := newServer(t, true)
	ctx := context.Background()

	capacity, err := c.CapacityAnalytics(ctx)
	require.NoError(t, err)
	assert.Len(t, capacity, 10)

	sold, err := c.SalesAnalytics(ctx)
	require.NoError(t, err)
	assert.Len(t, sold, 10)
}

func TestClient_StockReport(t *testing.T) {
	c := newServer(t, true)

	var buf bytes.Buffer
	n, err := c.StockReport(context.Background(), &buf)
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, time.Second).ListProducts(context.Background())
	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Detail)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, 50*time.Millisecond).ListSKUs(context.Background())
	require.Error(t, err)
	var apiErr *client.Error
	assert.False(t, errors.As(err, &apiErr))
}
