package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"inventory/internal/config"
	"inventory/internal/infra"
	"inventory/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := infra.NewDatabase("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	_, err = infra.Seed(context.Background(), db)
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(&config.Config{Env: "test", LowStockThreshold: 10}, db, nil))
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--api-url", url}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestStockctl_SuppliersAddListUpdate(t *testing.T) {
	url := newBackend(t)

	out, err := run(t, url, "suppliers", "add", "--name", "Acme", "--email", "sales@acme.test")
	require.NoError(t, err)
	assert.Contains(t, out, "Supplier created successfully")

	out, err = run(t, url, "suppliers", "update", "6", "--name", "Acme Ltd")
	require.NoError(t, err)
	assert.Contains(t, out, "Supplier updated successfully")

	out, err = run(t, url, "suppliers", "get", "6")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Acme Ltd"`)
	assert.Contains(t, out, `"email": "sales@acme.test"`)

	out, err = run(t, url, "suppliers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Ltd")
	assert.Contains(t, out, "Supplier 1")
}

func TestStockctl_SellAndOutOfStock(t *testing.T) {
	url := newBackend(t)

	out, err := run(t, url, "sell", "--product-id", "10", "--quantity", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Sale added successfully")

	_, err = run(t, url, "sell", "--product-id", "10", "--quantity", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product is out of stock")

	out, err = run(t, url, "sales", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "199.80")
}

func TestStockctl_OrderPartialUpdate(t *testing.T) {
	url := newBackend(t)

	out, err := run(t, url, "orders", "update", "1", "--quantity", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Order updated successfully")

	out, err = run(t, url, "orders", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"quantity": 7`)
	assert.Contains(t, out, `"customer_name": "John Doe"`)

	_, err = run(t, url, "orders", "update", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No fields to update")
}

func TestStockctl_InvalidID(t *testing.T) {
	url := newBackend(t)
	_, err := run(t, url, "products", "get", "abc")
	assert.ErrorContains(t, err, "not a valid id")

	_, err = run(t, url, "products", "get", "0")
	assert.ErrorContains(t, err, "Product not found")
}

func TestStockctl_AnalyticsAndReport(t *testing.T) {
	url := newBackend(t)

	out, err := run(t, url, "analytics")
	require.NoError(t, err)
	assert.Contains(t, out, "Units sold per product")
	assert.Contains(t, out, "SKU capacity")

	path := filepath.Join(t.TempDir(), "report.pdf")
	out, err = run(t, url, "report", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestStockctl_DeadLettersNeedsRedis(t *testing.T) {
	url := newBackend(t)
	_, err := run(t, url, "dead-letters", "--redis-url", "")
	assert.ErrorContains(t, err, "--redis-url")
}
