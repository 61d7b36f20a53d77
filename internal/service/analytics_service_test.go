package service_test

import (
	"context"
	"testing"

	"inventory/internal/dto"
	"inventory/internal/model"
	"inventory/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacity_WithoutCacheAlwaysQueries(t *testing.T) {
	repo := &stubAnalyticsRepo{capacity: []dto.CapacityRow{{SKUID: 1, SKUName: "Plant", TotalCapacity: 80, UsedCapacity: 0}}}
	svc := service.NewAnalyticsService(repo, nil)
	ctx := context.Background()

	rows, err := svc.Capacity(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, rows[0].UsedCapacity)
	assert.Equal(t, 80, rows[0].Remaining())

	_, _ = svc.Capacity(ctx)
	assert.Equal(t, 2, repo.capacityCalls)
}

func TestUnitsSold_ReadThroughCache(t *testing.T) {
	repo := &stubAnalyticsRepo{unitsSold: []dto.UnitsSoldRow{{ProductName: "Apple", TotalSold: 5}}}
	svc := service.NewAnalyticsService(repo, newMemoryCache())
	ctx := context.Background()

	first, err := svc.UnitsSold(ctx)
	require.NoError(t, err)
	second, err := svc.UnitsSold(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.unitsCalls)
}

func TestAnalytics_StoreFaultIsNotCached(t *testing.T) {
	repo := &stubAnalyticsRepo{err: errStore}
	cache := newMemoryCache()
	svc := service.NewAnalyticsService(repo, cache)

	_, err := svc.Capacity(context.Background())
	assert.ErrorIs(t, err, errStore)
	assert.Empty(t, cache.values)
}

func TestStockReport_TotalsValue(t *testing.T) {
	products := newStubProductRepo()
	products.rows[1] = &model.Product{ID: 1, Name: "Shampoo", Price: decimal.RequireFromString("5.99"), Quantity: 10}
	products.rows[2] = &model.Product{ID: 2, Name: "Apple", Price: decimal.RequireFromString("0.99"), Quantity: 100}
	analytics := &stubAnalyticsRepo{capacity: []dto.CapacityRow{{SKUID: 1, TotalCapacity: 100, UsedCapacity: 110}}}

	report, err := service.NewReportService(products, analytics).StockReport(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Products, 2)
	assert.Equal(t, "158.90", report.TotalValue.StringFixed(2))
	assert.Equal(t, -10, report.Capacity[0].Remaining())
	assert.NotEmpty(t, report.GeneratedAt)
}
