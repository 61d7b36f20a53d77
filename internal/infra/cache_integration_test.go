//go:build integration

package infra

import (
	"context"
	"testing"
	"time"

	"inventory/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestAnalyticsCache_RoundTripAndInvalidate(t *testing.T) {
	ctx := context.Background()
	c, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })
	url, err := c.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := NewRedis(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	cache := NewAnalyticsCache(rdb, time.Minute)

	var got []dto.UnitsSoldRow
	assert.False(t, cache.Get(ctx, "units_sold", &got))

	cache.Set(ctx, "units_sold", []dto.UnitsSoldRow{{ProductName: "Apple", TotalSold: 5}})
	require.True(t, cache.Get(ctx, "units_sold", &got))
	assert.Equal(t, []dto.UnitsSoldRow{{ProductName: "Apple", TotalSold: 5}}, got)

	require.NoError(t, cache.Invalidate(ctx))
	assert.False(t, cache.Get(ctx, "units_sold", &got))
	assert.Equal(t, BreakerClosed, cache.breaker.State())
}
