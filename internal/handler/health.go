package handler

import (
	"context"
	"net/http"
	"time"

	"inventory/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health pings the store and, when configured, Redis. Redis being down
// degrades the service rather than failing it, since the cache and the
// alert queue are optional.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "disabled"
		var deadLetters int64
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			} else if n, err := worker.DeadLetterCount(ctx, rdb); err == nil {
				deadLetters = n
			}
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
			// stock alerts that exhausted their retries
			"dead_letters": deadLetters,
		})
	}
}
