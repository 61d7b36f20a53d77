package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Invalidator drops derived data after a write.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// InvalidateOnWrite calls inv after every successful (2xx) non-GET request.
func InvalidateOnWrite(inv Invalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		if err := inv.Invalidate(c.Request.Context()); err != nil {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Err(err).
				Msg("analytics cache invalidation failed")
		}
	}
}
