package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"inventory/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const purgeInterval = 5 * time.Minute

// rateEntry counts requests from one client IP within the current window.
type rateEntry struct {
	count     int
	windowEnd time.Time
}

type rateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	entries   map[string]*rateEntry
	lastPurge time.Time
	now       func() time.Time
}

// RateLimiter allows limit requests per window per client IP and answers
// 429 beyond that. A limit of zero or less disables limiting.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	rl := &rateLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*rateEntry),
		now:     time.Now,
	}
	return rl.handle
}

func (rl *rateLimiter) handle(c *gin.Context) {
	allowed, retryAfter := rl.allow(c.ClientIP())
	if !allowed {
		c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many requests, try again shortly"))
		return
	}
	c.Next()
}

func (rl *rateLimiter) allow(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastPurge) > purgeInterval {
		rl.purge(now)
	}

	entry, ok := rl.entries[ip]
	if !ok {
		entry = &rateEntry{}
		rl.entries[ip] = entry
	}
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(rl.window)
	}

	entry.count++
	if entry.count > rl.limit {
		return false, entry.windowEnd.Sub(now)
	}
	return true, 0
}

// purge drops entries whose window has closed so IPs that never return do
// not accumulate.
func (rl *rateLimiter) purge(now time.Time) {
	purged := 0
	for ip, entry := range rl.entries {
		if now.After(entry.windowEnd) {
			delete(rl.entries, ip)
			purged++
		}
	}
	rl.lastPurge = now
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(rl.entries)).Msg("rate limiter entries purged")
	}
}
