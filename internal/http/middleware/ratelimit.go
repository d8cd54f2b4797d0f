// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the per-client token-bucket limiter guarding the
// public endpoints. Donation and contact submission are unauthenticated,
// so the bucket key falls back to the client IP; authenticated staff get
// their own bucket under their user id. The limiter is process-local,
// which matches the single-instance SQLite deployment; a horizontally
// scaled setup would need a shared store instead.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// keyFunc maps a request to the identity owning its token bucket. The
// returned string must be stable for the duration of the request.
type keyFunc func(*gin.Context) string

// KeyByUserOrIP prefers the authenticated user id (stored in the Gin
// context by the auth middleware under "userID") and falls back to the
// client IP. Keys are prefixed so the two namespaces cannot collide.
func KeyByUserOrIP() keyFunc {
	return func(c *gin.Context) string {
		if v, ok := c.Get("userID"); ok {
			if s, ok := v.(string); ok && s != "" {
				return "user:" + s
			}
		}
		return "ip:" + c.ClientIP()
	}
}

// visitor pairs a bucket with its last activity, so idle entries can be
// evicted.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	// visitorTTL is how long an idle bucket survives before eviction.
	visitorTTL = 10 * time.Minute
	// cleanupEvery triggers an eviction sweep after this many lookups.
	cleanupEvery = 5000
)

// RateLimiter keeps one token bucket per identity. Buckets are created on
// demand in a mutex-guarded map; idle ones are swept opportunistically
// during lookups so memory stays bounded without a background goroutine.
// Safe for concurrent use.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn keyFunc

	mu       sync.Mutex
	visitors map[string]*visitor
	lookups  uint64
}

// NewRateLimiter builds a limiter replenishing rps tokens per second with
// the given burst; burst values <= 0 are coerced to 1. Install it with
// Handler().
func NewRateLimiter(rps float64, burst int, keyFn keyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		keyFn:    keyFn,
		visitors: make(map[string]*visitor),
	}
}

// evictIdle removes buckets idle for at least visitorTTL. Caller holds mu.
func (rl *RateLimiter) evictIdle(now time.Time) {
	for k, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= visitorTTL {
			delete(rl.visitors, k)
		}
	}
}

// bucketFor returns the limiter for key, creating it when absent. The
// eviction sweep runs before the lookup so a stale bucket for this very
// key is dropped rather than refreshed.
func (rl *RateLimiter) bucketFor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= cleanupEvery {
		rl.evictIdle(now)
		rl.lookups = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// Handler returns the Gin middleware. Requests over the limit are aborted
// with 429, the standard error envelope and a Retry-After hint.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.bucketFor(rl.keyFn(c)).Allow() {
			c.Next()
			return
		}

		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get("X-Request-ID"),
			"code":       "rate_limited",
			"message":    "rate limit exceeded",
		})
	}
}
