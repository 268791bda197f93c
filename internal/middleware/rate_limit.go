package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultRateLimit is the default rate limit per minute
	DefaultRateLimit = 20
	// DefaultBurstSize is the largest burst a client may send at once
	DefaultBurstSize = 5
	// CleanupInterval is the interval for cleaning up stale limiters
	CleanupInterval = 5 * time.Minute
	// LimiterTTL is the time-to-live for inactive limiters
	LimiterTTL = 10 * time.Minute
)

// RateLimiter manages per-client rate limiting, keyed by client IP
type RateLimiter struct {
	limiters  map[string]*limiterEntry
	mu        sync.RWMutex
	perMinute int
	rateLimit float64
	burstSize int
	stopCh    chan struct{}
	stopOnce  sync.Once
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new RateLimiter with default settings
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(DefaultRateLimit, DefaultBurstSize)
}

// NewRateLimiterWithConfig creates a RateLimiter with custom configuration.
// The burst never exceeds requestsPerMinute.
func NewRateLimiterWithConfig(requestsPerMinute int, burstSize int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRateLimit
	}
	if burstSize <= 0 || burstSize > requestsPerMinute {
		burstSize = requestsPerMinute
	}

	rl := &RateLimiter{
		limiters:  make(map[string]*limiterEntry),
		perMinute: requestsPerMinute,
		rateLimit: float64(requestsPerMinute) / 60.0, // per second
		burstSize: burstSize,
		stopCh:    make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// Allow checks if a request from the given client is allowed
func (r *RateLimiter) Allow(clientKey string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.limiters[clientKey]
	if !exists {
		entry = &limiterEntry{
			limiter:  rate.NewLimiter(rate.Limit(r.rateLimit), r.burstSize),
			lastSeen: time.Now(),
		}
		r.limiters[clientKey] = entry
	} else {
		entry.lastSeen = time.Now()
	}

	return entry.limiter.Allow()
}

// GetState returns the current state for rate limit headers
func (r *RateLimiter) GetState(clientKey string) (remaining int, resetTime time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.limiters[clientKey]
	if !exists {
		return r.burstSize, time.Now()
	}

	// Approximation: tokens left and time until the bucket refills
	tokens := int(entry.limiter.Tokens())
	if tokens < 0 {
		tokens = 0
	}

	resetDuration := time.Duration(float64(r.burstSize-tokens) / r.rateLimit * float64(time.Second))
	return tokens, time.Now().Add(resetDuration)
}

// Limit returns the configured requests per minute
func (r *RateLimiter) Limit() int {
	return r.perMinute
}

func (r *RateLimiter) clientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.limiters)
}

// evictStale removes limiters not seen since before cutoff
func (r *RateLimiter) evictStale(cutoff time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, entry := range r.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(r.limiters, key)
			log.Debug().Str("client", key).Msg("Cleaned up stale rate limiter")
		}
	}
}

// cleanup periodically removes stale limiters to prevent memory leaks
func (r *RateLimiter) cleanup() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictStale(time.Now().Add(-LimiterTTL))
		case <-r.stopCh:
			return
		}
	}
}

// Stop stops the cleanup goroutine
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
}

// RateLimitMiddleware returns an Echo middleware that limits each client IP
func RateLimitMiddleware(rl *RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientKey := c.RealIP()

			if !rl.Allow(clientKey) {
				_, resetTime := rl.GetState(clientKey)
				retryAfter := int(time.Until(resetTime).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}

				c.Response().Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.Limit()))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))

				log.Warn().
					Str("client", clientKey).
					Str("path", c.Request().URL.Path).
					Int("retry_after", retryAfter).
					Msg("Rate limit exceeded")

				return rateLimitError(c, retryAfter)
			}

			remaining, resetTime := rl.GetState(clientKey)
			c.Response().Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.Limit()))
			c.Response().Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			c.Response().Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))

			return next(c)
		}
	}
}
