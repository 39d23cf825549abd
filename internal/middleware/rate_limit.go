package middleware

import (
	"sync"
	"time"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter admits at most limit requests per key in any window of
// the configured length. Each key keeps the times of its admitted requests.
type KeyedRateLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	limit   int
	window  time.Duration
	now     func() time.Time
	sweep   rate.Sometimes
}

func NewKeyedRateLimiter(limit int, window time.Duration) *KeyedRateLimiter {
	if limit < 1 {
		limit = 1
	}
	return &KeyedRateLimiter{
		windows: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
		now:     time.Now,
		sweep:   rate.Sometimes{Interval: window},
	}
}

// PerMinute allows n requests in any sixty second window.
func PerMinute(n int) *KeyedRateLimiter {
	return NewKeyedRateLimiter(n, time.Minute)
}

func (k *KeyedRateLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	k.sweep.Do(func() { k.evictIdle(now) })

	hits := k.prune(k.windows[key], now)
	if len(hits) >= k.limit {
		k.windows[key] = hits
		return false
	}
	k.windows[key] = append(hits, now)
	return true
}

// prune drops hits that fell out of the window ending at now.
func (k *KeyedRateLimiter) prune(hits []time.Time, now time.Time) []time.Time {
	i := 0
	for i < len(hits) && now.Sub(hits[i]) > k.window {
		i++
	}
	return hits[i:]
}

// evictIdle forgets keys with no hit inside the window. Caller holds mu.
func (k *KeyedRateLimiter) evictIdle(now time.Time) {
	for key, hits := range k.windows {
		if len(hits) == 0 || now.Sub(hits[len(hits)-1]) > k.window {
			delete(k.windows, key)
		}
	}
}

func tooManyRequests(c *gin.Context) {
	e := apperror.ErrTooManyRequests
	response.Abort(c, e.HTTPStatus, e.Code, e.Message)
}

// RateLimitByIP throttles anonymous endpoints per client address.
func RateLimitByIP(limiter *KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow("ip:" + c.ClientIP()) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// RateLimitByUser throttles authenticated endpoints; requests without a user
// fall back to the client address.
func RateLimitByUser(limiter *KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "user:" + c.GetString("user_id")
		if c.GetString("user_id") == "" {
			key = "ip:" + c.ClientIP()
		}
		if !limiter.Allow(key) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}
