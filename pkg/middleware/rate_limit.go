package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter tracks one token bucket per client IP. Stale entries are
// evicted so the map does not grow without bound.
type clientLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientEntry
	rate     rate.Limit
	burst    int
	lifetime time.Duration
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(r rate.Limit, burst int) *clientLimiter {
	cl := &clientLimiter{
		clients:  make(map[string]*clientEntry),
		rate:     r,
		burst:    burst,
		lifetime: 5 * time.Minute,
	}
	go cl.evictLoop()
	return cl
}

func (cl *clientLimiter) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	entry, ok := cl.clients[key]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(cl.rate, cl.burst)}
		cl.clients[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (cl *clientLimiter) evictLoop() {
	for range time.Tick(time.Minute) {
		cl.mu.Lock()
		for key, entry := range cl.clients {
			if time.Since(entry.lastSeen) > cl.lifetime {
				delete(cl.clients, key)
			}
		}
		cl.mu.Unlock()
	}
}

// RateLimitMiddleware limits each client IP to r requests per second with
// the given burst.
func RateLimitMiddleware(r float64, burst int) gin.HandlerFunc {
	cl := newClientLimiter(rate.Limit(r), burst)
	return func(c *gin.Context) {
		if !cl.get(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
