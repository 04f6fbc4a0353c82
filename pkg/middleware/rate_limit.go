package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shoppinglist/shopping-list/pkg/metrics"
	"golang.org/x/time/rate"
)

// memoryLimiter keeps one token bucket per client key.
type memoryLimiter struct {
	rps     float64
	burst   int
	buckets sync.Map // map[string]*rate.Limiter
}

func (m *memoryLimiter) get(key string) *rate.Limiter {
	if v, ok := m.buckets.Load(key); ok {
		return v.(*rate.Limiter)
	}
	v, _ := m.buckets.LoadOrStore(key, rate.NewLimiter(rate.Limit(m.rps), m.burst))
	return v.(*rate.Limiter)
}

// RateLimitMiddleware enforces an in-memory token bucket per client IP.
// rps = allowed events per second, burst = maximum tokens in bucket.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	lim := &memoryLimiter{rps: rps, burst: burst}
	return func(c *gin.Context) {
		if !lim.get(clientKey(c)).Allow() {
			c.Header("Retry-After", "1")
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			tooManyRequests(c)
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		c.Next()
	}
}

func clientKey(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

func tooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": http.StatusText(http.StatusTooManyRequests)})
}
