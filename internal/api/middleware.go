package api

import (
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimiter is a per-client-IP token bucket. Buckets idle long enough to
// have refilled completely are dropped, since a new bucket starts full.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     map[string]float64
	lastRefill map[string]time.Time
	rate       float64 // tokens per second
	bucketSize float64
	now        func() time.Time
	lastSweep  time.Time
}

// NewRateLimiter allows rate requests per second per IP with bursts of up to
// bucketSize.
func NewRateLimiter(rate, bucketSize float64) *RateLimiter {
	return &RateLimiter{
		tokens:     make(map[string]float64),
		lastRefill: make(map[string]time.Time),
		rate:       rate,
		bucketSize: bucketSize,
		now:        time.Now,
	}
}

// Allow takes one token from ip's bucket, reporting whether one was available.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	last, seen := rl.lastRefill[ip]
	if !seen {
		rl.tokens[ip] = rl.bucketSize
		last = now
	}

	refill := now.Sub(last).Seconds() * rl.rate
	rl.tokens[ip] = min(rl.bucketSize, rl.tokens[ip]+refill)
	rl.lastRefill[ip] = now

	if rl.tokens[ip] < 1 {
		return false
	}
	rl.tokens[ip]--
	return true
}

// refillTime is how long an empty bucket takes to fill up.
func (rl *RateLimiter) refillTime() time.Duration {
	if rl.rate <= 0 {
		return time.Minute
	}
	return time.Duration(rl.bucketSize / rl.rate * float64(time.Second))
}

// sweep drops full buckets, at most once per refill period. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	idle := rl.refillTime()
	if now.Sub(rl.lastSweep) < idle {
		return
	}
	rl.lastSweep = now

	for ip, last := range rl.lastRefill {
		if now.Sub(last) >= idle {
			delete(rl.lastRefill, ip)
			delete(rl.tokens, ip)
		}
	}
}

// clients returns the number of tracked IPs.
func (rl *RateLimiter) clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.lastRefill)
}

// Middleware rejects requests from clients that ran out of tokens.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded, please try again later",
			})
			return
		}
		c.Next()
	}
}

// RequestLogger writes one access log line per request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

// Recover turns a panicking handler into a 500 response.
func Recover(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "an unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}

// CORS allows browser front ends on other origins to call the API.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
