// Package api exposes the estimator over HTTP.
//
// Requests carry the same loosely typed fields as the input form; numbers
// that do not parse count as zero, so only a malformed body is rejected.
package api

import (
	"nathanbeddoewebdev/ecoprint/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Options configures the router.
type Options struct {
	// RateLimit is the sustained requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64

	// Burst is the token bucket size. Defaults to RateLimit when smaller.
	Burst float64

	// ChartCache stores rendered chart images. Nil renders every request.
	ChartCache *cache.Cache
}

// DefaultOptions returns 2 requests per second with bursts of 5.
func DefaultOptions() Options {
	return Options{RateLimit: 2, Burst: 5}
}

// NewRouter returns a gin engine serving the /api routes.
func NewRouter(logger zerolog.Logger, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(Recover(logger), RequestLogger(logger), CORS())

	if opts.RateLimit > 0 {
		burst := max(opts.Burst, opts.RateLimit)
		r.Use(NewRateLimiter(opts.RateLimit, burst).Middleware())
	}

	h := &handler{logger: logger, charts: opts.ChartCache}

	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/regions", h.regions)
		api.GET("/estimate", h.estimateQuery)
		api.POST("/estimate", h.estimateBody)
		api.GET("/chart.png", h.chartPNG)
		api.GET("/chart.svg", h.chartSVG)
	}

	return r
}
