package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"chart-interpreter/internal/metrics"
)

// RegisterRoutes mounts the API on rg.
//
//	POST /interpretations  interpret a chart document
//	POST /checks           validate a chart document
//	GET  /health           liveness
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	rg.POST("/interpretations", handlers.HandleInterpret)
	rg.POST("/checks", handlers.HandleCheck)
	rg.GET("/health", handlers.HandleHealth)
}

// RouterOption configures NewRouter.
type RouterOption func(*routerOptions)

type routerOptions struct {
	limiter *rate.Limiter
}

// WithRateLimit limits the /v1 API to limit requests per second with the
// given burst. A non-positive limit leaves the API unlimited.
func WithRateLimit(limit float64, burst int) RouterOption {
	return func(o *routerOptions) {
		if limit <= 0 {
			o.limiter = nil
			return
		}

		o.limiter = rate.NewLimiter(rate.Limit(limit), max(burst, 1))
	}
}

// NewRouter builds the engine: /v1 API routes plus GET /metrics.
func NewRouter(handlers *Handlers, opts ...RouterOption) *gin.Engine {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestMetrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	if o.limiter != nil {
		v1.Use(rateLimit(o.limiter))
	}

	RegisterRoutes(v1, handlers)

	return r
}

// rateLimit rejects requests with 429 once the limiter is exhausted.
func rateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "rate limit exceeded",
				Code:  CodeRateLimited,
			})

			return
		}

		c.Next()
	}
}

// requestMetrics counts requests by matched route and status code.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.RecordHTTPRequest(route, strconv.Itoa(c.Writer.Status()))
	}
}
