package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/shoppinglist/shopping-list/handlers"
	"github.com/shoppinglist/shopping-list/internal/config"
	"github.com/shoppinglist/shopping-list/internal/item/handler"
	"github.com/shoppinglist/shopping-list/internal/item/service"
	"github.com/shoppinglist/shopping-list/pkg/middleware"
)

var startTime = time.Now()

// Deps are the shared runtime resources the HTTP layer needs.
type Deps struct {
	Items service.Service
	// Redis is optional; when nil the rate limiter stays in memory.
	Redis *redis.Client
}

// New assembles the gin engine: middleware, ops endpoints, the items API and
// the static/404 fallback.
func New(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.LoggingMiddleware())
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && deps.Redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(deps.Redis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", readiness(deps))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterSwagger(r)

	handler.RegisterItemRoutes(r, deps.Items)
	r.NoRoute(staticOrNotFound(cfg.StaticDir))
	return r
}

// readiness returns 200 only when the item store (and Redis, if wired) answer a ping.
func readiness(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		ready := true
		status := map[string]bool{"store": deps.Items.Ping(ctx) == nil}
		if !status["store"] {
			ready = false
		}
		if deps.Redis != nil {
			status["redis"] = deps.Redis.Ping(ctx).Err() == nil
			if !status["redis"] {
				ready = false
			}
		}

		code, state := http.StatusOK, "ready"
		if !ready {
			code, state = http.StatusServiceUnavailable, "not_ready"
		}
		c.JSON(code, gin.H{"status": state, "deps": status, "uptime": time.Since(startTime).String()})
	}
}

// staticOrNotFound serves files from dir for GET/HEAD requests and answers
// everything else with the JSON 404.
func staticOrNotFound(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if dir != "" && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			path := c.Request.URL.Path
			if path == "/" {
				path = "/index.html"
			}
			file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
			if fi, err := os.Stat(file); err == nil && fi.Mode().IsRegular() {
				c.File(file)
				return
			}
		}
		handler.NotFound(c)
	}
}
