package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"rollcall/config"
	"rollcall/internal/links"
	"rollcall/internal/store"
)

func StoreMiddleware(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("store", st)
		c.Next()
	}
}

func LinksMiddleware(b *links.Builder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("links", b)
		c.Next()
	}
}

func ConfigMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	}
}

// RequestLogger logs one line per request through the default slog handler.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
