package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/feature-request-check/internal/auth"
	"github.com/PratikDhanave/feature-request-check/internal/config"
	"github.com/PratikDhanave/feature-request-check/internal/handlers"
	"github.com/PratikDhanave/feature-request-check/internal/store"
)

// NewRouter wires public endpoints and authenticated APIs.
// Public: /health, /ready
// Authenticated: /checks, /resources/*name
//
// st may be nil; the service then runs from bundled resources only.
func NewRouter(cfg config.Config, chk handlers.Checker, st *store.PostgresStore, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the DB dependency is reachable when there is one.
	r.GET("/ready", func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	authGroup := r.Group("/")
	authGroup.Use(auth.APIKeyMiddleware(cfg.APIKeys))

	// Keep the interface nil rather than holding a nil *PostgresStore.
	var w handlers.ResourceWriter
	if st != nil {
		w = st
	}

	handlers.RegisterCheckRoutes(authGroup, chk, logger)
	handlers.RegisterResourceRoutes(authGroup, chk, w, logger)

	return r
}
