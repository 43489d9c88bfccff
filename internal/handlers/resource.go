package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/PratikDhanave/feature-request-check/internal/codec"
	"github.com/PratikDhanave/feature-request-check/internal/models"
)

// ResourceWriter persists named payloads.
type ResourceWriter interface {
	PutResource(ctx context.Context, name string, body []byte) (bool, error)
}

// RegisterResourceRoutes registers the resource upload endpoint.
//
// PUT /resources/*name
// - Body must pass the same check as POST /checks before it is stored
// - 201 for a new resource, 200 when an existing one was replaced
// - 501 when the service runs without a database
func RegisterResourceRoutes(r gin.IRoutes, chk Checker, w ResourceWriter, logger *slog.Logger) {
	r.PUT("/resources/*name", func(c *gin.Context) {
		if w == nil {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "resource store not configured"})
			return
		}

		name := resourceName(c)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resource name required"})
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
			return
		}

		// Only payloads that deserialize cleanly are stored.
		ev, err := chk.CheckReader(c.Request.Context(), name, bytes.NewReader(body))
		if err != nil {
			if errors.Is(err, codec.ErrMalformedPayload) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "check failed"})
			return
		}

		created, err := w.PutResource(c.Request.Context(), name, body)
		if err != nil {
			logger.Error("put resource", slog.String("resource", name), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db write failed"})
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, models.PutResourceResponse{
			Name:      name,
			RequestID: ev.RequestID,
			Created:   created,
		})
	})
}
