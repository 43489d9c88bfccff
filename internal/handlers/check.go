package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/PratikDhanave/feature-request-check/internal/auth"
	"github.com/PratikDhanave/feature-request-check/internal/codec"
	"github.com/PratikDhanave/feature-request-check/internal/models"
	"github.com/PratikDhanave/feature-request-check/internal/resource"
)

// maxBodyBytes caps request payloads accepted by the API.
const maxBodyBytes = 4 << 20

// Checker is the deserialization check used by the handlers.
type Checker interface {
	Check(ctx context.Context, name string) (models.FeatureCreationRequestEvent, error)
	CheckReader(ctx context.Context, source string, r io.Reader) (models.FeatureCreationRequestEvent, error)
}

// RegisterCheckRoutes registers the check endpoints.
//
// POST /checks
// - Body is a feature creation request event
// - 200 with the decoded event, 400 when the payload is malformed
//
// GET /resources/*name
// - Checks a named resource
// - 404 when it does not exist, 422 when its payload is malformed
func RegisterCheckRoutes(r gin.IRoutes, chk Checker, logger *slog.Logger) {
	r.POST("/checks", func(c *gin.Context) {
		body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		ev, err := chk.CheckReader(c.Request.Context(), "request body", body)
		if err != nil {
			if errors.Is(err, codec.ErrMalformedPayload) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
			return
		}

		respondChecked(c, logger, "request body", ev)
	})

	r.GET("/resources/*name", func(c *gin.Context) {
		name := resourceName(c)

		ev, err := chk.Check(c.Request.Context(), name)
		switch {
		case err == nil:
			respondChecked(c, logger, name, ev)
		case errors.Is(err, resource.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		case errors.Is(err, codec.ErrMalformedPayload):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("check resource", slog.String("resource", name), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "check failed"})
		}
	})
}

// respondChecked assigns a check id, logs it and writes the 200 response.
func respondChecked(c *gin.Context, logger *slog.Logger, source string, ev models.FeatureCreationRequestEvent) {
	checkID := uuid.New().String()

	logger.Info("check passed",
		slog.String("check_id", checkID),
		slog.String("owner", auth.Owner(c)),
		slog.String("source", source),
		slog.String("request_id", ev.RequestID),
	)

	c.JSON(http.StatusOK, models.CheckResponse{
		CheckID:   checkID,
		Source:    source,
		RequestID: ev.RequestID,
		Event:     ev,
	})
}

// resourceName strips the leading slash gin keeps on catch-all params.
func resourceName(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("name"), "/")
}
