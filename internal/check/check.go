package check

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/PratikDhanave/feature-request-check/internal/codec"
	"github.com/PratikDhanave/feature-request-check/internal/models"
	"github.com/PratikDhanave/feature-request-check/internal/resource"
)

// Checker verifies that a payload materializes into a complete
// FeatureCreationRequestEvent. It holds no mutable state and is safe for
// concurrent use.
type Checker struct {
	loader  resource.Loader
	decoder codec.Decoder
	logger  *slog.Logger
}

// New wires a checker from explicit collaborators.
// A nil logger discards the debug trace.
func New(loader resource.Loader, decoder codec.Decoder, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Checker{loader: loader, decoder: decoder, logger: logger}
}

// Check loads the named resource and deserializes it.
//
// Errors wrap resource.ErrNotFound or codec.ErrMalformedPayload. The stream
// is closed before Check returns, whatever the outcome.
func (c *Checker) Check(ctx context.Context, name string) (models.FeatureCreationRequestEvent, error) {
	rc, err := c.loader.Open(ctx, name)
	if err != nil {
		return models.FeatureCreationRequestEvent{}, errors.Wrap(err, "open resource")
	}
	defer rc.Close()

	return c.CheckReader(ctx, name, rc)
}

// CheckReader deserializes r. source only labels the debug trace; the caller
// owns r.
func (c *Checker) CheckReader(ctx context.Context, source string, r io.Reader) (models.FeatureCreationRequestEvent, error) {
	var ev models.FeatureCreationRequestEvent
	if err := c.decoder.Decode(r, &ev); err != nil {
		return models.FeatureCreationRequestEvent{}, errors.Wrapf(err, "deserialize %s", source)
	}

	c.logger.DebugContext(ctx, "deserialized feature creation request",
		slog.String("source", source),
		slog.String("event", ev.String()),
	)
	return ev, nil
}
