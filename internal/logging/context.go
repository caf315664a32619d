package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// WithContext stores logger in ctx for later retrieval with FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled-caller default
// when none was attached (zerolog falls back to its package default).
func FromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}
