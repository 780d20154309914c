// Package context carries the request ID and the request-scoped logger from
// the HTTP and queue entry points down to use cases and the carrier store.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey keys the values stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	HeaderXRequestID = echo.HeaderXRequestID

	// LogKeyRequestID is the attribute name every scoped log record carries.
	LogKeyRequestID = "request_id"
)

// Scoped returns ctx carrying requestID and a child of base tagged with it,
// plus that child logger. A nil base yields slog.Default's child.
func Scoped(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	if base == nil {
		base = slog.Default()
	}
	logger := base.With(slog.String(LogKeyRequestID, requestID))

	ctx = context.WithValue(ctx, KeyRequestID, requestID)
	ctx = context.WithValue(ctx, KeyLogger, logger)

	return ctx, logger
}

// GetRequestID returns the request ID stored on the echo context, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID stored in ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger stores logger in ctx without touching the request ID.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger from ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
