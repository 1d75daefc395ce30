// Package logging builds the slog loggers of the todo service and todoctl and
// carries request-scoped loggers through a context.
//
// Failures are logged with the operation name, the todo id when there is
// one, and the full error chain:
//
//	logger.ErrorContext(ctx, "todo operation failed",
//	    slog.String("operation", "UpdateTodoStatus"),
//	    slog.String("todo_id", id),
//	    slog.Any("error", err),
//	)
//
// Loggers pulled from a request context already hold request_id and
// correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. format "text" selects the text handler,
// anything else JSON. level is one of debug, info, warn or error; unknown
// values mean info. Debug output includes the source location. Credentials
// are masked before any handler sees them.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx for FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard lets constructors accept a nil logger.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
