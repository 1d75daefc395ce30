package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

// Chain composes middleware so the first argument is the outermost wrapper:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Standard is the stack every todo API request passes through. Recovery sits
// outermost so a panic anywhere below still produces a failure envelope, and
// Timeout sits innermost so the logged duration includes the handler deadline.
// Spans use the global tracer provider. A nil metrics skips instrument
// recording.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) func(http.Handler) http.Handler {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(nil, metrics),
		Logging(logger),
		Timeout(timeout),
	)
}
