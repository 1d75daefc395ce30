package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

// errPanic is handed to the envelope writer; it maps to the generic 500
// message so panic values never reach the client.
var errPanic = errors.New("handler panicked")

// Recovery returns middleware that recovers from panics in downstream handlers.
// The panic value and stack are logged; the client receives a 500 failure
// envelope unless the handler had already started writing.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteFailure(rw, r, errPanic, false)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
