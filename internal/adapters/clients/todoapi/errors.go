package todoapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// APIError is a failure reported by the todo server. Message is the server's
// text, unchanged, so callers can show it to users. Kind is one of the
// domain sentinels; when the server sent field errors a
// *domain.ValidationError is also reachable through errors.As.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
	Kind       error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() []error {
	if len(e.Fields) == 0 {
		return []error{e.Kind}
	}
	return []error{e.Kind, &domain.ValidationError{Fields: e.Fields}}
}

// Message returns the user-facing text of err: the server's message for an
// *APIError, otherwise err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// translateFailure maps a failure envelope to an *APIError. The server only
// answers 200 with a failure envelope for a missing todo, so that status is
// treated as not-found.
func translateFailure(statusCode int, message string, fields map[string]string) *APIError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Fields:     fields,
		Kind:       kindFor(statusCode, fields),
	}
}

func kindFor(statusCode int, fields map[string]string) error {
	switch {
	case statusCode == http.StatusOK || statusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity || len(fields) > 0:
		return domain.ErrValidation
	case statusCode == http.StatusConflict:
		return domain.ErrConflict
	case statusCode >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d", statusCode)
	}
}
