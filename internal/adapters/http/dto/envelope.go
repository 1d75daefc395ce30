package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Client-facing failure messages.
const (
	MsgNotFound    = "Todo was not found!"
	MsgInvalidJSON = "Request body must be valid JSON"
	MsgConflict    = "Todo was modified concurrently, try again"
	MsgUnavailable = "Todo storage is unavailable"
	MsgTimeout     = "Request timed out"
	MsgInternal    = "Something went wrong"
)

// Envelope is the body of every /api response. Data is omitted on failure and
// on deletes; Errors carries per-field validation messages.
type Envelope struct {
	Status  string            `json:"status"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// MalformedBody returns the validation error reported for a request body
// that could not be decoded.
func MalformedBody() error {
	return domain.NewFieldError("body", MsgInvalidJSON)
}

// Failure describes how an error is reported to the client.
type Failure struct {
	Code     int
	Envelope Envelope
}

// NewFailure maps an error to its HTTP status and failure envelope. Not-found
// is reported with 200 unless strictNotFound is set, matching what existing
// browser clients expect.
func NewFailure(err error, strictNotFound bool) Failure {
	env := Envelope{Status: StatusFailure}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		env.Message = verr.Message()
		env.Errors = verr.Fields
		return Failure{Code: http.StatusBadRequest, Envelope: env}
	case errors.Is(err, domain.ErrNotFound):
		env.Message = MsgNotFound
		if strictNotFound {
			return Failure{Code: http.StatusNotFound, Envelope: env}
		}
		return Failure{Code: http.StatusOK, Envelope: env}
	case errors.Is(err, domain.ErrConflict):
		env.Message = MsgConflict
		return Failure{Code: http.StatusConflict, Envelope: env}
	case errors.Is(err, context.DeadlineExceeded):
		env.Message = MsgTimeout
		return Failure{Code: http.StatusGatewayTimeout, Envelope: env}
	case errors.Is(err, domain.ErrUnavailable):
		env.Message = MsgUnavailable
		return Failure{Code: http.StatusServiceUnavailable, Envelope: env}
	default:
		env.Message = MsgInternal
		return Failure{Code: http.StatusInternalServerError, Envelope: env}
	}
}

// WriteSuccess writes a 200 success envelope. A nil data omits the data key.
func WriteSuccess(w http.ResponseWriter, r *http.Request, data any) {
	WriteJSON(w, r, http.StatusOK, Envelope{Status: StatusSuccess, Data: data})
}

// WriteFailure writes the failure envelope for err.
func WriteFailure(w http.ResponseWriter, r *http.Request, err error, strictNotFound bool) {
	f := NewFailure(err, strictNotFound)
	WriteJSON(w, r, f.Code, f.Envelope)
}

// WriteJSON writes v as a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
