package todoapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func TestTranslateFailure_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		fields     map[string]string
		wantErr    error
	}{
		{name: "200 failure envelope maps to ErrNotFound", statusCode: http.StatusOK, wantErr: domain.ErrNotFound},
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "400 maps to ErrValidation", statusCode: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "422 maps to ErrValidation", statusCode: http.StatusUnprocessableEntity, wantErr: domain.ErrValidation},
		{
			name:       "field errors map to ErrValidation",
			statusCode: http.StatusTeapot,
			fields:     map[string]string{"title": "bad"},
			wantErr:    domain.ErrValidation,
		},
		{name: "409 maps to ErrConflict", statusCode: http.StatusConflict, wantErr: domain.ErrConflict},
		{name: "500 maps to ErrUnavailable", statusCode: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "503 maps to ErrUnavailable", statusCode: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := translateFailure(tt.statusCode, "boom", tt.fields)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("translateFailure(%d) = %v, want errors.Is %v", tt.statusCode, err, tt.wantErr)
			}
		})
	}
}

func TestTranslateFailure_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	err := translateFailure(http.StatusTeapot, "", nil)

	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict, domain.ErrUnavailable} {
		if errors.Is(err, sentinel) {
			t.Errorf("unexpected status should not match %v", sentinel)
		}
	}
	if err.Message != http.StatusText(http.StatusTeapot) {
		t.Errorf("Message = %q, want status text", err.Message)
	}
}

func TestAPIError_ValidationFieldsReachable(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving: %w", translateFailure(http.StatusBadRequest, "Todo title is too short!",
		map[string]string{"title": "Todo title is too short!"}))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("expected *domain.ValidationError in chain")
	}
	if verr.Fields["title"] != "Todo title is too short!" {
		t.Errorf("Fields = %v", verr.Fields)
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q", got)
	}

	wrapped := fmt.Errorf("GET /api/todos/x: %w", translateFailure(http.StatusOK, "Todo was not found!", nil))
	if got := Message(wrapped); got != "Todo was not found!" {
		t.Errorf("Message(wrapped) = %q", got)
	}

	plain := errors.New("dial tcp: refused")
	if got := Message(plain); got != plain.Error() {
		t.Errorf("Message(plain) = %q", got)
	}
}
