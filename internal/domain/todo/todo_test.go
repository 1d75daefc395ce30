package todo

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// requireTitleError asserts err is a title ValidationError with the given message.
func requireTitleError(t *testing.T, err error, wantMsg string) {
	t.Helper()

	if err == nil {
		t.Fatal("ValidateTitle() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if got := verr.Fields["title"]; got != wantMsg {
		t.Errorf("Fields[\"title\"] = %q, want %q", got, wantMsg)
	}
}

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		wantMsg string
	}{
		{name: "exactly five characters", title: "abcde"},
		{name: "exactly one hundred characters", title: strings.Repeat("x", 100)},
		{name: "surrounding whitespace is ignored", title: "   buy milk   "},
		{name: "multibyte characters counted as runes", title: "éééé é"},
		{name: "four characters too short", title: "abcd", wantMsg: MsgTitleTooShort},
		{name: "padded short title too short", title: "  abc  ", wantMsg: MsgTitleTooShort},
		{name: "empty too short", title: "", wantMsg: MsgTitleTooShort},
		{name: "whitespace only too short", title: "\t \n", wantMsg: MsgTitleTooShort},
		{name: "one hundred one too long", title: strings.Repeat("x", 101), wantMsg: MsgTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTitle(tt.title)
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("ValidateTitle(%q) = %v, want nil", tt.title, err)
				}
				return
			}
			requireTitleError(t, err, tt.wantMsg)
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	if got := NormalizeTitle("  walk the dog\n"); got != "walk the dog" {
		t.Errorf("NormalizeTitle() = %q, want %q", got, "walk the dog")
	}
}

func TestErrTitleTaken(t *testing.T) {
	t.Parallel()

	requireTitleError(t, ErrTitleTaken(), MsgTitleTaken)
}

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	td := Todo{Title: "Buy groceries"}
	if err := td.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	td.Title = "no"
	requireTitleError(t, td.Validate(), MsgTitleTooShort)
}
