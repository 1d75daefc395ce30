// Package todo holds the Todo entity and the list-query vocabulary shared by
// the service, the storage adapters, the remote bindings, and the query cache.
package todo

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Title length bounds, counted in characters after trimming.
const (
	TitleMinLength = 5
	TitleMaxLength = 100
)

// Title validation messages surfaced verbatim to form callers.
const (
	MsgTitleTooShort = "Todo title must have at least 5 characters!"
	MsgTitleTooLong  = "Todo title musn't have more than 100 characters!"
	MsgTitleTaken    = "Todo title must be unique!"
)

// Todo is a short text task.
type Todo struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeTitle trims surrounding whitespace from a title.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(title)
}

// ValidateTitle checks the trimmed title against the length bounds.
// Returns a *domain.ValidationError on field "title", or nil.
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(NormalizeTitle(title))
	switch {
	case n < TitleMinLength:
		return domain.NewFieldError("title", MsgTitleTooShort)
	case n > TitleMaxLength:
		return domain.NewFieldError("title", MsgTitleTooLong)
	default:
		return nil
	}
}

// ErrTitleTaken returns the validation error reported when a title collides
// with an existing todo.
func ErrTitleTaken() error {
	return domain.NewFieldError("title", MsgTitleTaken)
}

// Validate checks business rules for the Todo entity.
func (t *Todo) Validate() error {
	return ValidateTitle(t.Title)
}
