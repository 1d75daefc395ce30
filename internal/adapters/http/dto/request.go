package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

const msgCompletedRequired = "Todo completed flag is required!"

// CreateTodoRequest represents the JSON body for creating a todo. The title
// bounds mirror todo.TitleMinLength and todo.TitleMaxLength; validator counts
// runes, as the domain does.
type CreateTodoRequest struct {
	Title string `json:"title" validate:"required,min=5,max=100"`
}

// Validate trims the title and checks its length.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	r.Title = todo.NormalizeTitle(r.Title)
	return validateStruct(r)
}

// UpdateTodoTitleRequest represents the JSON body of PUT /api/todos/{id}.
type UpdateTodoTitleRequest struct {
	Title string `json:"title" validate:"required,min=5,max=100"`
}

// Validate trims the title and checks its length.
func (r *UpdateTodoTitleRequest) Validate() error {
	r.Title = todo.NormalizeTitle(r.Title)
	return validateStruct(r)
}

// UpdateTodoStatusRequest represents the JSON body of PATCH /api/todos/{id}.
// Completed is a pointer so that an absent field is distinguishable from false.
type UpdateTodoStatusRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// Validate checks that the completed flag is present.
func (r *UpdateTodoStatusRequest) Validate() error {
	return validateStruct(r)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and converts failures into a
// *domain.ValidationError keyed by JSON field name.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		if fe.Tag() == "max" {
			return todo.MsgTitleTooLong
		}
		return todo.MsgTitleTooShort
	case "completed":
		return msgCompletedRequired
	default:
		return domain.MsgInvalid
	}
}
