package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos normalizes the query and returns one page plus the page count.
	ListTodos(ctx context.Context, q todo.ListQuery) (*todo.Page, error)

	// GetTodo returns a single todo by id.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// CreateTodo trims and validates the title and stores a new todo.
	// Returns domain.ErrValidation for length or uniqueness violations.
	CreateTodo(ctx context.Context, title string) (*todo.Todo, error)

	// UpdateTodoTitle trims, validates and replaces the title.
	// Returns domain.ErrNotFound or domain.ErrValidation.
	UpdateTodoTitle(ctx context.Context, id, title string) (*todo.Todo, error)

	// UpdateTodoStatus sets the completed flag.
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodoStatus(ctx context.Context, id string, completed bool) (*todo.Todo, error)

	// DeleteTodo removes the todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id string) error
}
