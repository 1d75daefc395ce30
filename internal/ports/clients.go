package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// SaveTodoInput is the payload of the create-or-update binding. An empty ID
// creates a new todo; otherwise the existing todo's title is replaced.
type SaveTodoInput struct {
	ID    string
	Title string
}

// TodoAPI is the client port for the remote todo HTTP API.
// Implemented by the todoapi adapter; called by the query cache and the CLI.
// Errors returned by the server are passed through with their message intact.
type TodoAPI interface {
	// ListTodos fetches one page. Zero-valued query fields are defaulted
	// before dispatch (status all, page 1, page size 5).
	ListTodos(ctx context.Context, q todo.ListQuery) (*todo.Page, error)

	// GetTodo fetches a single todo.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// SaveTodo creates or updates a todo and returns the list query the
	// caller should navigate to afterwards (always the unfiltered first page).
	SaveTodo(ctx context.Context, in SaveTodoInput) (todo.ListQuery, error)

	// UpdateTodoStatus sets the completed flag and returns the updated todo.
	UpdateTodoStatus(ctx context.Context, id string, completed bool) (*todo.Todo, error)

	// DeleteTodo removes a todo.
	DeleteTodo(ctx context.Context, id string) error
}
