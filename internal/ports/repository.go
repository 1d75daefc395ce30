package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRepository is the persistence port for the todo collection.
// Implemented by the storage adapters; called by the application layer.
//
// Titles passed in are already trimmed and length-checked. Uniqueness is
// enforced by the store and reported as a *domain.ValidationError on field
// "title". Operations on a missing id return domain.ErrNotFound.
type TodoRepository interface {
	// List returns the requested page of todos matching the query, most
	// recently updated first, together with the total number of matches
	// ignoring pagination.
	List(ctx context.Context, q todo.ListQuery) ([]todo.Todo, int64, error)

	// Get returns a single todo by id.
	Get(ctx context.Context, id string) (*todo.Todo, error)

	// Create stores a new, not completed todo and returns it with its
	// store-assigned id and timestamps.
	Create(ctx context.Context, title string) (*todo.Todo, error)

	// UpdateTitle replaces the title and refreshes updatedAt.
	UpdateTitle(ctx context.Context, id, title string) (*todo.Todo, error)

	// UpdateStatus sets the completed flag and refreshes updatedAt.
	UpdateStatus(ctx context.Context, id string, completed bool) (*todo.Todo, error)

	// Delete removes the todo.
	Delete(ctx context.Context, id string) error
}
