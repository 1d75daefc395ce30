// Package app provides application services that orchestrate use cases by
// coordinating between domain rules and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoRepository. It
// trims and validates titles, derives page counts, and logs failures; the
// repository owns uniqueness and not-found detection.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:   repo,
		logger: logger,
	}
}

// ListTodos returns one page of todos plus total and page count.
func (s *TodoService) ListTodos(ctx context.Context, q todo.ListQuery) (*todo.Page, error) {
	q = q.Normalize()

	s.logger.DebugContext(ctx, "listing todos",
		slog.String("filter", q.Filter),
		slog.String("status", q.Status.String()),
		slog.Int("page", q.Page),
		slog.Int("page_size", q.PageSize),
	)

	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.logFailure(ctx, "ListTodos", "", err)
		return nil, err
	}
	if items == nil {
		items = []todo.Todo{}
	}

	return &todo.Page{
		Todos: items,
		Total: total,
		Page:  q.Page,
		Pages: todo.PageCount(total, q.PageSize),
	}, nil
}

// GetTodo returns a single todo by id.
func (s *TodoService) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetTodo", id, err)
		return nil, err
	}
	return t, nil
}

// CreateTodo trims and validates the title, then stores a new todo.
func (s *TodoService) CreateTodo(ctx context.Context, title string) (*todo.Todo, error) {
	title = todo.NormalizeTitle(title)
	if err := todo.ValidateTitle(title); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating todo", slog.String("title", title))

	created, err := s.repo.Create(ctx, title)
	if err != nil {
		s.logFailure(ctx, "CreateTodo", "", err)
		return nil, err
	}
	return created, nil
}

// UpdateTodoTitle trims and validates the title, then replaces it.
func (s *TodoService) UpdateTodoTitle(ctx context.Context, id, title string) (*todo.Todo, error) {
	title = todo.NormalizeTitle(title)
	if err := todo.ValidateTitle(title); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating todo title", slog.String("todo_id", id))

	updated, err := s.repo.UpdateTitle(ctx, id, title)
	if err != nil {
		s.logFailure(ctx, "UpdateTodoTitle", id, err)
		return nil, err
	}
	return updated, nil
}

// UpdateTodoStatus sets the completed flag.
func (s *TodoService) UpdateTodoStatus(ctx context.Context, id string, completed bool) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo status",
		slog.String("todo_id", id),
		slog.Bool("completed", completed),
	)

	updated, err := s.repo.UpdateStatus(ctx, id, completed)
	if err != nil {
		s.logFailure(ctx, "UpdateTodoStatus", id, err)
		return nil, err
	}
	return updated, nil
}

// DeleteTodo removes the todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.String("todo_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteTodo", id, err)
		return err
	}
	return nil
}

// logFailure logs expected client-side failures (not found, validation) at
// WARN and everything else at ERROR.
func (s *TodoService) logFailure(ctx context.Context, op, id string, err error) {
	attrs := []any{slog.String("operation", op)}
	if id != "" {
		attrs = append(attrs, slog.String("todo_id", id))
	}
	attrs = append(attrs, slog.Any("error", err))

	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		s.logger.WarnContext(ctx, "todo operation rejected", attrs...)
		return
	}
	s.logger.ErrorContext(ctx, "todo operation failed", attrs...)
}
