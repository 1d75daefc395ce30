package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:        "65f1c0ffee",
		Title:     "Buy groceries",
		Completed: false,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewTodoService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(mocks.NewMockTodoRepository(t), nil)
	if svc.logger == nil {
		t.Fatal("NewTodoService(nil logger) should create a no-op logger, got nil")
	}
}

// --- ListTodos ---

func TestTodoService_ListTodos(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the query and derives page count", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		want := todo.ListQuery{Status: todo.StatusAll, Page: 3, PageSize: 5}
		items := []todo.Todo{validTodo(), validTodo()}
		repo.EXPECT().List(mock.Anything, want).Return(items, int64(12), nil)

		page, err := svc.ListTodos(context.Background(), todo.ListQuery{Status: "bogus", Page: 3})
		if err != nil {
			t.Fatalf("ListTodos() error = %v, want nil", err)
		}
		if len(page.Todos) != 2 {
			t.Errorf("len(Todos) = %d, want 2", len(page.Todos))
		}
		if page.Total != 12 || page.Page != 3 || page.Pages != 3 {
			t.Errorf("page = {Total:%d Page:%d Pages:%d}, want {12 3 3}", page.Total, page.Page, page.Pages)
		}
	})

	t.Run("nil items become an empty slice", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, int64(0), nil)

		page, err := svc.ListTodos(context.Background(), todo.ListQuery{})
		if err != nil {
			t.Fatalf("ListTodos() error = %v", err)
		}
		if page.Todos == nil {
			t.Error("Todos = nil, want empty slice")
		}
		if page.Pages != 0 {
			t.Errorf("Pages = %d, want 0", page.Pages)
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, int64(0), domain.ErrUnavailable)

		_, err := svc.ListTodos(context.Background(), todo.ListQuery{})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListTodos() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- CreateTodo ---

func TestTodoService_CreateTodo(t *testing.T) {
	t.Parallel()

	t.Run("trims the title before storing", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		created := validTodo()
		repo.EXPECT().Create(mock.Anything, "Buy groceries").Return(&created, nil)

		got, err := svc.CreateTodo(context.Background(), "   Buy groceries  ")
		if err != nil {
			t.Fatalf("CreateTodo() error = %v", err)
		}
		if got.Title != "Buy groceries" {
			t.Errorf("Title = %q, want %q", got.Title, "Buy groceries")
		}
	})

	t.Run("rejects short titles without calling the repository", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		_, err := svc.CreateTodo(context.Background(), " abc ")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateTodo() error = %v, want ErrValidation", err)
		}
	})

	t.Run("rejects long titles", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		_, err := svc.CreateTodo(context.Background(), strings.Repeat("a", 101))
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateTodo() error = %v, want ErrValidation", err)
		}
	})

	t.Run("propagates duplicate title errors", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().Create(mock.Anything, "Buy groceries").Return(nil, todo.ErrTitleTaken())

		_, err := svc.CreateTodo(context.Background(), "Buy groceries")
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("CreateTodo() error = %v, want *ValidationError", err)
		}
		if verr.Fields["title"] != todo.MsgTitleTaken {
			t.Errorf("Fields[title] = %q, want %q", verr.Fields["title"], todo.MsgTitleTaken)
		}
	})
}

// --- UpdateTodoTitle ---

func TestTodoService_UpdateTodoTitle(t *testing.T) {
	t.Parallel()

	t.Run("trims and updates", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		updated := validTodo()
		updated.Title = "Walk the dog"
		repo.EXPECT().UpdateTitle(mock.Anything, "abc", "Walk the dog").Return(&updated, nil)

		got, err := svc.UpdateTodoTitle(context.Background(), "abc", "\tWalk the dog ")
		if err != nil {
			t.Fatalf("UpdateTodoTitle() error = %v", err)
		}
		if got.Title != "Walk the dog" {
			t.Errorf("Title = %q, want %q", got.Title, "Walk the dog")
		}
	})

	t.Run("validation runs before lookup", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		_, err := svc.UpdateTodoTitle(context.Background(), "missing", "no")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("UpdateTodoTitle() error = %v, want ErrValidation", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().UpdateTitle(mock.Anything, "missing", "Walk the dog").Return(nil, domain.ErrNotFound)

		_, err := svc.UpdateTodoTitle(context.Background(), "missing", "Walk the dog")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateTodoTitle() error = %v, want ErrNotFound", err)
		}
	})
}

// --- UpdateTodoStatus / GetTodo / DeleteTodo ---

func TestTodoService_UpdateTodoStatus(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockTodoRepository(t)
	svc := NewTodoService(repo, discardLogger())

	updated := validTodo()
	updated.Completed = true
	repo.EXPECT().UpdateStatus(mock.Anything, updated.ID, true).Return(&updated, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "missing", true).Return(nil, domain.ErrNotFound)

	got, err := svc.UpdateTodoStatus(context.Background(), updated.ID, true)
	if err != nil {
		t.Fatalf("UpdateTodoStatus() error = %v", err)
	}
	if !got.Completed {
		t.Error("Completed = false, want true")
	}

	if _, err := svc.UpdateTodoStatus(context.Background(), "missing", true); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateTodoStatus(missing) error = %v, want ErrNotFound", err)
	}
}

func TestTodoService_GetTodo(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockTodoRepository(t)
	svc := NewTodoService(repo, discardLogger())

	want := validTodo()
	repo.EXPECT().Get(mock.Anything, want.ID).Return(&want, nil)
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	got, err := svc.GetTodo(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("GetTodo() error = %v", err)
	}
	if *got != want {
		t.Errorf("GetTodo() = %+v, want %+v", *got, want)
	}

	if _, err := svc.GetTodo(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTodo(missing) error = %v, want ErrNotFound", err)
	}
}

func TestTodoService_DeleteTodo(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockTodoRepository(t)
	svc := NewTodoService(repo, discardLogger())

	repo.EXPECT().Delete(mock.Anything, "abc").Return(nil)
	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrNotFound)

	if err := svc.DeleteTodo(context.Background(), "abc"); err != nil {
		t.Errorf("DeleteTodo() error = %v", err)
	}
	if err := svc.DeleteTodo(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteTodo(missing) error = %v, want ErrNotFound", err)
	}
}
