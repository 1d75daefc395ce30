package badger_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-service/internal/adapters/storage/badger"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// tickingClock returns a clock that advances one second per call.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func newRepo(t *testing.T) *badger.Repository {
	t.Helper()
	db, err := badger.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return badger.NewRepository(db, badger.WithClock(tickingClock()))
}

func seed(t *testing.T, repo *badger.Repository, titles ...string) []*todo.Todo {
	t.Helper()
	out := make([]*todo.Todo, 0, len(titles))
	for _, title := range titles {
		created, err := repo.Create(context.Background(), title)
		require.NoError(t, err)
		out = append(out, created)
	}
	return out
}

func TestRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Water the plants")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Water the plants", created.Title)
	assert.False(t, created.Completed)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestRepository_TitleIsUnique(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	seed(t, repo, "Water the plants")

	_, err := repo.Create(ctx, "Water the plants")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, todo.MsgTitleTaken, verr.Fields["title"])

	_, total, err := repo.List(ctx, todo.DefaultListQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRepository_List_PaginatesNewestFirst(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	for i := 1; i <= 12; i++ {
		seed(t, repo, fmt.Sprintf("Task number %02d", i))
	}

	items, total, err := repo.List(context.Background(), todo.ListQuery{Page: 3, PageSize: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(12), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Task number 02", items[0].Title)
	assert.Equal(t, "Task number 01", items[1].Title)

	first, _, err := repo.List(context.Background(), todo.ListQuery{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, "Task number 12", first[0].Title)
}

func TestRepository_List_PageBeyondEndIsEmpty(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	seed(t, repo, "Water the plants", "Walk the dog")

	items, total, err := repo.List(context.Background(), todo.ListQuery{Page: 4, PageSize: 5})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(2), total)
}

func TestRepository_List_FilterAndStatus(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	todos := seed(t, repo, "Buy MILK today", "Walk the dog", "Milkshake run", "Read a book")
	_, err := repo.UpdateStatus(ctx, todos[0].ID, true)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query todo.ListQuery
		want  []string
	}{
		{
			name:  "case-insensitive filter",
			query: todo.ListQuery{Filter: "milk"},
			want:  []string{"Buy MILK today", "Milkshake run"},
		},
		{
			name:  "completed only",
			query: todo.ListQuery{Status: todo.StatusCompleted},
			want:  []string{"Buy MILK today"},
		},
		{
			name:  "active with filter",
			query: todo.ListQuery{Filter: "MILK", Status: todo.StatusActive},
			want:  []string{"Milkshake run"},
		},
		{
			name:  "regex metacharacters are literal",
			query: todo.ListQuery{Filter: "a.b"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := repo.List(ctx, tt.query)
			require.NoError(t, err)

			var titles []string
			for _, it := range items {
				titles = append(titles, it.Title)
			}
			assert.ElementsMatch(t, tt.want, titles)
			assert.Equal(t, int64(len(tt.want)), total)
		})
	}
}

func TestRepository_UpdateStatusRefreshesUpdatedAt(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	todos := seed(t, repo, "Water the plants", "Walk the dog")

	updated, err := repo.UpdateStatus(ctx, todos[0].ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.True(t, updated.UpdatedAt.After(todos[0].UpdatedAt))
	assert.Equal(t, todos[0].CreatedAt, updated.CreatedAt)

	items, _, err := repo.List(ctx, todo.DefaultListQuery())
	require.NoError(t, err)
	assert.Equal(t, todos[0].ID, items[0].ID, "touched todo should sort first")
}

func TestRepository_UpdateTitle(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	todos := seed(t, repo, "Water the plants", "Walk the dog")

	t.Run("moves the unique index", func(t *testing.T) {
		updated, err := repo.UpdateTitle(ctx, todos[0].ID, "Water the garden")
		require.NoError(t, err)
		assert.Equal(t, "Water the garden", updated.Title)

		// The old title is free again.
		_, err = repo.Create(ctx, "Water the plants")
		require.NoError(t, err)
	})

	t.Run("same title is a no-op rename", func(t *testing.T) {
		_, err := repo.UpdateTitle(ctx, todos[1].ID, "Walk the dog")
		require.NoError(t, err)
	})

	t.Run("rejects a title owned by another todo", func(t *testing.T) {
		_, err := repo.UpdateTitle(ctx, todos[1].ID, "Water the garden")
		require.ErrorIs(t, err, domain.ErrValidation)

		got, err := repo.Get(ctx, todos[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "Walk the dog", got.Title)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	todos := seed(t, repo, "Water the plants")

	require.NoError(t, repo.Delete(ctx, todos[0].ID))

	_, err := repo.Get(ctx, todos[0].ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Title index entry is released with the document.
	_, err = repo.Create(ctx, "Water the plants")
	require.NoError(t, err)
}

func TestRepository_MissingIDs(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	ops := map[string]func() error{
		"Get":          func() error { _, err := repo.Get(ctx, "nope"); return err },
		"UpdateTitle":  func() error { _, err := repo.UpdateTitle(ctx, "nope", "Walk the dog"); return err },
		"UpdateStatus": func() error { _, err := repo.UpdateStatus(ctx, "nope", true); return err },
		"Delete":       func() error { return repo.Delete(ctx, "nope") },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("%s(missing) error = %v, want ErrNotFound", name, err)
		}
	}
}

func TestRepository_ConcurrentCreatesKeepTitlesUnique(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Create(ctx, "Only one of us"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	_, total, err := repo.List(ctx, todo.DefaultListQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRepository_HealthCheck(t *testing.T) {
	t.Parallel()

	db, err := badger.OpenInMemory()
	require.NoError(t, err)
	repo := badger.NewRepository(db)

	assert.Equal(t, "todo-store", repo.Name())
	assert.NoError(t, repo.HealthCheck(context.Background()))

	require.NoError(t, db.Close())
	require.NoError(t, db.Close(), "second Close is a no-op")
	assert.Error(t, repo.HealthCheck(context.Background()))
}

func TestOpen_PersistentRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := badger.Open(badger.Options{})
	assert.Error(t, err)
}

func TestOpen_PersistentSurvivesReopen(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ctx := context.Background()

	db, err := badger.Open(badger.Options{Path: dir, GCInterval: time.Hour, GCDiscardRatio: 0.5})
	require.NoError(t, err)
	created, err := badger.NewRepository(db).Create(ctx, "Water the plants")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = badger.Open(badger.Options{Path: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := badger.NewRepository(db).Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Water the plants", got.Title)
}
