package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoRepository = (*Repository)(nil)

const (
	todoPrefix  = "todo/"
	titlePrefix = "title/"
)

// conflictRetries is how many times a write transaction is re-run after
// badger reports a read-write conflict with a concurrent transaction.
const conflictRetries = 1

// record is the stored JSON document.
type record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *record) toDomain() todo.Todo {
	return todo.Todo{
		ID:        r.ID,
		Title:     r.Title,
		Completed: r.Completed,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repository stores todos in a DB.
type Repository struct {
	db    *DB
	now   func() time.Time
	newID func() string
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *Repository) { r.now = now }
}

// NewRepository returns a Repository backed by db.
func NewRepository(db *DB, opts ...RepositoryOption) *Repository {
	r := &Repository{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "todo-store" }

// HealthCheck implements ports.HealthChecker.
func (r *Repository) HealthCheck(_ context.Context) error { return r.db.Ping() }

// List scans every document, keeps the ones matching q, and returns the
// requested page ordered by updatedAt descending.
func (r *Repository) List(ctx context.Context, q todo.ListQuery) ([]todo.Todo, int64, error) {
	q = q.Normalize()

	var matched []todo.Todo
	err := r.db.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   64,
			Prefix:         []byte(todoPrefix),
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var rec record
			if err := it.Item().Value(func(v []byte) error { return json.Unmarshal(v, &rec) }); err != nil {
				return fmt.Errorf("decoding %s: %w", it.Item().Key(), err)
			}
			t := rec.toDomain()
			if q.Matches(&t) {
				matched = append(matched, t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing todos: %w", err)
	}

	slices.SortFunc(matched, newestFirst)

	total := int64(len(matched))
	start := min(q.Skip(), len(matched))
	end := min(start+q.PageSize, len(matched))
	return matched[start:end], total, nil
}

// newestFirst orders by updatedAt desc, then createdAt desc, then id.
func newestFirst(a, b todo.Todo) int {
	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// Get returns the todo with the given id.
func (r *Repository) Get(_ context.Context, id string) (*todo.Todo, error) {
	var rec *record
	err := r.db.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = load(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	t := rec.toDomain()
	return &t, nil
}

// Create stores a new todo. The title must already be trimmed and valid.
func (r *Repository) Create(_ context.Context, title string) (*todo.Todo, error) {
	now := r.now()
	rec := &record{
		ID:        r.newID(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.update(func(txn *badger.Txn) error {
		if err := claimTitle(txn, title, rec.ID); err != nil {
			return err
		}
		return save(txn, rec)
	})
	if err != nil {
		return nil, err
	}
	t := rec.toDomain()
	return &t, nil
}

// UpdateTitle replaces the title and moves the unique index entry.
func (r *Repository) UpdateTitle(_ context.Context, id, title string) (*todo.Todo, error) {
	return r.modify(id, func(txn *badger.Txn, rec *record) error {
		if rec.Title == title {
			return nil
		}
		if err := claimTitle(txn, title, rec.ID); err != nil {
			return err
		}
		if err := txn.Delete(titleKey(rec.Title)); err != nil {
			return err
		}
		rec.Title = title
		return nil
	})
}

// UpdateStatus sets the completed flag.
func (r *Repository) UpdateStatus(_ context.Context, id string, completed bool) (*todo.Todo, error) {
	return r.modify(id, func(_ *badger.Txn, rec *record) error {
		rec.Completed = completed
		return nil
	})
}

// Delete removes the todo and its title index entry.
func (r *Repository) Delete(_ context.Context, id string) error {
	return r.update(func(txn *badger.Txn) error {
		rec, err := load(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(titleKey(rec.Title)); err != nil {
			return err
		}
		return txn.Delete(todoKey(id))
	})
}

// modify loads a record, applies fn, refreshes updatedAt and saves it, all
// in one transaction.
func (r *Repository) modify(id string, fn func(*badger.Txn, *record) error) (*todo.Todo, error) {
	var out todo.Todo
	err := r.update(func(txn *badger.Txn) error {
		rec, err := load(txn, id)
		if err != nil {
			return err
		}
		if err := fn(txn, rec); err != nil {
			return err
		}
		rec.UpdatedAt = r.now()
		if err := save(txn, rec); err != nil {
			return err
		}
		out = rec.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// update runs fn in a read-write transaction, re-running it on conflict.
func (r *Repository) update(fn func(*badger.Txn) error) error {
	var err error
	for range conflictRetries + 1 {
		err = r.db.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if errors.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%w: concurrent write to the same todo", domain.ErrConflict)
	}
	return err
}

func load(txn *badger.Txn, id string) (*record, error) {
	item, err := txn.Get(todoKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading todo %s: %w", id, err)
	}

	var rec record
	if err := item.Value(func(v []byte) error { return json.Unmarshal(v, &rec) }); err != nil {
		return nil, fmt.Errorf("decoding todo %s: %w", id, err)
	}
	return &rec, nil
}

func save(txn *badger.Txn, rec *record) error {
	buf, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding todo %s: %w", rec.ID, err)
	}
	return txn.Set(todoKey(rec.ID), buf)
}

// claimTitle points the title index at id, failing when another todo
// already owns the title.
func claimTitle(txn *badger.Txn, title, id string) error {
	item, err := txn.Get(titleKey(title))
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
	case err != nil:
		return fmt.Errorf("reading title index: %w", err)
	default:
		owner, err := item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("reading title index: %w", err)
		}
		if string(owner) != id {
			return todo.ErrTitleTaken()
		}
	}
	return txn.Set(titleKey(title), []byte(id))
}

func todoKey(id string) []byte     { return []byte(todoPrefix + id) }
func titleKey(title string) []byte { return []byte(titlePrefix + title) }
