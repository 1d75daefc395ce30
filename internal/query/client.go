package query

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Result is a list page as the view should render it. Placeholder is set
// when the page belongs to a different key and is only shown until the
// requested key has loaded.
type Result struct {
	Key         Key
	Page        *todo.Page
	Placeholder bool
}

// DeleteResult reports what an optimistic delete left behind.
type DeleteResult struct {
	// PageEmptied is true when the delete succeeded and the cached page for
	// the key no longer holds any todos.
	PageEmptied bool
	// HadPage is false when the key was not cached, so PageEmptied could not
	// be worked out locally.
	HadPage bool
}

// Client reads list pages through a Store and applies mutations
// optimistically. It is safe for concurrent use.
type Client struct {
	api     ports.TodoAPI
	store   Store
	metrics *telemetry.Metrics
	logger  *slog.Logger

	fetches singleflight.Group
	locks   *keyLocks

	mu   sync.Mutex
	last *Result
}

// NewClient creates a query cache over api. A nil metrics skips recording.
func NewClient(api ports.TodoAPI, store Store, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	return &Client{
		api:     api,
		store:   store,
		metrics: metrics,
		logger:  logging.OrDiscard(logger),
		locks:   newKeyLocks(),
	}
}

// List returns the page for key, from the store when present or from the
// API otherwise. Concurrent misses on the same key share one fetch.
func (c *Client) List(ctx context.Context, key Key) (*Result, error) {
	page, hit := c.cached(ctx, key)
	c.metrics.RecordCacheLookup(ctx, c.store.Name(), hit)
	if hit {
		return c.remember(key, page), nil
	}

	fill := c.fetches.DoChan(key.String(), func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx), key)
	})

	var res singleflight.Result
	select {
	case res = <-fill:
	case <-ctx.Done():
		return nil, fmt.Errorf("listing %s: %w", key, ctx.Err())
	}
	if res.Err != nil {
		return nil, fmt.Errorf("listing %s: %w", key, res.Err)
	}

	page, ok := res.Val.(*todo.Page)
	if !ok {
		return nil, fmt.Errorf("listing %s: unexpected fetch result %T", key, res.Val)
	}
	return c.remember(key, page.Clone()), nil
}

// fetch loads key from the API and caches it. It runs detached from the
// caller's cancellation because other List calls may be waiting on it. The
// page is not cached when a mutation on key was running when it started or
// began while it was loading: it may predate that mutation.
func (c *Client) fetch(ctx context.Context, key Key) (*todo.Page, error) {
	l, gen := c.locks.pin(key.String())
	defer c.locks.unpin(key.String(), l)

	fetched, err := c.api.ListTodos(ctx, key.Query())
	if err != nil {
		return nil, err
	}

	stored := c.locks.storeIfCurrent(l, gen, func() {
		if err := c.store.Set(ctx, key, fetched); err != nil {
			c.logger.WarnContext(ctx, "caching list page failed",
				slog.String("key", key.String()),
				slog.Any("error", err),
			)
		}
	})
	if !stored {
		c.logger.DebugContext(ctx, "discarded list page fetched before a mutation",
			slog.String("key", key.String()),
		)
	}
	return fetched, nil
}

// Peek returns what the view can show for key without any network call: the
// cached page when present, otherwise the last page shown for any key,
// flagged as a placeholder. The boolean is false when nothing has been shown
// yet.
func (c *Client) Peek(ctx context.Context, key Key) (*Result, bool) {
	if page, ok := c.cached(ctx, key); ok {
		return &Result{Key: key, Page: page}, true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil {
		return nil, false
	}
	return &Result{
		Key:         c.last.Key,
		Page:        c.last.Page.Clone(),
		Placeholder: c.last.Key != key,
	}, true
}

// State reports the mutation state of key.
func (c *Client) State(key Key) MutationState {
	return c.locks.state(key.String())
}

// Invalidate drops key so the next List refetches it.
func (c *Client) Invalidate(ctx context.Context, key Key) {
	if err := c.store.Delete(ctx, key); err != nil {
		c.logger.WarnContext(ctx, "invalidating list page failed",
			slog.String("key", key.String()),
			slog.Any("error", err),
		)
	}
}

// ToggleCompleted sets the completed flag of id. The cached page for key
// shows the new flag until the API answers; on failure the page is put back
// exactly as it was. Either way key is invalidated afterwards.
func (c *Client) ToggleCompleted(ctx context.Context, key Key, id string, completed bool) error {
	return c.mutate(ctx, key, "toggle",
		func(p *todo.Page) {
			for i := range p.Todos {
				if p.Todos[i].ID == id {
					p.Todos[i].Completed = completed
				}
			}
		},
		func(ctx context.Context) error {
			_, err := c.api.UpdateTodoStatus(ctx, id, completed)
			return err
		},
		nil,
	)
}

// Delete removes id. The cached page for key drops the todo until the API
// answers; on failure the page is put back exactly as it was. Either way key
// is invalidated afterwards.
func (c *Client) Delete(ctx context.Context, key Key, id string) (DeleteResult, error) {
	var res DeleteResult
	err := c.mutate(ctx, key, "delete",
		func(p *todo.Page) {
			p.Todos = slices.DeleteFunc(p.Todos, func(t todo.Todo) bool { return t.ID == id })
		},
		func(ctx context.Context) error {
			return c.api.DeleteTodo(ctx, id)
		},
		func(p *todo.Page) {
			res.HadPage = p != nil
			res.PageEmptied = p != nil && len(p.Todos) == 0
		},
	)
	return res, err
}

// Save creates or updates a todo and returns the key the view should move
// to. That key is invalidated so it shows the saved todo.
func (c *Client) Save(ctx context.Context, in ports.SaveTodoInput) (Key, error) {
	next, err := c.api.SaveTodo(ctx, in)
	if err != nil {
		return Key{}, err
	}
	key := KeyFor(next)
	c.Invalidate(ctx, key)
	return key, nil
}

// mutate runs the snapshot, apply, call, restore-on-failure, invalidate
// sequence under the per-key lock. settled sees the optimistic page after a
// successful call.
func (c *Client) mutate(
	ctx context.Context,
	key Key,
	op string,
	apply func(*todo.Page),
	call func(context.Context) error,
	settled func(*todo.Page),
) error {
	l := c.locks.acquire(key.String())
	defer c.locks.release(key.String(), l)

	snapshot, hasSnapshot := c.cached(ctx, key)

	var optimistic *todo.Page
	c.locks.set(l, StateOptimistic)
	if hasSnapshot {
		optimistic = snapshot.Clone()
		apply(optimistic)
		c.write(ctx, key, optimistic)
	}

	c.locks.set(l, StateReconciling)
	callErr := call(ctx)

	logger := c.logger.With(
		slog.String("operation", op),
		slog.String("key", key.String()),
	)
	if callErr != nil {
		if hasSnapshot {
			c.write(ctx, key, snapshot)
		}
		logger.DebugContext(ctx, "optimistic mutation rolled back", slog.Any("error", callErr))
	} else if settled != nil {
		settled(optimistic)
	}

	c.Invalidate(ctx, key)
	return callErr
}

// write stores page under key and makes it the page last shown.
func (c *Client) write(ctx context.Context, key Key, page *todo.Page) {
	if err := c.store.Set(ctx, key, page); err != nil {
		c.logger.WarnContext(ctx, "caching list page failed",
			slog.String("key", key.String()),
			slog.Any("error", err),
		)
	}
	c.remember(key, page.Clone())
}

// cached reads key from the store. Store errors count as a miss.
func (c *Client) cached(ctx context.Context, key Key) (*todo.Page, bool) {
	page, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "reading cached list page failed",
			slog.String("key", key.String()),
			slog.Any("error", err),
		)
		return nil, false
	}
	return page, ok
}

func (c *Client) remember(key Key, page *todo.Page) *Result {
	c.mu.Lock()
	c.last = &Result{Key: key, Page: page.Clone()}
	c.mu.Unlock()

	return &Result{Key: key, Page: page}
}
