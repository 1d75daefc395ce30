package view

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
	"github.com/jsamuelsen11/todo-service/internal/query"
)

// DefaultFilterDelay is how long typing must pause before the filter is
// written to the URL.
const DefaultFilterDelay = 500 * time.Millisecond

// ListController drives the list view: it reads pages through the query
// cache, runs mutations through it, and moves the Navigator as the state
// changes.
type ListController struct {
	cache    *query.Client
	nav      Navigator
	debounce *Debouncer

	mu          sync.Mutex
	state       State
	localFilter string
}

// ControllerOption configures a ListController.
type ControllerOption func(*ListController)

// WithFilterDelay overrides DefaultFilterDelay.
func WithFilterDelay(d time.Duration) ControllerOption {
	return func(c *ListController) {
		c.debounce = NewDebouncer(d)
	}
}

// NewListController creates a controller showing initial.
func NewListController(cache *query.Client, nav Navigator, initial State, opts ...ControllerOption) *ListController {
	c := &ListController{
		cache:       cache,
		nav:         nav,
		debounce:    NewDebouncer(DefaultFilterDelay),
		state:       initial,
		localFilter: initial.Filter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current view state.
func (c *ListController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LocalFilter returns the filter text as typed, which may be ahead of the
// state while the debounce is pending.
func (c *ListController) LocalFilter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.localFilter
}

// Sync adopts a state reached outside the controller, such as a history
// back or forward step. Pending filter input is discarded.
func (c *ListController) Sync(s State) {
	c.debounce.Stop()

	c.mu.Lock()
	c.state = s
	c.localFilter = s.Filter
	c.mu.Unlock()
}

// Load returns the page for the current state.
func (c *ListController) Load(ctx context.Context) (*query.Result, error) {
	return c.cache.List(ctx, c.State().Key())
}

// Peek returns what can be shown for the current state without a fetch.
func (c *ListController) Peek(ctx context.Context) (*query.Result, bool) {
	return c.cache.Peek(ctx, c.State().Key())
}

// SetStatus switches the status filter and returns to page 1.
func (c *ListController) SetStatus(status todo.Status) {
	c.update(false, func(s *State) {
		s.Status = todo.ParseStatus(string(status))
		s.Page = 1
	})
}

// NextPage moves one page forward.
func (c *ListController) NextPage() {
	c.update(false, func(s *State) { s.Page++ })
}

// PrevPage moves one page back, never below page 1.
func (c *ListController) PrevPage() {
	c.update(false, func(s *State) { s.Page = max(1, s.Page-1) })
}

// TypeFilter records filter input. Once input pauses for the filter delay,
// the filter replaces the current history entry and the page resets to 1.
// Input equal to the current filter cancels any pending change.
func (c *ListController) TypeFilter(text string) {
	c.mu.Lock()
	c.localFilter = text
	same := text == c.state.Filter
	c.mu.Unlock()

	if same {
		c.debounce.Stop()
		return
	}
	c.debounce.Trigger(func() {
		c.update(true, func(s *State) {
			s.Filter = text
			s.Page = 1
		})
	})
}

// FlushFilter applies pending filter input immediately. It reports whether
// any was pending.
func (c *ListController) FlushFilter() bool {
	return c.debounce.Flush()
}

// Toggle sets the completed flag of id on the current page.
func (c *ListController) Toggle(ctx context.Context, id string, completed bool) error {
	return c.cache.ToggleCompleted(ctx, c.State().Key(), id, completed)
}

// Delete removes id. When that leaves the current page empty and it is not
// the first page, the view moves back one page. If the page was not cached
// it is reloaded to find out.
func (c *ListController) Delete(ctx context.Context, id string) error {
	key := c.State().Key()
	res, err := c.cache.Delete(ctx, key, id)
	if err != nil {
		return err
	}
	if key.Page <= 1 {
		return nil
	}

	emptied := res.PageEmptied
	if !res.HadPage {
		// The delete already happened; a failed reload just keeps the page.
		if after, err := c.cache.List(ctx, key); err == nil {
			emptied = len(after.Page.Todos) == 0
		}
	}
	if emptied {
		c.PrevPage()
	}
	return nil
}

// Save creates or updates a todo and moves to the list it lands on.
func (c *ListController) Save(ctx context.Context, in ports.SaveTodoInput) error {
	key, err := c.cache.Save(ctx, in)
	if err != nil {
		return err
	}
	next := FromQuery(key.Query())
	c.Sync(next)
	c.nav.Navigate(next, false)
	return nil
}

// Close cancels pending filter input.
func (c *ListController) Close() {
	c.debounce.Stop()
}

// update applies change to the state and navigates when it differs.
func (c *ListController) update(replace bool, change func(*State)) {
	c.mu.Lock()
	next := c.state
	change(&next)
	if next == c.state {
		c.mu.Unlock()
		return
	}
	c.state = next
	c.mu.Unlock()

	c.nav.Navigate(next, replace)
}
