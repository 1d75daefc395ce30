package query

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// Store holds cached list pages. Implementations must return copies the
// caller may mutate freely.
type Store interface {
	// Get returns the page for key and whether it was present and fresh.
	Get(ctx context.Context, key Key) (*todo.Page, bool, error)

	// Set stores page under key, replacing any previous value.
	Set(ctx context.Context, key Key, page *todo.Page) error

	// Delete drops key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key Key) error

	// Name identifies the backend in metrics ("memory", "redis").
	Name() string
}

type memoryEntry struct {
	page    *todo.Page
	expires time.Time
}

// MemoryStore is a process-local Store. Entries older than the TTL are
// treated as absent; a zero TTL keeps them until deleted.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key Key) (*todo.Page, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key.String()]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !s.now().Before(e.expires) {
		delete(s.entries, key.String())
		return nil, false, nil
	}
	return e.page.Clone(), true, nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, key Key, page *todo.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := memoryEntry{page: page.Clone()}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	s.entries[key.String()] = e
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key.String())
	return nil
}

// Name implements Store.
func (s *MemoryStore) Name() string { return "memory" }
