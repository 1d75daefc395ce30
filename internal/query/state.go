package query

import "sync"

// MutationState is where a key is in an optimistic mutation.
type MutationState int

const (
	// StateIdle means no mutation is in flight for the key.
	StateIdle MutationState = iota
	// StateOptimistic means the local change is applied and the remote call
	// has not been sent yet.
	StateOptimistic
	// StateReconciling means the remote call is in flight.
	StateReconciling
)

func (s MutationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOptimistic:
		return "optimistic"
	case StateReconciling:
		return "reconciling"
	default:
		return "unknown"
	}
}

// keyLocks serializes mutations per key and tracks their state. Every
// mutation bumps the key's generation, so a list fetch that started before
// it can tell its result is stale. Entries are dropped once no mutation or
// fetch refers to them.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu    sync.Mutex
	refs  int
	state MutationState
	gen   uint64
	held  bool
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

// acquire blocks until the caller owns key, starts a new generation and
// returns the held lock.
func (k *keyLocks) acquire(key string) *keyLock {
	l, _ := k.pin(key)
	l.mu.Lock()

	k.mu.Lock()
	l.gen++
	l.held = true
	k.mu.Unlock()
	return l
}

func (k *keyLocks) release(key string, l *keyLock) {
	k.mu.Lock()
	l.state = StateIdle
	l.held = false
	k.mu.Unlock()

	l.mu.Unlock()
	k.unpin(key, l)
}

// pin keeps the entry for key alive without locking it and returns the
// generation current at that moment. While a mutation holds the key the
// generation returned is already outdated, since the server may not have
// applied that mutation yet.
func (k *keyLocks) pin(key string) (*keyLock, uint64) {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	if l.held {
		return l, l.gen - 1
	}
	return l, l.gen
}

func (k *keyLocks) unpin(key string, l *keyLock) {
	k.mu.Lock()
	defer k.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
}

// storeIfCurrent runs store while holding key, unless a mutation started
// after gen was taken. It reports whether store ran.
func (k *keyLocks) storeIfCurrent(l *keyLock, gen uint64, store func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	k.mu.Lock()
	current := l.gen == gen
	k.mu.Unlock()

	if current {
		store()
	}
	return current
}

func (k *keyLocks) set(l *keyLock, s MutationState) {
	k.mu.Lock()
	l.state = s
	k.mu.Unlock()
}

func (k *keyLocks) state(key string) MutationState {
	k.mu.Lock()
	defer k.mu.Unlock()

	if l, ok := k.locks[key]; ok {
		return l.state
	}
	return StateIdle
}
