package view

import "sync"

// Navigator moves the view to a new state. With replace the current history
// entry is overwritten instead of a new one being pushed.
type Navigator interface {
	Navigate(s State, replace bool)
}

// History is an in-memory Navigator with browser-style back and forward.
type History struct {
	mu      sync.Mutex
	entries []State
	index   int
}

// NewHistory starts a history at initial.
func NewHistory(initial State) *History {
	return &History{entries: []State{initial}}
}

// Navigate implements Navigator. Pushing drops any forward entries.
func (h *History) Navigate(s State, replace bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if replace {
		h.entries[h.index] = s
		return
	}
	h.entries = append(h.entries[:h.index+1], s)
	h.index++
}

// Current returns the state at the cursor.
func (h *History) Current() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Back moves the cursor one entry back. It reports false at the start.
func (h *History) Back() (State, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index == 0 {
		return h.entries[0], false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves the cursor one entry forward. It reports false at the end.
func (h *History) Forward() (State, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index == len(h.entries)-1 {
		return h.entries[h.index], false
	}
	h.index++
	return h.entries[h.index], true
}

// Len is the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
