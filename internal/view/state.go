// Package view holds list-view state the way a browser URL carries it, plus
// the navigation, debounce and controller logic that keeps the state, the
// query cache and the remote API in step. It has no rendering of its own.
package view

import (
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/query"
)

// URL query parameter names.
const (
	ParamFilter   = "filter"
	ParamStatus   = "status"
	ParamPage     = "page"
	ParamPageSize = "pageSize"
)

// State is the shareable list-view state.
type State struct {
	Filter   string
	Status   todo.Status
	Page     int
	PageSize int
}

// DefaultState is the unfiltered first page of all todos.
func DefaultState() State {
	return FromQuery(todo.DefaultListQuery())
}

// FromQuery converts a list query into view state.
func FromQuery(q todo.ListQuery) State {
	return State{Filter: q.Filter, Status: q.Status, Page: q.Page, PageSize: q.PageSize}
}

// ParseState reads state from URL values. Each field falls back to its
// default independently: an unknown status becomes "all", and a missing,
// non-numeric or non-positive page or pageSize becomes 1 or 5.
func ParseState(v url.Values) State {
	s := DefaultState()
	s.Filter = v.Get(ParamFilter)
	s.Status = todo.ParseStatus(v.Get(ParamStatus))
	s.Page = positiveOr(v.Get(ParamPage), todo.DefaultPage)
	s.PageSize = positiveOr(v.Get(ParamPageSize), todo.DefaultPageSize)
	return s
}

// Values encodes the state as URL values. An empty filter is omitted.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Filter != "" {
		v.Set(ParamFilter, s.Filter)
	}
	v.Set(ParamStatus, string(s.Status))
	v.Set(ParamPage, strconv.Itoa(s.Page))
	v.Set(ParamPageSize, strconv.Itoa(s.PageSize))
	return v
}

// String is the encoded query string, e.g. "page=1&pageSize=5&status=all".
func (s State) String() string {
	return s.Values().Encode()
}

// Query converts the state into a list query.
func (s State) Query() todo.ListQuery {
	return todo.ListQuery{Filter: s.Filter, Status: s.Status, Page: s.Page, PageSize: s.PageSize}
}

// Key is the cache key for the state.
func (s State) Key() query.Key {
	return query.KeyFor(s.Query())
}

func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
