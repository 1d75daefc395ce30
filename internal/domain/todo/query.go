package todo

import "strings"

// List view defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// ListQuery shapes a list read. It is never persisted.
type ListQuery struct {
	Filter   string
	Status   Status
	Page     int
	PageSize int
}

// DefaultListQuery is the unfiltered first page.
func DefaultListQuery() ListQuery {
	return ListQuery{
		Status:   StatusAll,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Normalize returns a copy with defaults applied: unknown status becomes
// "all", non-positive page or page size fall back to the defaults, and page
// size is capped at MaxPageSize.
func (q ListQuery) Normalize() ListQuery {
	q.Status = ParseStatus(string(q.Status))
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Skip is the number of items preceding the requested page.
func (q ListQuery) Skip() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}

// MatchesFilter reports whether the title contains the filter text,
// case-insensitively. An empty filter matches everything.
func (q ListQuery) MatchesFilter(title string) bool {
	if q.Filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(q.Filter))
}

// Matches reports whether a todo passes both the filter and the status.
func (q ListQuery) Matches(t *Todo) bool {
	return q.MatchesFilter(t.Title) && q.Status.Matches(t)
}
