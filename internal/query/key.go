// Package query is the list-view query cache. It memoizes list pages per
// (filter, status, page, pageSize) key, keeps the previous page visible while
// a new one loads, and applies status toggles and deletes optimistically with
// rollback on failure.
package query

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

const keyPrefix = "todos"

// Key identifies one memoized list result. Two keys are equal only when all
// four fields match.
type Key struct {
	Filter   string
	Status   todo.Status
	Page     int
	PageSize int
}

// KeyFor builds the key for q after applying list defaults, so a zero query
// and the default query share an entry.
func KeyFor(q todo.ListQuery) Key {
	q = q.Normalize()
	return Key{
		Filter:   q.Filter,
		Status:   q.Status,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

// Query converts the key back into the list query it stands for.
func (k Key) Query() todo.ListQuery {
	return todo.ListQuery{
		Filter:   k.Filter,
		Status:   k.Status,
		Page:     k.Page,
		PageSize: k.PageSize,
	}
}

// String renders the canonical store key:
// todos:<status>:<page>:<pageSize>:<filter>. The filter goes last so colons
// inside it cannot collide with the fixed fields.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteByte(':')
	b.WriteString(string(k.Status))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(k.Page))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(k.PageSize))
	b.WriteByte(':')
	b.WriteString(k.Filter)
	return b.String()
}
