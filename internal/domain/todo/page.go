package todo

// Page is one paginated list result.
type Page struct {
	Todos []Todo
	Total int64
	Page  int
	Pages int
}

// PageCount returns ceil(total/pageSize); zero when either is non-positive.
func PageCount(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// Clone returns a deep copy of the page so callers can mutate the todo slice
// without touching the original.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	out := *p
	if p.Todos != nil {
		out.Todos = make([]Todo, len(p.Todos))
		copy(out.Todos, p.Todos)
	}
	return &out
}
