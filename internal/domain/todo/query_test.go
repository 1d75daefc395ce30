package todo

import "testing"

func TestListQuery_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   ListQuery
		want ListQuery
	}{
		{
			name: "zero value gets defaults",
			in:   ListQuery{},
			want: ListQuery{Status: StatusAll, Page: 1, PageSize: 5},
		},
		{
			name: "valid values kept",
			in:   ListQuery{Filter: "milk", Status: StatusActive, Page: 3, PageSize: 10},
			want: ListQuery{Filter: "milk", Status: StatusActive, Page: 3, PageSize: 10},
		},
		{
			name: "unknown status falls back to all",
			in:   ListQuery{Status: "bogus", Page: 2, PageSize: 5},
			want: ListQuery{Status: StatusAll, Page: 2, PageSize: 5},
		},
		{
			name: "negative page and size fall back",
			in:   ListQuery{Status: StatusAll, Page: -4, PageSize: -1},
			want: ListQuery{Status: StatusAll, Page: 1, PageSize: 5},
		},
		{
			name: "page size capped",
			in:   ListQuery{Status: StatusAll, Page: 1, PageSize: 1000},
			want: ListQuery{Status: StatusAll, Page: 1, PageSize: MaxPageSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListQuery_Skip(t *testing.T) {
	t.Parallel()

	q := ListQuery{Page: 3, PageSize: 5}
	if got := q.Skip(); got != 10 {
		t.Errorf("Skip() = %d, want 10", got)
	}
	if got := (ListQuery{Page: 0, PageSize: 5}).Skip(); got != 0 {
		t.Errorf("Skip() with page 0 = %d, want 0", got)
	}
}

func TestListQuery_Matches(t *testing.T) {
	t.Parallel()

	q := ListQuery{Filter: "MiLk", Status: StatusActive}

	if !q.Matches(&Todo{Title: "buy milk today"}) {
		t.Error("expected case-insensitive substring match")
	}
	if q.Matches(&Todo{Title: "buy milk today", Completed: true}) {
		t.Error("completed todo should not match active status")
	}
	if q.Matches(&Todo{Title: "buy bread"}) {
		t.Error("non-matching title should not match")
	}
	if !(ListQuery{Status: StatusAll}).Matches(&Todo{Title: "anything"}) {
		t.Error("empty filter should match everything")
	}
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{12, 5, 3},
		{10, 5, 2},
		{1, 5, 1},
		{0, 5, 0},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := PageCount(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}

func TestPage_Clone(t *testing.T) {
	t.Parallel()

	orig := &Page{Todos: []Todo{{ID: "a", Title: "first task"}}, Total: 1, Page: 1, Pages: 1}
	cp := orig.Clone()
	cp.Todos[0].Completed = true

	if orig.Todos[0].Completed {
		t.Error("mutating clone changed the original")
	}
	if (*Page)(nil).Clone() != nil {
		t.Error("Clone() of nil page should be nil")
	}
}
