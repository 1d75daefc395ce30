package view

import (
	"net/url"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

func TestParseState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  State
	}{
		{
			name:  "empty uses defaults",
			query: "",
			want:  State{Status: todo.StatusAll, Page: 1, PageSize: 5},
		},
		{
			name:  "all fields",
			query: "filter=milk&status=completed&page=3&pageSize=10",
			want:  State{Filter: "milk", Status: todo.StatusCompleted, Page: 3, PageSize: 10},
		},
		{
			name:  "unknown status falls back to all",
			query: "status=done&page=2",
			want:  State{Status: todo.StatusAll, Page: 2, PageSize: 5},
		},
		{
			name:  "non-numeric page and size fall back independently",
			query: "status=active&page=two&pageSize=x",
			want:  State{Status: todo.StatusActive, Page: 1, PageSize: 5},
		},
		{
			name:  "non-positive page falls back",
			query: "page=0&pageSize=-3",
			want:  State{Status: todo.StatusAll, Page: 1, PageSize: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			if got := ParseState(v); got != tt.want {
				t.Errorf("ParseState(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestState_Values(t *testing.T) {
	t.Parallel()

	if got := DefaultState().String(); got != "page=1&pageSize=5&status=all" {
		t.Errorf("DefaultState().String() = %q", got)
	}

	s := State{Filter: "buy milk", Status: todo.StatusActive, Page: 2, PageSize: 5}
	if got := ParseState(s.Values()); got != s {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}

func TestState_Key(t *testing.T) {
	t.Parallel()

	s := State{Filter: "milk", Status: todo.StatusActive, Page: 2, PageSize: 5}
	if got := s.Key().String(); got != "todos:active:2:5:milk" {
		t.Errorf("Key() = %q", got)
	}
}
