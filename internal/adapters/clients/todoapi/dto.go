package todoapi

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

const statusFailure = "failure"

// envelopeDTO matches the server's response envelope. Data stays undecoded
// until the status is known.
type envelopeDTO[T any] struct {
	Status  string            `json:"status"`
	Data    *T                `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// todoDTO matches the server's todo wire form.
type todoDTO struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type listDTO struct {
	Todos []todoDTO `json:"todos"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}

type todoDataDTO struct {
	Todo *todoDTO `json:"todo"`
}

type updatedTodoDataDTO struct {
	UpdatedTodo *todoDTO `json:"updatedTodo"`
}

type titleRequestDTO struct {
	Title string `json:"title"`
}

type statusRequestDTO struct {
	Completed bool `json:"completed"`
}

// toDomainTodo converts the wire form. Timestamps are RFC 3339 with optional
// fractional seconds.
func toDomainTodo(dto *todoDTO) (todo.Todo, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, dto.CreatedAt)
	if err != nil {
		return todo.Todo{}, fmt.Errorf("parsing createdAt of todo %s: %w", dto.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, dto.UpdatedAt)
	if err != nil {
		return todo.Todo{}, fmt.Errorf("parsing updatedAt of todo %s: %w", dto.ID, err)
	}

	return todo.Todo{
		ID:        dto.ID,
		Title:     dto.Title,
		Completed: dto.Completed,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func toDomainPage(dto *listDTO) (*todo.Page, error) {
	items := make([]todo.Todo, len(dto.Todos))
	for i := range dto.Todos {
		t, err := toDomainTodo(&dto.Todos[i])
		if err != nil {
			return nil, err
		}
		items[i] = t
	}
	return &todo.Page{
		Todos: items,
		Total: dto.Total,
		Page:  dto.Page,
		Pages: dto.Pages,
	}, nil
}

// listQueryValues encodes a normalized query. An empty filter is omitted.
func listQueryValues(q todo.ListQuery) url.Values {
	v := url.Values{}
	if q.Filter != "" {
		v.Set("filter", q.Filter)
	}
	v.Set("status", q.Status.String())
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	return v
}
