// Package dto provides the JSON envelope, request and response shapes for the
// /api/todos resource.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoResponse is the wire form of a todo. The id key is "_id" for
// compatibility with existing browser clients.
type TodoResponse struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// TodoListResponse is the data payload of GET /api/todos.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

// TodoPayload is the data payload of POST /api/todos and GET /api/todos/{id}.
type TodoPayload struct {
	Todo TodoResponse `json:"todo"`
}

// UpdatedTodoPayload is the data payload of PUT and PATCH /api/todos/{id}.
type UpdatedTodoPayload struct {
	UpdatedTodo TodoResponse `json:"updatedTodo"`
}

// ToTodoResponse converts a domain Todo to its wire form.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ToTodoListResponse converts a page of todos. The todos key is always an
// array, never null.
func ToTodoListResponse(p *todo.Page) TodoListResponse {
	items := make([]TodoResponse, len(p.Todos))
	for i := range p.Todos {
		items[i] = ToTodoResponse(&p.Todos[i])
	}
	return TodoListResponse{
		Todos: items,
		Total: p.Total,
		Page:  p.Page,
		Pages: p.Pages,
	}
}
