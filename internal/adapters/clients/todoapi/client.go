// Package todoapi binds the remote /api/todos resource for callers outside
// the server process: the query cache and the todoctl CLI.
//
// Every call goes through httpclient.Client, so it is traced, rate limited
// and guarded by the circuit breaker. Failure envelopes come back as
// *APIError carrying the server's message verbatim.
package todoapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoAPI       = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

const todosPath = "/api/todos"

var errMissingPayload = errors.New("todo api: response carried no todo")

// Client implements ports.TodoAPI over HTTP.
type Client struct {
	http *httpclient.Client
	req  *requester
}

// NewClient creates a Client. The httpclient's base URL should be the server
// root (e.g. "http://localhost:8080").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	logger = logging.OrDiscard(logger)
	return &Client{
		http: client,
		req:  &requester{client: client, logger: logger},
	}
}

// ListTodos fetches one page from GET /api/todos. The query is normalized
// first, so a zero query asks for the unfiltered first page of five.
func (c *Client) ListTodos(ctx context.Context, q todo.ListQuery) (*todo.Page, error) {
	q = q.Normalize()

	data, err := do[listDTO](ctx, c.req, http.MethodGet, todosPath, listQueryValues(q), nil)
	if err != nil {
		return nil, err
	}
	return toDomainPage(data)
}

// GetTodo fetches GET /api/todos/{id}.
func (c *Client) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	data, err := do[todoDataDTO](ctx, c.req, http.MethodGet, todoPath(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return single(data.Todo)
}

// SaveTodo sends PUT /api/todos/{id} when in.ID is set, POST /api/todos
// otherwise. On success it returns the query for the unfiltered first page,
// where the caller should navigate next.
func (c *Client) SaveTodo(ctx context.Context, in ports.SaveTodoInput) (todo.ListQuery, error) {
	body := titleRequestDTO{Title: in.Title}

	var err error
	if in.ID == "" {
		_, err = do[todoDataDTO](ctx, c.req, http.MethodPost, todosPath, nil, body)
	} else {
		_, err = do[updatedTodoDataDTO](ctx, c.req, http.MethodPut, todoPath(in.ID), nil, body)
	}
	if err != nil {
		return todo.ListQuery{}, err
	}
	return todo.DefaultListQuery(), nil
}

// UpdateTodoStatus sends PATCH /api/todos/{id}.
func (c *Client) UpdateTodoStatus(ctx context.Context, id string, completed bool) (*todo.Todo, error) {
	data, err := do[updatedTodoDataDTO](ctx, c.req, http.MethodPatch, todoPath(id), nil, statusRequestDTO{Completed: completed})
	if err != nil {
		return nil, err
	}
	return single(data.UpdatedTodo)
}

// DeleteTodo sends DELETE /api/todos/{id}.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, c.req, http.MethodDelete, todoPath(id), nil, nil)
	return err
}

// Name returns the identifier used with a ports.HealthRegistry; it is the
// service name the httpclient was built with.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the circuit breaker state without a network call.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

func todoPath(id string) string {
	return todosPath + "/" + url.PathEscape(strings.TrimSpace(id))
}

func single(dto *todoDTO) (*todo.Todo, error) {
	if dto == nil {
		return nil, errMissingPayload
	}
	t, err := toDomainTodo(dto)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
