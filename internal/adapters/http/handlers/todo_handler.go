package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// TodoIDParam is the chi URL parameter carrying the todo id.
const TodoIDParam = "id"

// TodoHandler handles HTTP requests for the /api/todos resource.
type TodoHandler struct {
	svc            ports.TodoService
	strictNotFound bool
}

// TodoHandlerOption configures a TodoHandler.
type TodoHandlerOption func(*TodoHandler)

// WithStrictNotFound makes missing todos answer 404 instead of 200 with a
// failure envelope.
func WithStrictNotFound(strict bool) TodoHandlerOption {
	return func(h *TodoHandler) {
		h.strictNotFound = strict
	}
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService, opts ...TodoHandlerOption) *TodoHandler {
	h := &TodoHandler{svc: svc}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListTodos handles GET /api/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListTodos(r.Context(), parseListQuery(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	dto.WriteSuccess(w, r, dto.ToTodoListResponse(page))
}

// CreateTodo handles POST /api/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	created, err := h.svc.CreateTodo(r.Context(), req.Title)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	dto.WriteSuccess(w, r, dto.TodoPayload{Todo: dto.ToTodoResponse(created)})
}

// GetTodo handles GET /api/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTodo(r.Context(), chi.URLParam(r, TodoIDParam))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	dto.WriteSuccess(w, r, dto.TodoPayload{Todo: dto.ToTodoResponse(t)})
}

// UpdateTodoTitle handles PUT /api/todos/{id}.
func (h *TodoHandler) UpdateTodoTitle(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTodoTitleRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.svc.UpdateTodoTitle(r.Context(), chi.URLParam(r, TodoIDParam), req.Title)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	dto.WriteSuccess(w, r, dto.UpdatedTodoPayload{UpdatedTodo: dto.ToTodoResponse(updated)})
}

// UpdateTodoStatus handles PATCH /api/todos/{id}.
func (h *TodoHandler) UpdateTodoStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTodoStatusRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.svc.UpdateTodoStatus(r.Context(), chi.URLParam(r, TodoIDParam), *req.Completed)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	dto.WriteSuccess(w, r, dto.UpdatedTodoPayload{UpdatedTodo: dto.ToTodoResponse(updated)})
}

// DeleteTodo handles DELETE /api/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTodo(r.Context(), chi.URLParam(r, TodoIDParam)); err != nil {
		h.fail(w, r, err)
		return
	}

	dto.WriteSuccess(w, r, nil)
}

// fail writes the failure envelope. Errors the client cannot act on are
// logged since the response body hides them.
func (h *TodoHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrValidation) {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "todo request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	dto.WriteFailure(w, r, err, h.strictNotFound)
}
