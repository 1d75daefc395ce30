package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// List query parameter names.
const (
	paramFilter   = "filter"
	paramStatus   = "status"
	paramPage     = "page"
	paramPageSize = "pageSize"
)

// parseListQuery reads the list parameters from the URL. Missing or
// unparseable values are left zero and defaulted by the service, so a bad
// page number never fails the request.
func parseListQuery(values url.Values) todo.ListQuery {
	return todo.ListQuery{
		Filter:   values.Get(paramFilter),
		Status:   todo.Status(values.Get(paramStatus)),
		Page:     atoiOrZero(values.Get(paramPage)),
		PageSize: atoiOrZero(values.Get(paramPageSize)),
	}
}

func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return dto.MalformedBody()
	}
	return nil
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) error {
	if err := decodeJSONBody(w, r, dst); err != nil {
		return err
	}
	return dst.Validate()
}
