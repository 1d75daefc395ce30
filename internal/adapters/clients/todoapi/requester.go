package todoapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/httpclient"
)

// maxBodySize limits how much of a response body is read.
const maxBodySize = 1 << 20

// requester runs one call through httpclient.Client and unpacks the
// envelope. A failure envelope, whatever its status code, becomes an
// *APIError; a transport failure becomes an ErrUnavailable-wrapped error.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func do[T any](ctx context.Context, r *requester, method, path string, query url.Values, body any) (*T, error) {
	req, err := r.client.NewRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil && resp == nil {
		r.logger.WarnContext(ctx, "todo api unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnavailable, err)
	}

	env, decodeErr := decodeEnvelope[T](resp)
	if decodeErr != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, translateFailure(resp.StatusCode, "", nil)
		}
		return nil, fmt.Errorf("decoding %s %s response: %w", method, path, decodeErr)
	}

	if env.Status == statusFailure || resp.StatusCode >= http.StatusBadRequest {
		apiErr := translateFailure(resp.StatusCode, env.Message, env.Errors)
		r.logger.DebugContext(ctx, "todo api reported failure",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
		)
		return nil, apiErr
	}

	if env.Data == nil {
		return new(T), nil
	}
	return env.Data, nil
}

func decodeEnvelope[T any](resp *http.Response) (*envelopeDTO[T], error) {
	var env envelopeDTO[T]
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&env); err != nil {
		return nil, err
	}
	if env.Status == "" {
		return nil, errors.New("response is not a todo envelope")
	}
	return &env, nil
}

// closeBody closes an HTTP response body and logs on failure.
func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
