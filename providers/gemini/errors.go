package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shillcollin/genbridge/core"
)

// httpError carries the status and decoded error envelope of a failed call.
// RetryAfter is the parsed Retry-After header in seconds, zero when absent.
type httpError struct {
	StatusCode int
	API        apiError
	Body       string
	RetryAfter int64
}

func (e *httpError) Error() string {
	if e.API.Message != "" {
		return fmt.Sprintf("gemini: %d %s: %s", e.StatusCode, e.API.Status, e.API.Message)
	}
	return fmt.Sprintf("gemini: status %d: %s", e.StatusCode, e.Body)
}

// mapBackendError classifies failures from the backend invocation or stream
// iteration into the uniform taxonomy. Errors already carrying a code pass
// through unchanged; message content is preserved, only the shape is
// normalized. No retrying happens at this layer.
func mapBackendError(err error) error {
	if err == nil {
		return nil
	}
	var ai *core.AIError
	if errors.As(err, &ai) {
		return ai
	}
	if errors.Is(err, context.Canceled) {
		return core.NewError(core.ErrCanceled, "request canceled", core.WithWrapped(err))
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return core.NewError(core.ErrTimeout, "request deadline exceeded", core.WithWrapped(err))
	}

	var httpErr *httpError
	if errors.As(err, &httpErr) {
		opts := []core.ErrorOption{core.WithStatus(httpErr.StatusCode), core.WithWrapped(err)}
		if httpErr.API.Status != "" || httpErr.API.Code != 0 {
			opts = append(opts, core.WithDetails(map[string]any{
				"api_status": httpErr.API.Status,
				"api_code":   httpErr.API.Code,
			}))
		}
		switch {
		case httpErr.StatusCode == http.StatusTooManyRequests:
			opts = append(opts, core.WithRetryable(true))
			if httpErr.RetryAfter > 0 {
				opts = append(opts, core.WithRetryAfter(httpErr.RetryAfter))
			}
			return core.NewError(core.ErrRateLimited, httpErr.Error(), opts...)
		case httpErr.StatusCode == http.StatusRequestTimeout || httpErr.StatusCode == http.StatusGatewayTimeout:
			opts = append(opts, core.WithRetryable(true))
			return core.NewError(core.ErrTimeout, httpErr.Error(), opts...)
		case httpErr.StatusCode >= 500:
			opts = append(opts, core.WithRetryable(true))
			return core.NewError(core.ErrTransient, httpErr.Error(), opts...)
		case httpErr.StatusCode >= 400:
			return core.NewError(core.ErrBadRequest, httpErr.Error(), opts...)
		default:
			return core.NewError(core.ErrProviderError, httpErr.Error(), opts...)
		}
	}

	return core.WrapError(err, core.ErrProviderError)
}

// cancellationError converts a context failure observed at a checkpoint into
// the uniform cancellation taxonomy.
func cancellationError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return core.NewError(core.ErrTimeout, "request deadline exceeded", core.WithWrapped(ctx.Err()))
	}
	return core.NewError(core.ErrCanceled, "request canceled", core.WithWrapped(ctx.Err()))
}
