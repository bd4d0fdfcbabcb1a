package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/shillcollin/genbridge/core"
)

func TestMapBackendErrorStatusCodes(t *testing.T) {
	tests := []struct {
		status    int
		wantCode  core.ErrorCode
		retryable bool
	}{
		{status: 429, wantCode: core.ErrRateLimited, retryable: true},
		{status: 400, wantCode: core.ErrBadRequest},
		{status: 404, wantCode: core.ErrBadRequest},
		{status: 408, wantCode: core.ErrTimeout, retryable: true},
		{status: 504, wantCode: core.ErrTimeout, retryable: true},
		{status: 500, wantCode: core.ErrTransient, retryable: true},
		{status: 503, wantCode: core.ErrTransient, retryable: true},
	}
	for _, tt := range tests {
		err := mapBackendError(&httpError{StatusCode: tt.status, API: apiError{Message: "boom"}})
		var ai *core.AIError
		if !errors.As(err, &ai) {
			t.Fatalf("status %d: expected *core.AIError, got %T", tt.status, err)
		}
		if ai.Code != tt.wantCode {
			t.Errorf("status %d: code = %s, want %s", tt.status, ai.Code, tt.wantCode)
		}
		if ai.Retryable != tt.retryable {
			t.Errorf("status %d: retryable = %v, want %v", tt.status, ai.Retryable, tt.retryable)
		}
		if ai.Status != tt.status {
			t.Errorf("status %d: recorded status = %d", tt.status, ai.Status)
		}
	}
}

func TestMapBackendErrorRetryAfter(t *testing.T) {
	err := mapBackendError(&httpError{
		StatusCode: 429,
		API:        apiError{Code: 429, Message: "quota", Status: "RESOURCE_EXHAUSTED"},
		RetryAfter: 7,
	})
	if !core.IsRateLimited(err) {
		t.Fatalf("got %v, want rate_limited", err)
	}
	if got := core.GetRetryAfter(err); got != 7 {
		t.Fatalf("GetRetryAfter = %d, want 7", got)
	}

	// Other statuses carry no retry-after hint.
	if got := core.GetRetryAfter(mapBackendError(&httpError{StatusCode: 500})); got != 0 {
		t.Fatalf("GetRetryAfter for 500 = %d", got)
	}
}

func TestMapBackendErrorDetails(t *testing.T) {
	err := mapBackendError(&httpError{
		StatusCode: 400,
		API:        apiError{Code: 400, Message: "bad field", Status: "INVALID_ARGUMENT"},
	})
	var ai *core.AIError
	if !errors.As(err, &ai) {
		t.Fatalf("expected *core.AIError, got %T", err)
	}
	if ai.Details["api_status"] != "INVALID_ARGUMENT" {
		t.Fatalf("details = %+v", ai.Details)
	}
	if ai.Details["api_code"] != 400 {
		t.Fatalf("details = %+v", ai.Details)
	}

	// No envelope, no details.
	if errors.As(mapBackendError(&httpError{StatusCode: 500}), &ai) && ai.Details != nil {
		t.Fatalf("details without envelope = %+v", ai.Details)
	}
}

func TestMapBackendErrorContext(t *testing.T) {
	if err := mapBackendError(context.Canceled); !core.IsCanceled(err) {
		t.Fatalf("canceled mapped to %v", err)
	}
	if err := mapBackendError(context.DeadlineExceeded); !core.IsTimeout(err) {
		t.Fatalf("deadline mapped to %v", err)
	}
}

func TestMapBackendErrorPassesThroughAIError(t *testing.T) {
	orig := core.NewError(core.ErrMapping, "bad part")
	if got := mapBackendError(orig); got != orig {
		t.Fatalf("AIError was rewrapped: %v", got)
	}
}

func TestMapBackendErrorUnknown(t *testing.T) {
	err := mapBackendError(errors.New("socket exploded"))
	if !core.IsProviderError(err) {
		t.Fatalf("unknown error mapped to %v", err)
	}
}

func TestCancellationError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := cancellationError(ctx); !core.IsCanceled(err) {
		t.Fatalf("got %v", err)
	}

	deadlineCtx, cancelDeadline := context.WithTimeout(context.Background(), 0)
	defer cancelDeadline()
	<-deadlineCtx.Done()
	if err := cancellationError(deadlineCtx); !core.IsTimeout(err) {
		t.Fatalf("got %v", err)
	}
}
