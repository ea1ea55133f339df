package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// The gateway reports failures as one of four typed errors so callers can
// collapse them uniformly: empty response, malformed response, transport
// error, and rate limit. Timeouts surface as context.DeadlineExceeded from
// the underlying SDK call.

// ErrEmptyResponse indicates the model returned no usable content.
type ErrEmptyResponse struct {
	Detail string
}

func (e *ErrEmptyResponse) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("empty model response: %s", e.Detail)
	}
	return "empty model response"
}

// ErrMalformedResponse indicates the model returned content that does not
// parse or does not conform to the requested schema.
type ErrMalformedResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }

// ErrTransport indicates the provider is down, unreachable, or failed
// with a server-side error.
type ErrTransport struct {
	Err error
}

func (e *ErrTransport) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model transport error: %v", e.Err)
	}
	return "model transport error"
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens budget.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}
