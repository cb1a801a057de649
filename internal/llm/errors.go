package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies a provider failure.
type ErrorKind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable ErrorKind = iota + 1

	// KindRateLimited is a 429.
	KindRateLimited

	// KindRejected is any other 4xx: bad key, unknown model, bad request.
	KindRejected

	// KindInvalidOutput means the content is not JSON matching the schema.
	KindInvalidOutput

	// KindTruncated means generation hit MaxTokens.
	KindTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate_limited"
	case KindRejected:
		return "rejected"
	case KindInvalidOutput:
		return "invalid_output"
	case KindTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Error is a classified provider failure.
type Error struct {
	Kind     ErrorKind
	Provider string

	// RetryAfter is the server's requested wait, zero when not given.
	RetryAfter time.Duration

	// Content is the offending output for KindInvalidOutput and
	// KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	prefix := "llm"
	if e.Provider != "" {
		prefix = e.Provider
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", prefix, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", prefix, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the classification of err, or zero when err is not an
// *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Retryable reports whether err is worth another attempt. Cancellation,
// rejected requests and truncation are final; unclassified errors are
// treated as transient.
func Retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch KindOf(err) {
	case KindRejected, KindTruncated:
		return false
	default:
		return true
	}
}

// classifyStatus maps an HTTP status from a vendor SDK error. A zero status
// means the request never got a response.
func classifyStatus(provider string, status int, err error) *Error {
	kind := KindUnavailable
	switch {
	case status == http.StatusTooManyRequests:
		kind = KindRateLimited
	case status >= 400 && status < 500:
		kind = KindRejected
	}
	return &Error{Kind: kind, Provider: provider, Err: err}
}
