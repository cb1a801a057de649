package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with capped exponential backoff.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig

	// sleep waits for d or until ctx is done.
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps p. MaxAttempts below one is treated as one.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg, sleep: sleepCtx}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.cfg.MaxAttempts, 1)
	retriedInvalid := false

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if serr := r.sleep(ctx, r.wait(attempt-1, err)); serr != nil {
				return nil, serr
			}
		}

		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !Retryable(err) {
			return nil, err
		}
		// A model that produced malformed JSON twice will likely keep
		// doing so.
		if KindOf(err) == KindInvalidOutput {
			if retriedInvalid {
				return nil, err
			}
			retriedInvalid = true
		}
	}
	return nil, err
}

// wait is the delay before retry n (zero-based). A server Retry-After
// takes precedence.
func (r *RetryProvider) wait(n int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	d := float64(r.cfg.InitialWait)
	for range n {
		d *= r.cfg.Multiplier
	}
	if limit := float64(r.cfg.MaxWait); limit > 0 && d > limit {
		d = limit
	}
	// ±20% jitter.
	d *= 0.8 + 0.4*rand.Float64()
	return time.Duration(d)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
