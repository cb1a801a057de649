package llm

import (
	"context"
	"time"
)

type timeoutProvider struct {
	Provider
	d time.Duration
}

// WithTimeout bounds each Generate call on p by d. Non-positive d returns p.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return timeoutProvider{Provider: p, d: d}
}

func (t timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.Provider.Generate(ctx, req)
}
