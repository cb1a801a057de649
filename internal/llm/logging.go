package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cybercalc/cybercalc/internal/store"
)

// LoggingProvider records each call to the event store and to zap. Store
// failures are logged and never fail the call.
type LoggingProvider struct {
	inner  Provider
	vendor string
	events store.EventRepo
	logger *zap.Logger

	now func() time.Time
}

// WithLogging wraps p. A nil repo disables persistence.
func WithLogging(p Provider, vendor string, events store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{
		inner:  p,
		vendor: vendor,
		events: events,
		logger: logger.Named("llm"),
		now:    time.Now,
	}
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	started := l.now()
	resp, err := l.inner.Generate(ctx, req)
	elapsed := l.now().Sub(started)

	ev := store.LLMRequestEventData{
		Provider:    l.vendor,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   elapsed.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	fields := []zap.Field{
		zap.String("purpose", ev.Purpose),
		zap.Duration("latency", elapsed),
	}

	if err != nil {
		ev.ErrorMessage = err.Error()
		var e *Error
		if errors.As(err, &e) && len(e.Content) > 0 {
			ev.ResponseBody = string(e.Content)
		}
		l.logger.Warn("request failed", append(fields,
			zap.String("model", ev.Model),
			zap.Stringer("kind", KindOf(err)),
			zap.Error(err),
		)...)
	} else {
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
		l.logger.Info("request completed", append(fields,
			zap.String("model", ev.Model),
			zap.Int("input_tokens", ev.InputTokens),
			zap.Int("output_tokens", ev.OutputTokens),
			zap.Stringer("finish", resp.Finish),
		)...)
	}

	if l.events != nil {
		if serr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), ev); serr != nil {
			l.logger.Warn("record request event", zap.Error(serr))
		}
	}
	return resp, err
}

// transcript renders req as labeled sections for the request log.
func transcript(req Request) string {
	var b strings.Builder
	section := func(label, body string) {
		if body == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("[" + label + "]\n")
		b.WriteString(body)
	}
	section("system", req.System)
	section("user", req.Prompt)
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			section("schema: "+req.Schema.Name, string(def))
		}
	}
	return b.String()
}
