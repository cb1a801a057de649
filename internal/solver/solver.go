package solver

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/llm"
	"github.com/cybercalc/cybercalc/internal/store"
	"github.com/cybercalc/cybercalc/internal/validate"
)

// Purpose tags every LLM request issued by the Solver.
const Purpose = "solve"

// Solver validates an expression, asks the LLM for a worked solution and
// returns it as a Response.
type Solver struct {
	provider llm.Provider
	config   Config
	repo     store.SolveRepo
	logger   *zap.Logger

	cache *cache.Cache
	group singleflight.Group
}

// New creates a Solver. repo and logger may be nil.
func New(provider llm.Provider, cfg Config, repo store.SolveRepo, logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Solver{
		provider: provider,
		config:   cfg,
		repo:     repo,
		logger:   logger.Named("solver"),
	}
	if cfg.CacheTTL > 0 {
		s.cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return s
}

type outcome struct {
	resp    Response
	failure error
}

// Solve runs one solve. Validation failures are returned as a
// *validate.Error and never reach the provider. Provider and decode
// failures are absorbed: the result is Fallback with a nil error.
func (s *Solver) Solve(ctx context.Context, in Input) (Response, error) {
	if strings.TrimSpace(in.Expression) == "" {
		return Response{}, validate.EmptySubmission()
	}
	if verr := validate.Validate(in.Expression, in.SubTopic); verr != nil {
		return Response{}, verr
	}
	if in.SubTopic.Topic() != catalog.TopicIntegral {
		in.Bounds = nil
	}

	key := cacheKey(in)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			resp := v.(Response).clone()
			s.record(ctx, in, resp, 0, true, nil)
			return resp, nil
		}
	}

	v, _, _ := s.group.Do(key, func() (any, error) {
		return s.solve(ctx, in, key), nil
	})
	return v.(outcome).resp.clone(), nil
}

func (s *Solver) solve(ctx context.Context, in Input, key string) outcome {
	start := time.Now()
	req := BuildRequest(in, s.config)

	var out outcome
	llmResp, err := s.provider.Generate(llm.WithPurpose(ctx, Purpose), req)
	if err != nil {
		out = outcome{resp: Fallback(), failure: err}
	} else if parsed, perr := ParseStrict(llmResp.Content); perr != nil {
		out = outcome{resp: Fallback(), failure: perr}
	} else {
		out = outcome{resp: parsed}
	}
	latency := time.Since(start)

	if out.failure != nil {
		s.logger.Warn("solve failed",
			zap.String("sub_topic", in.SubTopic.Code()),
			zap.String("expression", in.Expression),
			zap.Duration("latency", latency),
			zap.Error(out.failure),
		)
	} else {
		s.logger.Info("solve completed",
			zap.String("sub_topic", in.SubTopic.Code()),
			zap.Int("steps", len(out.resp.Steps)),
			zap.Int("points", len(out.resp.GraphPoints)),
			zap.Duration("latency", latency),
		)
		if s.cache != nil {
			s.cache.Set(key, out.resp, cache.DefaultExpiration)
		}
	}

	s.record(ctx, in, out.resp, latency, false, out.failure)
	return out
}

// record appends a solve event. Store errors are logged, not returned.
func (s *Solver) record(ctx context.Context, in Input, resp Response, latency time.Duration, cacheHit bool, failure error) {
	if s.repo == nil {
		return
	}

	data := store.SolveEventData{
		SolveID:     uuid.NewString(),
		SubTopic:    in.SubTopic.Code(),
		Expression:  in.Expression,
		LatexResult: resp.LatexResult,
		StepCount:   len(resp.Steps),
		PointCount:  len(resp.GraphPoints),
		Fallback:    failure != nil,
		CacheHit:    cacheHit,
		LatencyMs:   latency.Milliseconds(),
	}
	if in.Bounds != nil {
		data.Lower = in.Bounds.Lower
		data.Upper = in.Bounds.Upper
	}
	if failure != nil {
		data.ErrorMessage = failure.Error()
	}

	if err := s.repo.AppendSolve(context.WithoutCancel(ctx), data); err != nil {
		s.logger.Error("record solve event", zap.Error(err))
	}
}

// Purge drops every cached solution.
func (s *Solver) Purge() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

func cacheKey(in Input) string {
	var b strings.Builder
	b.WriteString(in.SubTopic.Code())
	b.WriteByte(0)
	b.WriteString(strings.TrimSpace(in.Expression))
	if in.Bounds != nil {
		b.WriteByte(0)
		b.WriteString(in.Bounds.Lower)
		b.WriteByte(0)
		b.WriteString(in.Bounds.Upper)
	}
	return b.String()
}
