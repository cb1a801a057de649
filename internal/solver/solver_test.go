package solver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/llm"
	"github.com/cybercalc/cybercalc/internal/store"
	"github.com/cybercalc/cybercalc/internal/validate"
)

type fakeSolveRepo struct {
	mu     sync.Mutex
	events []store.SolveEventData
	err    error
}

func (f *fakeSolveRepo) AppendSolve(_ context.Context, data store.SolveEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return f.err
}

const validSolution = `{
	"latexResult": "2x",
	"steps": [{"explanation": "Aturan pangkat", "result": "2x"}],
	"explanation": "Turunan fungsi pangkat.",
	"graphPoints": [{"x": 0, "y": 0}, {"x": 1, "y": 2}]
}`

func newTestSolver(t *testing.T, cfg Config, responses ...llm.MockResponse) (*Solver, *llm.MockProvider, *fakeSolveRepo) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	repo := &fakeSolveRepo{}
	return New(mock, cfg, repo, nil), mock, repo
}

func TestSolve_Success(t *testing.T) {
	s, mock, repo := newTestSolver(t, DefaultConfig(), llm.MockResponse{Content: json.RawMessage(validSolution)})

	resp, err := s.Solve(context.Background(), Input{Expression: "x^2", SubTopic: catalog.DerAlgebra})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.LatexResult != "2x" || len(resp.Steps) != 1 || len(resp.GraphPoints) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 solve event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.SubTopic != "DER_ALGEBRA" || e.Fallback || e.CacheHit || e.StepCount != 1 || e.PointCount != 2 {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.SolveID == "" {
		t.Error("expected a solve id")
	}
}

func TestSolve_EmptyInput(t *testing.T) {
	for _, expr := range []string{"", "   ", "\t\n"} {
		s, mock, repo := newTestSolver(t, DefaultConfig())
		_, err := s.Solve(context.Background(), Input{Expression: expr, SubTopic: catalog.IntArea})
		if !validate.IsKind(err, validate.EmptyInput) {
			t.Errorf("%q: expected EmptyInput, got %v", expr, err)
		}
		if mock.CallCount() != 0 || len(repo.events) != 0 {
			t.Errorf("%q: provider or store reached", expr)
		}
	}
}

func TestSolve_ValidationError(t *testing.T) {
	tests := []struct {
		expr string
		sub  catalog.SubTopic
		kind validate.Kind
	}{
		{"x^2+1", catalog.LimAlgebra, validate.MissingLimitNotation},
		{`\int x dx`, catalog.DerAlgebra, validate.WrongOperatorIntegral},
		{"d/dx x^2", catalog.SysAlgebra, validate.WrongOperatorDerivative},
	}

	for _, tt := range tests {
		s, mock, _ := newTestSolver(t, DefaultConfig())
		_, err := s.Solve(context.Background(), Input{Expression: tt.expr, SubTopic: tt.sub})
		if !validate.IsKind(err, tt.kind) {
			t.Errorf("%q: expected %v, got %v", tt.expr, tt.kind, err)
		}
		if mock.CallCount() != 0 {
			t.Errorf("%q: provider reached despite validation error", tt.expr)
		}
	}
}

func TestSolve_ProviderFailureFallsBack(t *testing.T) {
	s, _, repo := newTestSolver(t, DefaultConfig(), llm.MockResponse{Err: &llm.Error{Kind: llm.KindUnavailable, Err: errors.New("503")}})

	resp, err := s.Solve(context.Background(), Input{Expression: "lim x->0 sin(x)/x", SubTopic: catalog.LimTrig})
	if err != nil {
		t.Fatalf("external failure must not surface as error: %v", err)
	}
	if !IsFallback(resp) {
		t.Fatalf("expected fallback, got %+v", resp)
	}
	if resp.LatexResult != `\text{Error}` || len(resp.GraphPoints) != 0 {
		t.Fatalf("unexpected fallback shape: %+v", resp)
	}
	if len(repo.events) != 1 || !repo.events[0].Fallback || repo.events[0].ErrorMessage == "" {
		t.Fatalf("expected failed solve event, got %+v", repo.events)
	}
}

func TestSolve_MalformedResponseFallsBack(t *testing.T) {
	s, _, _ := newTestSolver(t, DefaultConfig(), llm.MockResponse{Content: json.RawMessage(`{"latexResult":"1"}`)})

	resp, err := s.Solve(context.Background(), Input{Expression: "x^2", SubTopic: catalog.DerAlgebra})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsFallback(resp) {
		t.Fatalf("expected fallback, got %+v", resp)
	}
}

func TestSolve_CacheHit(t *testing.T) {
	s, mock, repo := newTestSolver(t, DefaultConfig(), llm.MockResponse{Content: json.RawMessage(validSolution)})
	in := Input{Expression: "x^2", SubTopic: catalog.DerAlgebra}

	first, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("first solve: %v", err)
	}
	second, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("second solve: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected cached second solve, got %d calls", mock.CallCount())
	}
	if first.LatexResult != second.LatexResult {
		t.Fatalf("cached response differs: %q vs %q", first.LatexResult, second.LatexResult)
	}
	if len(repo.events) != 2 || !repo.events[1].CacheHit {
		t.Fatalf("expected a cache-hit event, got %+v", repo.events)
	}

	s.Purge()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(validSolution)})
	if _, err := s.Solve(context.Background(), in); err != nil {
		t.Fatalf("solve after purge: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected provider call after purge, got %d", mock.CallCount())
	}
}

func TestSolve_CachedResponseIsolated(t *testing.T) {
	s, _, _ := newTestSolver(t, DefaultConfig(), llm.MockResponse{Content: json.RawMessage(validSolution)})
	in := Input{Expression: "x^2", SubTopic: catalog.DerAlgebra}

	first, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("first solve: %v", err)
	}
	first.Steps[0].Result = "changed"
	first.GraphPoints[1].Y = 99

	second, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("second solve: %v", err)
	}
	if second.Steps[0].Result != "2x" || second.GraphPoints[1].Y != 2 {
		t.Fatalf("cache entry mutated through caller: %+v", second)
	}
	second.Steps[0].Explanation = "changed"

	third, err := s.Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("third solve: %v", err)
	}
	if third.Steps[0].Explanation != "Aturan pangkat" {
		t.Fatalf("cache entry mutated through cache hit: %+v", third)
	}
}

func TestSolve_FallbackNotCached(t *testing.T) {
	s, mock, _ := newTestSolver(t, DefaultConfig(),
		llm.MockResponse{Err: &llm.Error{Kind: llm.KindRateLimited}},
		llm.MockResponse{Content: json.RawMessage(validSolution)},
	)
	in := Input{Expression: "x^2", SubTopic: catalog.DerAlgebra}

	first, _ := s.Solve(context.Background(), in)
	if !IsFallback(first) {
		t.Fatal("expected first solve to fall back")
	}
	second, _ := s.Solve(context.Background(), in)
	if IsFallback(second) {
		t.Fatal("fallback was cached")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestSolve_CacheDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheTTL = 0
	s, mock, _ := newTestSolver(t, cfg,
		llm.MockResponse{Content: json.RawMessage(validSolution)},
		llm.MockResponse{Content: json.RawMessage(validSolution)},
	)
	in := Input{Expression: "x^2", SubTopic: catalog.DerAlgebra}
	s.Solve(context.Background(), in)
	s.Solve(context.Background(), in)
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls with cache disabled, got %d", mock.CallCount())
	}
}

func TestSolve_BoundsOnlyForIntegral(t *testing.T) {
	s, mock, repo := newTestSolver(t, DefaultConfig(),
		llm.MockResponse{Content: json.RawMessage(validSolution)},
		llm.MockResponse{Content: json.RawMessage(validSolution)},
	)
	b := &Bounds{Lower: "0", Upper: "1"}

	s.Solve(context.Background(), Input{Expression: "x^2", SubTopic: catalog.DerAlgebra, Bounds: b})
	s.Solve(context.Background(), Input{Expression: "x^2", SubTopic: catalog.IntArea, Bounds: b})

	calls := mock.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if strings.Contains(calls[0].Prompt, "batas bawah") {
		t.Error("bounds leaked into derivative prompt")
	}
	if !strings.Contains(calls[1].Prompt, "Integral dari x^2 dengan batas bawah 0 dan batas atas 1") {
		t.Errorf("integral prompt missing bounds:\n%s", calls[1].Prompt)
	}
	if repo.events[0].Lower != "" || repo.events[1].Lower != "0" || repo.events[1].Upper != "1" {
		t.Errorf("unexpected bounds in events: %+v", repo.events)
	}
}

type purposeProvider struct {
	mu       sync.Mutex
	purposes []string
}

func (p *purposeProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	p.mu.Unlock()
	return &llm.Response{Content: json.RawMessage(validSolution)}, nil
}

func (p *purposeProvider) ModelID() string { return "purpose" }

func TestSolve_TagsPurpose(t *testing.T) {
	p := &purposeProvider{}
	s := New(p, DefaultConfig(), nil, nil)
	if _, err := s.Solve(context.Background(), Input{Expression: "x^2", SubTopic: catalog.DerAlgebra}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.purposes) != 1 || p.purposes[0] != Purpose {
		t.Fatalf("purposes = %v, want [%s]", p.purposes, Purpose)
	}
}

type slowProvider struct {
	mu    sync.Mutex
	calls int
	delay time.Duration
}

func (p *slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &llm.Response{Content: json.RawMessage(validSolution)}, nil
}

func (p *slowProvider) ModelID() string { return "slow" }

func TestSolve_CollapsesConcurrentDuplicates(t *testing.T) {
	p := &slowProvider{delay: 100 * time.Millisecond}
	cfg := DefaultConfig()
	cfg.CacheTTL = 0
	s := New(p, cfg, nil, nil)
	in := Input{Expression: "x^2", SubTopic: catalog.DerAlgebra}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := s.Solve(context.Background(), in)
			if err != nil || resp.LatexResult != "2x" {
				t.Errorf("unexpected result: %+v, %v", resp, err)
			}
		}()
	}
	wg.Wait()

	if p.calls != 1 {
		t.Fatalf("expected concurrent duplicates to share one call, got %d", p.calls)
	}
}

func TestSolve_CanceledContextFallsBack(t *testing.T) {
	p := &slowProvider{delay: time.Second}
	s := New(p, DefaultConfig(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := s.Solve(ctx, Input{Expression: "x^2", SubTopic: catalog.DerAlgebra})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsFallback(resp) {
		t.Fatalf("expected fallback for canceled solve, got %+v", resp)
	}
}

func TestSolve_StoreErrorIgnored(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validSolution)})
	repo := &fakeSolveRepo{err: errors.New("disk full")}
	s := New(mock, DefaultConfig(), repo, nil)

	resp, err := s.Solve(context.Background(), Input{Expression: "x^2", SubTopic: catalog.DerAlgebra})
	if err != nil || IsFallback(resp) {
		t.Fatalf("store failure leaked into solve: %+v, %v", resp, err)
	}
}
