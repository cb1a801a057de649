package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only; empty matches all
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// SolveEventData captures one solve attempt that passed validation.
type SolveEventData struct {
	SolveID      string
	SubTopic     string
	Expression   string
	Lower        string
	Upper        string
	LatexResult  string
	StepCount    int
	PointCount   int
	Fallback     bool
	CacheHit     bool
	LatencyMs    int64
	ErrorMessage string
}

// SolveEvent is a stored solve attempt.
type SolveEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SolveEventData
}

// UsageRow aggregates LLM usage for one purpose or model.
type UsageRow struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// SolveRepo provides append access to solve events.
type SolveRepo interface {
	// AppendSolve records a solve attempt.
	AppendSolve(ctx context.Context, data SolveEventData) error
}

var (
	_ EventRepo = (*Events)(nil)
	_ SolveRepo = (*Events)(nil)
)
