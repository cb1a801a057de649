package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Events is the event repository. It appends and queries LLM request events
// and solve events, ordering both through one global sequence.
type Events struct {
	db  *sql.DB
	b   *entsql.DialectBuilder
	seq *sequenceCounter
}

// sequenceCounter numbers events across both tables so that an LLM
// request and the solve that issued it can be ordered against each other.
// The row lives in global_sequence, created by migrate.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// Next returns the current value and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("advance global_sequence: %w", err)
	}
	return seq, nil
}

// applyQueryOpts adds the shared sequence/time filters and pagination.
// Results come back newest first.
func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) *entsql.Selector {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
