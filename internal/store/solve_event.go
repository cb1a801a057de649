package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var solveEventColumns = []string{
	"id", "sequence", "timestamp", "solve_id", "sub_topic", "expression",
	"lower_bound", "upper_bound", "latex_result", "step_count", "point_count",
	"fallback", "cache_hit", "latency_ms", "error_message",
}

// AppendSolve records a solve attempt.
func (r *Events) AppendSolve(ctx context.Context, data SolveEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	query, args := r.b.Insert(tableSolveEvents).
		Columns(solveEventColumns[1:]...).
		Values(
			seqNum, nowMillis(), data.SolveID, data.SubTopic, data.Expression,
			data.Lower, data.Upper, data.LatexResult, data.StepCount, data.PointCount,
			data.Fallback, data.CacheHit, data.LatencyMs, data.ErrorMessage,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save solve event: %w", err)
	}
	return nil
}

// QuerySolveEvents returns solve events, newest first. subTopic filters by
// sub-topic code when non-empty.
func (r *Events) QuerySolveEvents(ctx context.Context, subTopic string, opts QueryOpts) ([]SolveEvent, error) {
	sel := r.b.Select(solveEventColumns...).From(r.b.Table(tableSolveEvents))
	if subTopic != "" {
		sel.Where(entsql.EQ("sub_topic", subTopic))
	}
	query, args := applyQueryOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query solve events: %w", err)
	}
	defer rows.Close()

	var events []SolveEvent
	for rows.Next() {
		var (
			e  SolveEvent
			ts int64
		)
		err := rows.Scan(
			&e.ID, &e.Sequence, &ts, &e.SolveID, &e.SubTopic, &e.Expression,
			&e.Lower, &e.Upper, &e.LatexResult, &e.StepCount, &e.PointCount,
			&e.Fallback, &e.CacheHit, &e.LatencyMs, &e.ErrorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("scan solve event: %w", err)
		}
		e.Timestamp = fromMillis(ts)
		events = append(events, e)
	}
	return events, rows.Err()
}
