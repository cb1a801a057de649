package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventColumns = []string{
	"id", "sequence", "timestamp", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

// AppendLLMRequest records an LLM API call event.
func (r *Events) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	query, args := r.b.Insert(tableLLMRequestEvents).
		Columns(llmEventColumns[1:]...).
		Values(
			seqNum, nowMillis(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// QueryLLMEvents returns LLM request events, newest first.
func (r *Events) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	sel := r.b.Select(llmEventColumns...).From(r.b.Table(tableLLMRequestEvents))
	if opts.Purpose != "" {
		sel.Where(entsql.EQ("purpose", opts.Purpose))
	}
	query, args := applyQueryOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMRequestEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// GetLLMEvent returns the event with the given ID, or nil if it doesn't exist.
func (r *Events) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	query, args := r.b.Select(llmEventColumns...).
		From(r.b.Table(tableLLMRequestEvents)).
		Where(entsql.EQ("id", id)).
		Query()

	e, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

// LLMUsageByPurpose aggregates call counts and token totals per purpose.
func (r *Events) LLMUsageByPurpose(ctx context.Context) ([]UsageRow, error) {
	return r.llmUsage(ctx, "purpose")
}

// LLMUsageByModel aggregates call counts and token totals per model.
func (r *Events) LLMUsageByModel(ctx context.Context) ([]UsageRow, error) {
	return r.llmUsage(ctx, "model")
}

func (r *Events) llmUsage(ctx context.Context, groupBy string) ([]UsageRow, error) {
	query, args := r.b.Select(
		groupBy,
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
		entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
		entsql.As(entsql.Avg("latency_ms"), "avg_latency_ms"),
	).
		From(r.b.Table(tableLLMRequestEvents)).
		GroupBy(groupBy).
		OrderBy(entsql.Desc("calls")).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by %s: %w", groupBy, err)
	}
	defer rows.Close()

	var out []UsageRow
	for rows.Next() {
		var (
			key string
			row UsageRow
			avg float64
		)
		if err := rows.Scan(&key, &row.Calls, &row.InputTokens, &row.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		if groupBy == "purpose" {
			row.Purpose = key
		} else {
			row.Model = key
		}
		row.AvgLatencyMs = int(avg)
		out = append(out, row)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(s rowScanner) (*LLMRequestEvent, error) {
	var (
		e  LLMRequestEvent
		ts int64
	)
	err := s.Scan(
		&e.ID, &e.Sequence, &ts, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	e.Timestamp = fromMillis(ts)
	return &e, nil
}
