package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// attemptRepo implements AttemptRepo on the quiz_attempts table.
type attemptRepo struct {
	db  *sql.DB
	sql *entsql.DialectBuilder
	seq *sequenceCounter
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, a QuizAttempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.FinishedAt.IsZero() {
		a.FinishedAt = time.Now()
	}

	query, args := r.sql.Insert("quiz_attempts").
		Columns("id", "sequence", "domain", "kind", "category", "total", "correct", "finished_at").
		Values(a.ID, seqNum, a.Domain, a.Kind, a.Category, a.Total, a.Correct, a.FinishedAt.UTC().UnixMilli()).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Attempts(ctx context.Context, domain string, opts QueryOpts) ([]QuizAttempt, error) {
	sel := r.sql.Select("id", "sequence", "domain", "kind", "category", "total", "correct", "finished_at").
		From(r.sql.Table("quiz_attempts")).
		Where(entsql.EQ("domain", domain)).
		OrderBy(entsql.Desc("sequence"))

	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("finished_at", opts.From.UTC().UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("finished_at", opts.To.UTC().UnixMilli()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}
	defer rows.Close()

	var out []QuizAttempt
	for rows.Next() {
		var (
			a          QuizAttempt
			finishedMs int64
		)
		if err := rows.Scan(&a.ID, &a.Sequence, &a.Domain, &a.Kind, &a.Category, &a.Total, &a.Correct, &finishedMs); err != nil {
			return nil, fmt.Errorf("scan quiz attempt: %w", err)
		}
		a.FinishedAt = time.UnixMilli(finishedMs).UTC()
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz attempts: %w", err)
	}
	return out, nil
}
