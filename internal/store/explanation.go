package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// explanationRepo implements ExplanationRepo.
type explanationRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

type explanationRow struct {
	ID          string `db:"id"`
	Sequence    int64  `db:"sequence"`
	Word        string `db:"word"`
	Context     string `db:"context"`
	Model       string `db:"model"`
	Text        string `db:"text"`
	CreatedAtMs int64  `db:"created_at_ms"`
}

func (r *explanationRepo) GetExplanation(ctx context.Context, word, topic, model string) (*Explanation, error) {
	var row explanationRow
	err := r.db.GetContext(ctx, &row, `SELECT id, sequence, word, context, model, text, created_at_ms
		FROM explanations WHERE word = ? AND context = ? AND model = ?`, word, topic, model)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get explanation: %w", err)
	}
	return &Explanation{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Word:      row.Word,
		Context:   row.Context,
		Model:     row.Model,
		Text:      row.Text,
		CreatedAt: time.UnixMilli(row.CreatedAtMs).UTC(),
	}, nil
}

func (r *explanationRepo) PutExplanation(ctx context.Context, e Explanation) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO explanations
		(id, sequence, word, context, model, text, created_at_ms)
		VALUES (:id, :sequence, :word, :context, :model, :text, :created_at_ms)
		ON CONFLICT (word, context, model) DO UPDATE SET
			sequence = excluded.sequence,
			text = excluded.text,
			created_at_ms = excluded.created_at_ms`,
		explanationRow{
			ID:          e.ID,
			Sequence:    seqNum,
			Word:        e.Word,
			Context:     e.Context,
			Model:       e.Model,
			Text:        e.Text,
			CreatedAtMs: e.CreatedAt.UnixMilli(),
		})
	if err != nil {
		return fmt.Errorf("save explanation: %w", err)
	}
	return nil
}

func (r *explanationRepo) ClearExplanations(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM explanations`)
	if err != nil {
		return 0, fmt.Errorf("clear explanations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
