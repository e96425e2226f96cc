package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"outreach-agent/internal/sequence"
	repo "outreach-agent/internal/sequence/repository"
)

const stepColumns = `id, sequence_id, title, content, step_order, created_at, updated_at`

// ListSteps returns the steps of a sequence ordered by position.
func (r *implRepository) ListSteps(ctx context.Context, sequenceID string) ([]sequence.Step, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stepColumns+` FROM sequence_steps WHERE sequence_id = ? ORDER BY step_order ASC`, sequenceID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSteps"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	steps := make([]sequence.Step, 0)
	for rows.Next() {
		var st sequence.Step
		if err := rows.Scan(&st.ID, &st.SequenceID, &st.Title, &st.Content, &st.Order, &st.CreatedAt, &st.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSteps"), err)
			return nil, repo.ErrFailedToList
		}
		steps = append(steps, st)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSteps"), err)
		return nil, repo.ErrFailedToList
	}
	return steps, nil
}

// GetStep fetches one step. Missing rows yield a zero value.
func (r *implRepository) GetStep(ctx context.Context, id string) (sequence.Step, error) {
	var st sequence.Step
	err := r.db.QueryRowContext(ctx,
		`SELECT `+stepColumns+` FROM sequence_steps WHERE id = ? LIMIT 1`, id,
	).Scan(&st.ID, &st.SequenceID, &st.Title, &st.Content, &st.Order, &st.CreatedAt, &st.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return sequence.Step{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStep"), err)
		return sequence.Step{}, repo.ErrFailedToGet
	}
	return st, nil
}

// ReplaceSteps swaps the whole step list of a sequence atomically.
func (r *implRepository) ReplaceSteps(ctx context.Context, opt repo.ReplaceStepsOptions) error {
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReplaceSteps"), err)
		return repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sequence_steps WHERE sequence_id = ?`, opt.SequenceID); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceSteps"), err)
		return repo.ErrFailedToUpdate
	}
	if err := insertSteps(ctx, tx, opt.SequenceID, opt.Steps, now); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("ReplaceSteps"), err)
		return repo.ErrFailedToUpdate
	}
	if _, err := tx.ExecContext(ctx, `UPDATE sequences SET updated_at = ? WHERE id = ?`, now, opt.SequenceID); err != nil {
		r.l.Errorf(ctx, "%s touch: %v", r.dsn("ReplaceSteps"), err)
		return repo.ErrFailedToUpdate
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReplaceSteps"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpdateStepContent rewrites the body of one step. A missing step yields a zero value.
func (r *implRepository) UpdateStepContent(ctx context.Context, opt repo.UpdateStepContentOptions) (sequence.Step, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE sequence_steps SET content = ?, updated_at = ? WHERE id = ?`, opt.Content, now, opt.StepID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStepContent"), err)
		return sequence.Step{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sequence.Step{}, nil
	}

	st, err := r.GetStep(ctx, opt.StepID)
	if err != nil {
		return sequence.Step{}, err
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE sequences SET updated_at = ? WHERE id = ?`, now, st.SequenceID); err != nil {
		r.l.Warnf(ctx, "%s touch sequence: %v", r.dsn("UpdateStepContent"), err)
	}
	return st, nil
}

func insertSteps(ctx context.Context, tx *sql.Tx, sequenceID string, drafts []sequence.StepDraft, now time.Time) error {
	for i, d := range drafts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sequence_steps (`+stepColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), sequenceID, d.Title, d.Content, i, now, now,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
