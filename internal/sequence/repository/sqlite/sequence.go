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

// Create inserts the sequence and its steps in one transaction.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (sequence.Sequence, error) {
	id := opt.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Create"), err)
		return sequence.Sequence{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sequences (id, user_id, title, position, additional_info, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, opt.UserID, opt.Title, opt.Position, opt.AdditionalInfo, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return sequence.Sequence{}, repo.ErrFailedToInsert
	}
	if err := insertSteps(ctx, tx, id, opt.Steps, now); err != nil {
		r.l.Errorf(ctx, "%s steps: %v", r.dsn("Create"), err)
		return sequence.Sequence{}, repo.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Create"), err)
		return sequence.Sequence{}, repo.ErrFailedToInsert
	}

	return r.GetByID(ctx, id)
}

// GetByID returns the sequence with its ordered steps. Missing rows yield a zero value.
func (r *implRepository) GetByID(ctx context.Context, id string) (sequence.Sequence, error) {
	var s sequence.Sequence
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, position, additional_info, created_at, updated_at
		FROM sequences WHERE id = ? LIMIT 1`, id,
	).Scan(&s.ID, &s.UserID, &s.Title, &s.Position, &s.AdditionalInfo, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return sequence.Sequence{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByID"), err)
		return sequence.Sequence{}, repo.ErrFailedToGet
	}

	steps, err := r.ListSteps(ctx, id)
	if err != nil {
		return sequence.Sequence{}, err
	}
	s.Steps = steps
	return s, nil
}

// ListByUser returns the user's sequences, newest first.
func (r *implRepository) ListByUser(ctx context.Context, userID string) ([]sequence.Sequence, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, position, additional_info, created_at, updated_at
		FROM sequences WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListByUser"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := make([]sequence.Sequence, 0)
	for rows.Next() {
		var s sequence.Sequence
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Position, &s.AdditionalInfo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListByUser"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListByUser"), err)
		return nil, repo.ErrFailedToList
	}

	for i := range out {
		steps, err := r.ListSteps(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Steps = steps
	}
	return out, nil
}

// Delete removes the sequence. Steps are removed by the cascading foreign key.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sequences WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
