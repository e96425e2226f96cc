package sqlite

import (
	"context"
	"database/sql"
	"slices"
	"time"

	"github.com/google/uuid"

	"outreach-agent/internal/chat"
	repo "outreach-agent/internal/chat/repository"
)

const messageColumns = `id, user_id, sequence_id, role, content, created_at`

// Create stores one turn.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (chat.Message, error) {
	m := chat.Message{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		SequenceID: opt.SequenceID,
		Role:       opt.Role,
		Content:    opt.Content,
		CreatedAt:  time.Now().UTC(),
	}

	var sequenceID sql.NullString
	if m.SequenceID != "" {
		sequenceID = sql.NullString{String: m.SequenceID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_messages (`+messageColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, sequenceID, m.Role, m.Content, m.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return chat.Message{}, repo.ErrFailedToInsert
	}
	return m, nil
}

func (r *implRepository) ListRecent(ctx context.Context, userID string, limit int) ([]chat.Message, error) {
	msgs, err := r.list(ctx, `
		SELECT `+messageColumns+` FROM chat_messages
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecent"), err)
		return nil, repo.ErrFailedToList
	}
	slices.Reverse(msgs)
	return msgs, nil
}

func (r *implRepository) ListByUser(ctx context.Context, userID string, limit int) ([]chat.Message, error) {
	msgs, err := r.list(ctx, `
		SELECT `+messageColumns+` FROM chat_messages
		WHERE user_id = ?
		ORDER BY created_at ASC, rowid ASC
		LIMIT ?`, userID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListByUser"), err)
		return nil, repo.ErrFailedToList
	}
	return msgs, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) list(ctx context.Context, query string, args ...any) ([]chat.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]chat.Message, 0)
	for rows.Next() {
		var (
			m          chat.Message
			sequenceID sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.UserID, &sequenceID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.SequenceID = sequenceID.String
		out = append(out, m)
	}
	return out, rows.Err()
}
