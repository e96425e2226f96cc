package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"outreach-agent/internal/session"
	repo "outreach-agent/internal/session/repository"
)

const selectColumns = `id, user_id, active_sequence_id, last_action, last_action_time, context_data, created_at, updated_at`

// GetByUserID fetches the context of a user. Missing rows yield a zero value.
func (r *implRepository) GetByUserID(ctx context.Context, userID string) (session.SessionContext, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM session_states WHERE user_id = ? LIMIT 1`, userID)

	sc, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return session.SessionContext{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByUserID"), err)
		return session.SessionContext{}, repo.ErrFailedToGet
	}
	return sc, nil
}

// Create inserts an empty context. A concurrent insert for the same user is
// absorbed by the unique user_id and the existing row is returned.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (session.SessionContext, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_states (id, user_id, context_data, created_at, updated_at)
		VALUES (?, ?, '{}', ?, ?)
		ON CONFLICT(user_id) DO NOTHING`,
		uuid.NewString(), opt.UserID, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return session.SessionContext{}, repo.ErrFailedToInsert
	}

	sc, err := r.GetByUserID(ctx, opt.UserID)
	if err != nil {
		return session.SessionContext{}, err
	}
	if sc.ID == "" {
		return session.SessionContext{}, repo.ErrFailedToInsert
	}
	return sc, nil
}

// Update writes the full row state of a user's context.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (session.SessionContext, error) {
	data := opt.ContextData
	if data == nil {
		data = map[string]any{}
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal context_data: %v", r.dsn("Update"), err)
		return session.SessionContext{}, repo.ErrFailedToUpdate
	}

	var lastActionTime sql.NullTime
	if opt.LastActionTime != nil {
		lastActionTime = sql.NullTime{Time: opt.LastActionTime.UTC(), Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE session_states
		SET active_sequence_id = ?, last_action = ?, last_action_time = ?, context_data = ?, updated_at = ?
		WHERE user_id = ?`,
		nullString(opt.ActiveSequenceID), nullString(opt.LastAction), lastActionTime,
		string(encoded), time.Now().UTC(), opt.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return session.SessionContext{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return session.SessionContext{}, nil
	}
	return r.GetByUserID(ctx, opt.UserID)
}

// DeleteByUserID removes a user's context; deleting nothing is not an error.
func (r *implRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_states WHERE user_id = ?`, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteByUserID"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func scanSession(row *sql.Row) (session.SessionContext, error) {
	var (
		sc             session.SessionContext
		activeSeq      sql.NullString
		lastAction     sql.NullString
		lastActionTime sql.NullTime
		contextData    sql.NullString
	)
	err := row.Scan(&sc.ID, &sc.UserID, &activeSeq, &lastAction, &lastActionTime, &contextData, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return session.SessionContext{}, err
	}

	sc.ActiveSequenceID = activeSeq.String
	sc.LastAction = lastAction.String
	if lastActionTime.Valid {
		t := lastActionTime.Time
		sc.LastActionTime = &t
	}
	sc.ContextData = decodeContextData(contextData.String)
	return sc, nil
}

// decodeContextData treats an unreadable column as an empty map.
func decodeContextData(raw string) map[string]any {
	out := map[string]any{}
	if raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
