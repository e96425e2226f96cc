package sqlite

import (
	"context"
	"database/sql"
)

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		name TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		company_description TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sequences (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		position TEXT NOT NULL,
		additional_info TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_sequences_user_id
		ON sequences(user_id);

	CREATE TABLE IF NOT EXISTS sequence_steps (
		id TEXT PRIMARY KEY,
		sequence_id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		step_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (sequence_id) REFERENCES sequences(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_sequence_steps_sequence_order
		ON sequence_steps(sequence_id, step_order);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		sequence_id TEXT,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_chat_messages_user_created
		ON chat_messages(user_id, created_at);

	CREATE TABLE IF NOT EXISTS session_states (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		active_sequence_id TEXT,
		last_action TEXT,
		last_action_time DATETIME,
		context_data TEXT NOT NULL DEFAULT '{}',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
`

func createSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
