package sqlite

import (
	"database/sql"
	"fmt"

	"outreach-agent/internal/session/repository"
	"outreach-agent/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed session Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("session/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/sqlite.%s", method)
}
