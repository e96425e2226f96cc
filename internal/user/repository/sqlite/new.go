package sqlite

import (
	"database/sql"
	"fmt"

	"outreach-agent/internal/user/repository"
	"outreach-agent/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed user Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/sqlite.%s", method)
}
