package sqlite

import (
	"database/sql"
	"fmt"

	"outreach-agent/internal/sequence/repository"
	"outreach-agent/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed sequence Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("sequence/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("sequence/repository/sqlite.%s", method)
}
