package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"outreach-agent/internal/user"
	repo "outreach-agent/internal/user/repository"
)

// GetByID fetches a user. Missing rows yield a zero value.
func (r *implRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	const query = `
		SELECT id, email, name, company, company_description, created_at, updated_at
		FROM users WHERE id = ? LIMIT 1`

	var u user.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.Company, &u.CompanyDescription, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByID"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// Create inserts a user. Two concurrent first requests for one id end with a single row.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (user.User, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, company, company_description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		opt.ID, opt.Email, opt.Name, opt.Company, opt.CompanyDescription, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return r.GetByID(ctx, opt.ID)
}
