package repository

import (
	"context"

	"outreach-agent/internal/user"
)

type Repository interface {
	// GetByID returns a zero User (ID == "") when not found.
	GetByID(ctx context.Context, id string) (user.User, error)
	// Create inserts the user, keeping the existing row on an id conflict.
	Create(ctx context.Context, opt CreateOptions) (user.User, error)
}
