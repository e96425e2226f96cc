package repository

import (
	"context"

	"outreach-agent/internal/session"
)

// Repository persists one SessionContext row per user.
type Repository interface {
	// GetByUserID returns a zero SessionContext (ID == "") when none exists.
	GetByUserID(ctx context.Context, userID string) (session.SessionContext, error)
	// Create inserts an empty context, or returns the existing one for the user.
	Create(ctx context.Context, opt CreateOptions) (session.SessionContext, error)
	Update(ctx context.Context, opt UpdateOptions) (session.SessionContext, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
