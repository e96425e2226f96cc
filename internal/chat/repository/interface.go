package repository

import (
	"context"

	"outreach-agent/internal/chat"
)

// Repository persists chat turns.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (chat.Message, error)
	// ListRecent returns the newest limit messages in chronological order.
	ListRecent(ctx context.Context, userID string, limit int) ([]chat.Message, error)
	// ListByUser returns the oldest limit messages in chronological order.
	ListByUser(ctx context.Context, userID string, limit int) ([]chat.Message, error)
	Delete(ctx context.Context, id string) error
}
