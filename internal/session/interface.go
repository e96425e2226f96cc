package session

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	GetOrCreate(ctx context.Context, userID string) (SessionContext, error)
	Update(ctx context.Context, userID string, patch Patch) (SessionContext, error)
	GetSessionContext(ctx context.Context, userID string) (Snapshot, error)
	BuildContextAwarePrompt(ctx context.Context, basePrompt, userID string) (string, error)
	Clear(ctx context.Context, userID string) error
}
