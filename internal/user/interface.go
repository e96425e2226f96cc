package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// EnsureUser returns the user, creating a placeholder account when missing.
	EnsureUser(ctx context.Context, id string) (User, error)
	Detail(ctx context.Context, id string) (User, error)
}
