package usecase

import (
	"context"
	"fmt"
	"strings"

	"outreach-agent/internal/user"
	repo "outreach-agent/internal/user/repository"
)

// EnsureUser returns the user, creating a placeholder account on first contact.
func (uc *implUseCase) EnsureUser(ctx context.Context, id string) (user.User, error) {
	if strings.TrimSpace(id) == "" {
		return user.User{}, user.ErrUserRequired
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.EnsureUser GetByID: %v", err)
		return user.User{}, err
	}
	if u.ID != "" {
		return u, nil
	}

	u, err = uc.repo.Create(ctx, repo.CreateOptions{
		ID:    id,
		Email: placeholderEmail(id),
		Name:  user.PlaceholderName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.EnsureUser Create: %v", err)
		return user.User{}, err
	}
	uc.l.Info(ctx, "placeholder user created", "user_id", id)
	return u, nil
}

// Detail returns the user or ErrUserNotFound.
func (uc *implUseCase) Detail(ctx context.Context, id string) (user.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetByID: %v", err)
		return user.User{}, err
	}
	if u.ID == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func placeholderEmail(id string) string {
	return fmt.Sprintf("user_%s@example.com", id)
}
