package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-agent/internal/user"
	repo "outreach-agent/internal/user/repository"
	"outreach-agent/pkg/log"
)

type memRepo struct {
	users   map[string]user.User
	creates int
	getErr  error
}

func newMemRepo() *memRepo { return &memRepo{users: map[string]user.User{}} }

func (m *memRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if m.getErr != nil {
		return user.User{}, m.getErr
	}
	return m.users[id], nil
}

func (m *memRepo) Create(ctx context.Context, opt repo.CreateOptions) (user.User, error) {
	m.creates++
	u := user.User{ID: opt.ID, Email: opt.Email, Name: opt.Name, Company: opt.Company}
	m.users[opt.ID] = u
	return u, nil
}

func TestEnsureUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates placeholder once", func(t *testing.T) {
		r := newMemRepo()
		uc := New(r, log.NewNop())

		u, err := uc.EnsureUser(ctx, "demo-user-123")
		require.NoError(t, err)
		assert.Equal(t, "user_demo-user-123@example.com", u.Email)
		assert.Equal(t, user.PlaceholderName, u.Name)

		_, err = uc.EnsureUser(ctx, "demo-user-123")
		require.NoError(t, err)
		assert.Equal(t, 1, r.creates)
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := New(newMemRepo(), log.NewNop()).EnsureUser(ctx, " ")
		assert.ErrorIs(t, err, user.ErrUserRequired)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		r := newMemRepo()
		r.getErr = errors.New("disk gone")
		_, err := New(r, log.NewNop()).EnsureUser(ctx, "u1")
		assert.Error(t, err)
		assert.Zero(t, r.creates)
	})
}

func TestDetail(t *testing.T) {
	r := newMemRepo()
	r.users["u1"] = user.User{ID: "u1", Company: "Acme", CompanyDescription: "Rockets"}
	uc := New(r, log.NewNop())

	u, err := uc.Detail(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, user.Info{UserID: "u1", CompanyName: "Acme", CompanyDescription: "Rockets"}, u.Info())

	_, err = uc.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
