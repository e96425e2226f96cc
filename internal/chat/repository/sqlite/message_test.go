package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-agent/internal/chat"
	repo "outreach-agent/internal/chat/repository"
	"outreach-agent/pkg/log"
	pkgSqlite "outreach-agent/pkg/sqlite"
)

func TestChatRepository(t *testing.T) {
	ctx := context.Background()
	db, err := pkgSqlite.Open(ctx, pkgSqlite.Config{Path: filepath.Join(t.TempDir(), "chat.db")})
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		"u1", "user_u1@example.com", "Demo User", now, now)
	require.NoError(t, err)

	r := New(db, log.NewNop())

	var ids []string
	for i := 0; i < 5; i++ {
		m, err := r.Create(ctx, repo.CreateOptions{UserID: "u1", Role: chat.RoleUser, Content: fmt.Sprintf("m%d", i)})
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}
	withSeq, err := r.Create(ctx, repo.CreateOptions{UserID: "u1", SequenceID: "seq-1", Role: chat.RoleAssistant, Content: "m5"})
	require.NoError(t, err)

	t.Run("recent is chronological tail", func(t *testing.T) {
		msgs, err := r.ListRecent(ctx, "u1", 3)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, []string{"m3", "m4", "m5"}, contents(msgs))
		assert.Equal(t, "seq-1", msgs[2].SequenceID)
	})

	t.Run("history is chronological head", func(t *testing.T) {
		msgs, err := r.ListByUser(ctx, "u1", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"m0", "m1"}, contents(msgs))
		assert.Empty(t, msgs[0].SequenceID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, r.Delete(ctx, withSeq.ID))
		msgs, err := r.ListRecent(ctx, "u1", 10)
		require.NoError(t, err)
		assert.Len(t, msgs, 5)
		assert.Equal(t, ids[4], msgs[4].ID)
	})
}

func contents(msgs []chat.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Content
	}
	return out
}
