package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-agent/internal/sequence"
	repo "outreach-agent/internal/sequence/repository"
	"outreach-agent/pkg/log"
	pkgSqlite "outreach-agent/pkg/sqlite"
)

func setup(t *testing.T) repo.Repository {
	t.Helper()
	ctx := context.Background()
	db, err := pkgSqlite.Open(ctx, pkgSqlite.Config{Path: filepath.Join(t.TempDir(), "sequence.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Now().UTC()
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		"u1", "user_u1@example.com", "Demo User", now, now)
	require.NoError(t, err)

	return New(db, log.NewNop())
}

func drafts(titles ...string) []sequence.StepDraft {
	out := make([]sequence.StepDraft, 0, len(titles))
	for _, title := range titles {
		out = append(out, sequence.StepDraft{Title: title, Content: title + " body"})
	}
	return out
}

func TestSequenceRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read back ordered steps", func(t *testing.T) {
		r := setup(t)
		created, err := r.Create(ctx, repo.CreateOptions{
			UserID:   "u1",
			Title:    "Recruiting for SRE",
			Position: "SRE",
			Steps:    drafts("Intro", "Follow-up", "Final"),
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Len(t, created.Steps, 3)
		for i, st := range created.Steps {
			assert.Equal(t, i, st.Order)
			assert.Equal(t, created.ID, st.SequenceID)
		}
		assert.Equal(t, "Intro", created.Steps[0].Title)
		assert.Equal(t, "Final", created.Steps[2].Title)
	})

	t.Run("missing sequence is a zero value", func(t *testing.T) {
		r := setup(t)
		s, err := r.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, s.ID)

		st, err := r.GetStep(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, st.ID)
	})

	t.Run("explicit id is kept", func(t *testing.T) {
		r := setup(t)
		created, err := r.Create(ctx, repo.CreateOptions{ID: "seq-1", UserID: "u1", Title: "New Sequence", Position: "Untitled Position"})
		require.NoError(t, err)
		assert.Equal(t, "seq-1", created.ID)
		assert.Empty(t, created.Steps)
	})

	t.Run("replace steps swaps the whole list", func(t *testing.T) {
		r := setup(t)
		created, err := r.Create(ctx, repo.CreateOptions{UserID: "u1", Title: "t", Position: "p", Steps: drafts("a", "b", "c")})
		require.NoError(t, err)

		require.NoError(t, r.ReplaceSteps(ctx, repo.ReplaceStepsOptions{SequenceID: created.ID, Steps: drafts("x", "y")}))
		steps, err := r.ListSteps(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, "x", steps[0].Title)
		assert.Equal(t, 1, steps[1].Order)
	})

	t.Run("update step content", func(t *testing.T) {
		r := setup(t)
		created, err := r.Create(ctx, repo.CreateOptions{UserID: "u1", Title: "t", Position: "p", Steps: drafts("a")})
		require.NoError(t, err)

		st, err := r.UpdateStepContent(ctx, repo.UpdateStepContentOptions{StepID: created.Steps[0].ID, Content: "rewritten"})
		require.NoError(t, err)
		assert.Equal(t, "rewritten", st.Content)

		missing, err := r.UpdateStepContent(ctx, repo.UpdateStepContentOptions{StepID: "nope", Content: "x"})
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})

	t.Run("list by user and delete cascades", func(t *testing.T) {
		r := setup(t)
		first, err := r.Create(ctx, repo.CreateOptions{UserID: "u1", Title: "one", Position: "p", Steps: drafts("a", "b")})
		require.NoError(t, err)
		_, err = r.Create(ctx, repo.CreateOptions{UserID: "u1", Title: "two", Position: "p"})
		require.NoError(t, err)

		list, err := r.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, list, 2)

		require.NoError(t, r.Delete(ctx, first.ID))
		steps, err := r.ListSteps(ctx, first.ID)
		require.NoError(t, err)
		assert.Empty(t, steps)

		list, err = r.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
