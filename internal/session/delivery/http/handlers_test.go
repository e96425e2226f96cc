package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-agent/internal/session"
	"outreach-agent/pkg/log"
)

type stubUseCase struct {
	session.UseCase
	snap    session.Snapshot
	err     error
	cleared []string
}

func (s *stubUseCase) GetSessionContext(ctx context.Context, userID string) (session.Snapshot, error) {
	return s.snap, s.err
}

func (s *stubUseCase) Clear(ctx context.Context, userID string) error {
	s.cleared = append(s.cleared, userID)
	return s.err
}

func serve(uc session.UseCase, method, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestSessionHandlers(t *testing.T) {
	t.Run("snapshot", func(t *testing.T) {
		uc := &stubUseCase{snap: session.Snapshot{
			SessionID:        "sess-1",
			UserID:           "u1",
			ActiveSequenceID: "seq-1",
			ContextData:      map[string]any{"sequence_position": "SRE"},
			ActiveSequence:   &session.ActiveSequenceSummary{ID: "seq-1", StepsCount: 3},
		}}
		w := serve(uc, http.MethodGet, "/api/v1/sessions/u1")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data session.Snapshot `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "seq-1", resp.Data.ActiveSequenceID)
		require.NotNil(t, resp.Data.ActiveSequence)
		assert.Equal(t, 3, resp.Data.ActiveSequence.StepsCount)
	})

	t.Run("clear", func(t *testing.T) {
		uc := &stubUseCase{}
		w := serve(uc, http.MethodDelete, "/api/v1/sessions/u1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"u1"}, uc.cleared)
	})

	t.Run("failure is not echoed", func(t *testing.T) {
		w := serve(&stubUseCase{err: errors.New("sqlite: locked")}, http.MethodGet, "/api/v1/sessions/u1")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "sqlite")
	})
}
