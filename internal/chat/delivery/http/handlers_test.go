package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-agent/internal/agent/output"
	"outreach-agent/internal/chat"
	"outreach-agent/pkg/log"
	"outreach-agent/pkg/response"
)

type stubUseCase struct {
	sent    chat.SendMessageInput
	history chat.HistoryInput
	out     chat.SendMessageOutput
	msgs    []chat.Message
	err     error
}

func (s *stubUseCase) SendMessage(ctx context.Context, in chat.SendMessageInput) (chat.SendMessageOutput, error) {
	s.sent = in
	return s.out, s.err
}

func (s *stubUseCase) History(ctx context.Context, in chat.HistoryInput) ([]chat.Message, error) {
	s.history = in
	return s.msgs, s.err
}

func newRouter(uc chat.UseCase, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, "demo-user-123"), mw...)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSendMessage(t *testing.T) {
	t.Run("returns the assistant turn with tool calls", func(t *testing.T) {
		uc := &stubUseCase{out: chat.SendMessageOutput{
			AssistantMessage: chat.Message{ID: "m2", Role: chat.RoleAssistant, Content: "Done."},
			ToolCalls: []output.ToolCall{{
				Name:      "generate_sequence",
				Arguments: map[string]any{"position": "SRE"},
			}},
		}}
		w := do(newRouter(uc), http.MethodPost, "/api/v1/chat/message",
			`{"userId":"u1","message":"write one","sequenceId":"seq-1"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, chat.SendMessageInput{UserID: "u1", Message: "write one", SequenceID: "seq-1"}, uc.sent)

		var resp struct {
			Data sendMessageResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "m2", resp.Data.ID)
		assert.Equal(t, "Done.", resp.Data.Content)
		require.Len(t, resp.Data.ToolCalls, 1)
		assert.Equal(t, "SRE", resp.Data.ToolCalls[0].Arguments["position"])
	})

	t.Run("falls back to the default user", func(t *testing.T) {
		uc := &stubUseCase{}
		w := do(newRouter(uc), http.MethodPost, "/api/v1/chat/message", `{"message":"hi"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "demo-user-123", uc.sent.UserID)
	})

	t.Run("missing message", func(t *testing.T) {
		w := do(newRouter(&stubUseCase{}), http.MethodPost, "/api/v1/chat/message", `{"userId":"u1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("generation failure hides the cause", func(t *testing.T) {
		uc := &stubUseCase{err: fmt.Errorf("%w: %w", chat.ErrGenerationFailed, fmt.Errorf("anthropic: 529 overloaded"))}
		w := do(newRouter(uc), http.MethodPost, "/api/v1/chat/message", `{"userId":"u1","message":"hi"}`)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotContains(t, resp.Message, "anthropic")
	})

	t.Run("middleware runs before the handler", func(t *testing.T) {
		uc := &stubUseCase{}
		deny := func(c *gin.Context) { response.TooManyRequests(c); c.Abort() }
		w := do(newRouter(uc, deny), http.MethodPost, "/api/v1/chat/message", `{"message":"hi"}`)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Empty(t, uc.sent.Message)
	})
}

func TestHistory(t *testing.T) {
	t.Run("passes limit and lists messages", func(t *testing.T) {
		uc := &stubUseCase{msgs: []chat.Message{
			{ID: "m1", Role: chat.RoleUser, Content: "hi"},
			{ID: "m2", Role: chat.RoleAssistant, Content: "hello"},
		}}
		w := do(newRouter(uc), http.MethodGet, "/api/v1/chat/history/u1?limit=5", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, chat.HistoryInput{UserID: "u1", Limit: 5}, uc.history)

		var resp struct {
			Data historyResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Messages, 2)
		assert.Equal(t, "hello", resp.Data.Messages[1].Content)
	})

	t.Run("bad limit", func(t *testing.T) {
		w := do(newRouter(&stubUseCase{}), http.MethodGet, "/api/v1/chat/history/u1?limit=abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
