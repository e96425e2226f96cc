package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-agent/config"
	"outreach-agent/internal/notify"
	"outreach-agent/pkg/llmprovider"
	"outreach-agent/pkg/log"
	"outreach-agent/pkg/sqlite"
)

const stepsJSON = `[
	{"title":"Intro","content":"Hi [CANDIDATE_NAME], we are hiring."},
	{"title":"Follow up","content":"Checking in, [CANDIDATE_NAME]."},
	{"title":"Last note","content":"Would you like to schedule a call?"}
]`

// scriptedModel answers chat turns with a generate_sequence call and
// sequence-writing requests (no tools offered) with three steps.
type scriptedModel struct{}

func (scriptedModel) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if len(req.Tools) == 0 {
		return &llmprovider.Response{Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: stepsJSON}},
		}}, nil
	}
	return &llmprovider.Response{Content: llmprovider.Message{
		Role: "assistant",
		Parts: []llmprovider.Part{
			{Text: "I drafted a sequence for the Backend Engineer role."},
			{FunctionCall: &llmprovider.FunctionCall{
				ID:   "call_1",
				Name: "generate_sequence",
				Args: map[string]any{"position": "Backend Engineer"},
			}},
		},
	}}, nil
}

func newTestServer(t *testing.T, rl config.RateLimitConfig) *HTTPServer {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	b := notify.NewBroadcaster(log.NewNop(), 16)
	t.Cleanup(b.Close)

	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		DB:          db,
		LLM:         scriptedModel{},
		Broadcaster: b,
		Agent:       config.AgentConfig{DefaultUserID: "demo-user-123", HistoryLimit: 10},
		Session:     config.SessionConfig{CacheSize: 16},
		RateLimit:   rl,
	})
	require.NoError(t, err)
	return srv
}

func call(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{}).Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, call(h, http.MethodGet, path, "").Code)
		})
	}
}

func TestChatTurnCreatesSequence(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{}).Handler()

	w := call(h, http.MethodPost, "/api/v1/chat/message",
		`{"userId":"u1","message":"Please write outreach for a Backend Engineer"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var chatResp struct {
		Data struct {
			Role      string           `json:"role"`
			Content   string           `json:"content"`
			ToolCalls []map[string]any `json:"tool_calls"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chatResp))
	assert.Equal(t, "assistant", chatResp.Data.Role)
	assert.NotEmpty(t, chatResp.Data.Content)
	require.Len(t, chatResp.Data.ToolCalls, 1)
	assert.Equal(t, "generate_sequence", chatResp.Data.ToolCalls[0]["name"])

	w = call(h, http.MethodGet, "/api/v1/sequences/user/u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data struct {
			Sequences []struct {
				ID       string           `json:"id"`
				Position string           `json:"position"`
				Steps    []map[string]any `json:"steps"`
			} `json:"sequences"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data.Sequences, 1)
	seq := listResp.Data.Sequences[0]
	assert.Equal(t, "Backend Engineer", seq.Position)
	assert.Len(t, seq.Steps, 3)

	w = call(h, http.MethodGet, "/api/v1/sessions/u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), seq.ID)

	w = call(h, http.MethodGet, "/api/v1/chat/history/u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var histResp struct {
		Data struct {
			Messages []map[string]any `json:"messages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &histResp))
	assert.Len(t, histResp.Data.Messages, 2)
}

func TestChatRateLimited(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10}).Handler()

	send := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/message", strings.NewReader(`{"userId":"u2","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u2")
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	// Only the message endpoint is limited.
	assert.Equal(t, http.StatusOK, call(h, http.MethodGet, "/api/v1/chat/history/u2", "").Code)
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Logger: log.NewNop(), Port: 8080, Mode: "test"})
	assert.Error(t, err)
}

func TestPanicRecovery(t *testing.T) {
	srv := newTestServer(t, config.RateLimitConfig{})
	srv.gin.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := call(srv.Handler(), http.MethodGet, "/boom", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "kaboom")
}
