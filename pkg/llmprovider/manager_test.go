package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	failTimes int // fail this many calls before succeeding; -1 fails forever
	response  *Response
	callCount int
	lastReq   *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.failTimes < 0 || m.callCount <= m.failTimes {
		return nil, errors.New("upstream unavailable")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

// mockLogger records the message of Info/Warn calls
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) record(dst *[]string, arg []any) {
	if len(arg) == 0 {
		return
	}
	if msg, ok := arg[0].(string); ok {
		m.mu.Lock()
		*dst = append(*dst, msg)
		m.mu.Unlock()
	}
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    { m.record(&m.infoMessages, arg) }
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    { m.record(&m.warnMessages, arg) }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {
}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func helloRequest() *Request {
	return &Request{Messages: []Message{TextMessage("user", "I'm hiring a backend engineer")}}
}

func okResponse(provider string) *Response {
	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: "Happy to help with " + provider}}},
		ProviderName: provider,
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

func TestManager_GenerateContent(t *testing.T) {
	fastRetry := func(fallback bool, attempts int) *Config {
		return &Config{FallbackEnabled: fallback, RetryAttempts: attempts, RetryDelay: time.Millisecond}
	}

	t.Run("primary succeeds", func(t *testing.T) {
		primary := &mockProvider{name: "anthropic", response: okResponse("anthropic")}
		logger := &mockLogger{}

		resp, err := NewManager([]Provider{primary}, fastRetry(true, 3), logger).
			GenerateContent(context.Background(), helloRequest())

		require.NoError(t, err)
		assert.Equal(t, "anthropic", resp.ProviderName)
		assert.Equal(t, 1, primary.callCount)
		assert.Len(t, logger.infoMessages, 1)
		assert.Empty(t, logger.warnMessages)
	})

	t.Run("retry recovers on same provider", func(t *testing.T) {
		primary := &mockProvider{name: "anthropic", failTimes: 1, response: okResponse("anthropic")}

		resp, err := NewManager([]Provider{primary}, fastRetry(true, 3), &mockLogger{}).
			GenerateContent(context.Background(), helloRequest())

		require.NoError(t, err)
		assert.Equal(t, "anthropic", resp.ProviderName)
		assert.Equal(t, 2, primary.callCount)
	})

	t.Run("falls back to secondary", func(t *testing.T) {
		primary := &mockProvider{name: "anthropic", failTimes: -1}
		secondary := &mockProvider{name: "openai", response: okResponse("openai")}
		logger := &mockLogger{}

		resp, err := NewManager([]Provider{primary, secondary}, fastRetry(true, 2), logger).
			GenerateContent(context.Background(), helloRequest())

		require.NoError(t, err)
		assert.Equal(t, "openai", resp.ProviderName)
		assert.Equal(t, 2, primary.callCount)
		assert.Equal(t, 1, secondary.callCount)
		assert.Len(t, logger.warnMessages, 1)
	})

	t.Run("all providers fail", func(t *testing.T) {
		primary := &mockProvider{name: "anthropic", failTimes: -1}
		secondary := &mockProvider{name: "openai", failTimes: -1}

		resp, err := NewManager([]Provider{primary, secondary}, fastRetry(true, 2), &mockLogger{}).
			GenerateContent(context.Background(), helloRequest())

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrAllProvidersFailed)

		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "openai", pe.Provider)
	})

	t.Run("no fallback when disabled", func(t *testing.T) {
		primary := &mockProvider{name: "anthropic", failTimes: -1}
		secondary := &mockProvider{name: "openai", response: okResponse("openai")}

		_, err := NewManager([]Provider{primary, secondary}, fastRetry(false, 2), &mockLogger{}).
			GenerateContent(context.Background(), helloRequest())

		require.Error(t, err)
		assert.Equal(t, 0, secondary.callCount)
	})

	t.Run("no providers configured", func(t *testing.T) {
		_, err := NewManager(nil, fastRetry(true, 1), &mockLogger{}).
			GenerateContent(context.Background(), helloRequest())
		assert.ErrorIs(t, err, ErrNoProvidersConfigured)
	})

	t.Run("empty request rejected", func(t *testing.T) {
		primary := &mockProvider{name: "anthropic", response: okResponse("anthropic")}
		_, err := NewManager([]Provider{primary}, fastRetry(true, 1), &mockLogger{}).
			GenerateContent(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Equal(t, 0, primary.callCount)
	})

	t.Run("cancelled context stops the chain", func(t *testing.T) {
		primary := &mockProvider{name: "anthropic", response: okResponse("anthropic")}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewManager([]Provider{primary}, fastRetry(true, 1), &mockLogger{}).
			GenerateContent(ctx, helloRequest())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, primary.callCount)
	})
}

func TestResponseHelpers(t *testing.T) {
	resp := &Response{Content: Message{Parts: []Part{
		{Text: "Let me "},
		{FunctionCall: &FunctionCall{ID: "t1", Name: "generate_sequence"}},
		{Text: "draft that."},
		{FunctionCall: &FunctionCall{ID: "t2", Name: "analyze_sequence"}},
	}}}

	assert.Equal(t, "Let me draft that.", resp.Text())

	calls := resp.FunctionCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "generate_sequence", calls[0].Name)
	assert.Equal(t, "analyze_sequence", calls[1].Name)

	var nilResp *Response
	assert.Empty(t, nilResp.Text())
	assert.Nil(t, nilResp.FunctionCalls())
}
