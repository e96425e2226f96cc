package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodReply = "Great, let's build an outreach sequence for the senior backend role."

func TestProcess_Markup(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "reasoning block removed",
			raw:  "<thinking>user wants a sequence, call the tool</thinking>" + goodReply,
			want: goodReply,
		},
		{
			name: "multiline reasoning block removed",
			raw:  "<thinking>\nstep one\nstep two\n</thinking>\n\n" + goodReply + "\n",
			want: goodReply,
		},
		{
			name: "stray tags removed",
			raw:  "<b>" + goodReply + "</b>",
			want: goodReply,
		},
		{
			name: "two reasoning blocks",
			raw:  "<thinking>a</thinking>" + goodReply + "<thinking>b</thinking>",
			want: goodReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Process(tt.raw, nil, "I need help recruiting")
			assert.Equal(t, tt.want, got.Content)
		})
	}
}

func TestProcess_ReasoningNeverLeaks(t *testing.T) {
	secrets := []string{"internal plan", "SECRET-42", "call generate_sequence with position=X"}
	for _, secret := range secrets {
		for _, wrap := range []string{"%s" + goodReply, goodReply + "%s", "Intro. %s " + goodReply} {
			raw := strings.Replace(wrap, "%s", "<thinking>"+secret+"</thinking>", 1)
			got := Process(raw, nil, "anything at all")
			assert.NotContains(t, got.Content, secret)
		}
	}
}

func TestProcess_ShortContentReplaced(t *testing.T) {
	for _, s := range []string{"ok", "Sure!", "Done.", "1234567890123456789", "  short  "} {
		got := Process(s, nil, "hi")
		assert.Equal(t, FallbackShortInput, got.Content, "content %q", s)

		got = Process(s, nil, "I'm hiring three designers in Berlin")
		assert.Equal(t, FallbackDetailed, got.Content, "content %q", s)
	}
}

func TestProcess_Empty(t *testing.T) {
	assert.Equal(t, FallbackShortInput, Process("", nil, "hi").Content)
	assert.Equal(t, FallbackDetailed, Process("<thinking>only thoughts</thinking>", nil, "please help me hire").Content)
	assert.Equal(t, FallbackShortInput, Process("   \n\t", nil, "").Content)
}

func TestProcess_Refusal(t *testing.T) {
	for _, raw := range []string{
		"I apologize, but I cannot help with writing that message today.",
		"i'm sorry, i cannot do that for this particular candidate.",
		"Unfortunately I CANNOT ASSIST WITH scraping candidate profiles.",
		"I'm not able to access LinkedIn, but here is something else.",
	} {
		assert.Equal(t, FallbackRefusal, Process(raw, nil, "please help me hire").Content, raw)
	}
}

func TestProcess_LongEnoughKept(t *testing.T) {
	got := Process(goodReply, nil, "hi")
	assert.Equal(t, goodReply, got.Content)
}

func TestProcess_Deterministic(t *testing.T) {
	raw := "<thinking>x</thinking>short"
	assert.Equal(t, Process(raw, nil, "hello"), Process(raw, nil, "hello"))
}

func TestSanitizeToolCalls(t *testing.T) {
	typed := ToolCall{Name: "generate_sequence", Arguments: map[string]any{"position": "PM"}}
	calls := []any{
		typed,
		&ToolCall{Name: "analyze_sequence"},
		(*ToolCall)(nil),
		ToolCall{},
		map[string]any{"name": "refine_sequence_step", "arguments": map[string]any{"feedback": "shorter"}, "result": "ok"},
		map[string]any{"arguments": map[string]any{}},
		map[string]any{"name": 7},
		"generate_sequence",
		42,
		nil,
	}

	got := SanitizeToolCalls(calls)
	require.Len(t, got, 3)
	assert.Equal(t, typed, got[0])
	assert.Equal(t, "analyze_sequence", got[1].Name)
	assert.Equal(t, "refine_sequence_step", got[2].Name)
	assert.Equal(t, "ok", got[2].Result)

	assert.Empty(t, SanitizeToolCalls(nil))
	assert.NotNil(t, SanitizeToolCalls(nil))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Hi [CANDIDATE_NAME],", Sanitize("<thinking>draft</thinking> Hi [CANDIDATE_NAME], "))
	assert.Equal(t, FallbackNeedDetail, Sanitize("<thinking>nothing</thinking>"))
}
