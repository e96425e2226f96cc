// Package output cleans and quality-gates model text before it reaches a user.
// Everything here is pure: same input, same output.
package output

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reasoningBlock = regexp.MustCompile(`(?s)<thinking>.*?</thinking>`)
	anyTag         = regexp.MustCompile(`<.*?>`)
)

// ToolCall is the record of one executed tool call.
type ToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	Result    any            `json:"result"`
}

// Processed is the user-facing result of a model turn. Content is never blank.
type Processed struct {
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls"`
}

// Process strips markup, applies the quality gate and filters the tool calls.
func Process(raw string, toolCalls []any, userInput string) Processed {
	content := Clean(raw)

	switch {
	case content == "":
		content = brevityFallback(userInput)
	case utf8.RuneCountInString(content) < MinContentLength:
		content = brevityFallback(userInput)
	case isRefusal(content):
		content = FallbackRefusal
	}

	return Processed{
		Content:   content,
		ToolCalls: SanitizeToolCalls(toolCalls),
	}
}

// Clean removes reasoning blocks and any other angle-bracket markup, then trims.
func Clean(raw string) string {
	text := reasoningBlock.ReplaceAllString(raw, "")
	text = anyTag.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Sanitize is Clean with the need-more-detail reply substituted for an empty result.
func Sanitize(raw string) string {
	if text := Clean(raw); text != "" {
		return text
	}
	return FallbackNeedDetail
}

// SanitizeToolCalls keeps well-formed entries that carry a name. Accepted
// shapes are ToolCall, *ToolCall and map[string]any with a string "name".
func SanitizeToolCalls(calls []any) []ToolCall {
	out := make([]ToolCall, 0, len(calls))
	for _, c := range calls {
		switch v := c.(type) {
		case ToolCall:
			if v.Name != "" {
				out = append(out, v)
			}
		case *ToolCall:
			if v != nil && v.Name != "" {
				out = append(out, *v)
			}
		case map[string]any:
			name, ok := v["name"].(string)
			if !ok || name == "" {
				continue
			}
			args, _ := v["arguments"].(map[string]any)
			out = append(out, ToolCall{Name: name, Arguments: args, Result: v["result"]})
		}
	}
	return out
}

func isRefusal(content string) bool {
	lower := strings.ToLower(content)
	for _, p := range refusalPatterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func brevityFallback(userInput string) string {
	if utf8.RuneCountInString(userInput) < ShortInputLength {
		return FallbackShortInput
	}
	return FallbackDetailed
}
