package orchestrator

import (
	"context"

	"outreach-agent/internal/sequence"
)

// Turn is one message of a conversation.
type Turn struct {
	ID      string
	Role    string
	Content string
}

// Config tunes generation. Zero values fall back to the defaults.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// StepLister loads the live steps of a sequence.
type StepLister interface {
	Steps(ctx context.Context, sequenceID string) ([]sequence.Step, error)
}

// ToolCallEvent is the payload of tool_call.
type ToolCallEvent struct {
	Name      string `json:"name"`
	Arguments any    `json:"arguments"`
}
