package chat

import (
	"time"

	"outreach-agent/internal/agent/output"
)

// Message roles persisted in the history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one persisted chat turn.
type Message struct {
	ID         string
	UserID     string
	SequenceID string
	Role       string
	Content    string
	CreatedAt  time.Time
}

// --- UseCase Inputs ---

type SendMessageInput struct {
	UserID     string
	Message    string
	SequenceID string
}

// HistoryInput lists the oldest Limit messages of a user.
type HistoryInput struct {
	UserID string
	Limit  int
}

// --- UseCase Outputs ---

type SendMessageOutput struct {
	UserMessage      Message
	AssistantMessage Message
	ToolCalls        []output.ToolCall
}
