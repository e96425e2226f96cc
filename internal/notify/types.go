package notify

import (
	"context"
	"time"
)

// Event names pushed to connected clients.
const (
	EventToolCall              = "tool_call"
	EventToolExecutionComplete = "tool_execution_complete"
	EventSequenceUpdated       = "sequence_updated"
	EventNewMessage            = "new_message"
)

// AllUsers is the subscription key that receives every user's events.
const AllUsers = "*"

// Notifier is the fire-and-forget sink for client-facing events.
type Notifier interface {
	Emit(ctx context.Context, userID, event string, payload any)
}

// Event is one message delivered to a subscriber.
type Event struct {
	Name    string    `json:"event"`
	UserID  string    `json:"user_id"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

type nop struct{}

func (nop) Emit(context.Context, string, string, any) {}

// Nop returns a Notifier that discards every event.
func Nop() Notifier { return nop{} }
