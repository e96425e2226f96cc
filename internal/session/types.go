package session

import "time"

// Well-known ContextData keys rendered into the context-aware prompt.
// Other keys are stored but never rendered.
const (
	ContextKeyPosition     = "sequence_position"
	ContextKeyLastFeedback = "last_feedback"
	ContextKeyLastTool     = "last_tool"
)

// renderedKeys fixes the order in which well-known keys appear in the prompt.
var renderedKeys = []string{ContextKeyPosition, ContextKeyLastTool, ContextKeyLastFeedback}

// SessionContext is the durable conversational state of one user.
type SessionContext struct {
	ID               string
	UserID           string
	ActiveSequenceID string
	LastAction       string
	LastActionTime   *time.Time
	ContextData      map[string]any
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Patch describes a partial update. Nil pointers leave the field as is;
// ContextData is merged key by key into the stored map.
type Patch struct {
	ActiveSequenceID *string
	LastAction       *string
	ContextData      map[string]any
}

// ActiveSequenceSummary is the denormalized view of the active sequence.
type ActiveSequenceSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Position   string `json:"position"`
	StepsCount int    `json:"steps_count"`
}

// Snapshot is the read-optimized session view handed to the orchestrator.
type Snapshot struct {
	SessionID        string                 `json:"session_id"`
	UserID           string                 `json:"user_id"`
	ActiveSequenceID string                 `json:"active_sequence_id,omitempty"`
	LastAction       string                 `json:"last_action,omitempty"`
	LastActionTime   *time.Time             `json:"last_action_time,omitempty"`
	ContextData      map[string]any         `json:"context_data"`
	ActiveSequence   *ActiveSequenceSummary `json:"active_sequence,omitempty"`
}

// String is a convenience for building a Patch.
func String(s string) *string { return &s }
