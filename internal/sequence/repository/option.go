package repository

import "outreach-agent/internal/sequence"

// CreateOptions holds parameters for inserting a sequence.
// ID is generated when empty.
type CreateOptions struct {
	ID             string
	UserID         string
	Title          string
	Position       string
	AdditionalInfo string
	Steps          []sequence.StepDraft
}

type ReplaceStepsOptions struct {
	SequenceID string
	Steps      []sequence.StepDraft
}

type UpdateStepContentOptions struct {
	StepID  string
	Content string
}
