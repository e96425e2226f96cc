package repository

import (
	"context"

	"outreach-agent/internal/sequence"
)

// Repository is the composed interface for the sequence data store.
type Repository interface {
	SequenceRepository
	StepRepository
}

// SequenceRepository covers sequences; reads return them with ordered steps.
type SequenceRepository interface {
	// Create inserts the sequence and its steps in one transaction.
	Create(ctx context.Context, opt CreateOptions) (sequence.Sequence, error)
	// GetByID returns a zero Sequence (ID == "") when not found.
	GetByID(ctx context.Context, id string) (sequence.Sequence, error)
	ListByUser(ctx context.Context, userID string) ([]sequence.Sequence, error)
	// Delete removes the sequence; its steps go with it.
	Delete(ctx context.Context, id string) error
}

type StepRepository interface {
	ListSteps(ctx context.Context, sequenceID string) ([]sequence.Step, error)
	// GetStep returns a zero Step (ID == "") when not found.
	GetStep(ctx context.Context, id string) (sequence.Step, error)
	// ReplaceSteps deletes every step of the sequence and inserts opt.Steps in order.
	ReplaceSteps(ctx context.Context, opt ReplaceStepsOptions) error
	UpdateStepContent(ctx context.Context, opt UpdateStepContentOptions) (sequence.Step, error)
}
