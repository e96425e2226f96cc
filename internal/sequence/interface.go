package sequence

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Sequence lifecycle
	Create(ctx context.Context, input CreateInput) (Sequence, error)
	Update(ctx context.Context, input UpdateInput) (Sequence, error)
	Detail(ctx context.Context, id string) (Sequence, error)
	ListByUser(ctx context.Context, userID string) ([]Sequence, error)
	Delete(ctx context.Context, id string) error

	// Steps
	Steps(ctx context.Context, sequenceID string) ([]Step, error)
	RefineStep(ctx context.Context, input RefineStepInput) (Step, error)

	Analyze(ctx context.Context, sequenceID string) (Analysis, error)
}
