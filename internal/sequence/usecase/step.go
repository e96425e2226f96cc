package usecase

import (
	"context"
	"strings"

	"outreach-agent/internal/agent/output"
	"outreach-agent/internal/notify"
	"outreach-agent/internal/sequence"
	repo "outreach-agent/internal/sequence/repository"
)

// RefineStep rewrites one step, either with the supplied content or by asking
// the model to apply the feedback. Without a step id the first step of the
// sequence is used.
func (uc *implUseCase) RefineStep(ctx context.Context, input sequence.RefineStepInput) (sequence.Step, error) {
	content := strings.TrimSpace(input.Content)
	feedback := strings.TrimSpace(input.Feedback)
	if content == "" && feedback == "" {
		return sequence.Step{}, sequence.ErrFeedbackRequired
	}

	step, err := uc.resolveStep(ctx, input.SequenceID, input.StepID)
	if err != nil {
		return sequence.Step{}, err
	}

	if content == "" {
		content, err = uc.refineContent(ctx, step.Content, feedback)
		if err != nil {
			uc.l.Errorf(ctx, "uc.RefineStep refineContent: %v", err)
			return sequence.Step{}, err
		}
	}

	updated, err := uc.repo.UpdateStepContent(ctx, repo.UpdateStepContentOptions{StepID: step.ID, Content: content})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RefineStep UpdateStepContent: %v", err)
		return sequence.Step{}, err
	}
	if updated.ID == "" {
		return sequence.Step{}, sequence.ErrStepNotFound
	}

	if seq, err := uc.repo.GetByID(ctx, updated.SequenceID); err == nil && seq.ID != "" {
		uc.notifier.Emit(ctx, seq.UserID, notify.EventSequenceUpdated, seq)
	}
	return updated, nil
}

func (uc *implUseCase) resolveStep(ctx context.Context, sequenceID, stepID string) (sequence.Step, error) {
	if stepID == "" {
		if sequenceID == "" {
			return sequence.Step{}, sequence.ErrStepRequired
		}
		steps, err := uc.Steps(ctx, sequenceID)
		if err != nil {
			return sequence.Step{}, err
		}
		if len(steps) == 0 {
			return sequence.Step{}, sequence.ErrStepNotFound
		}
		return steps[0], nil
	}

	step, err := uc.repo.GetStep(ctx, stepID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveStep GetStep: %v", err)
		return sequence.Step{}, err
	}
	if step.ID == "" || (sequenceID != "" && step.SequenceID != sequenceID) {
		return sequence.Step{}, sequence.ErrStepNotFound
	}
	return step, nil
}

// refineContent asks the model for a rewrite and strips any markup it returns.
func (uc *implUseCase) refineContent(ctx context.Context, current, feedback string) (string, error) {
	text, err := uc.complete(ctx, refinePrompt(current, feedback), refineMaxTokens)
	if err != nil {
		return "", err
	}
	return output.Sanitize(text), nil
}
