package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"outreach-agent/internal/notify"
	"outreach-agent/internal/sequence"
	repo "outreach-agent/internal/sequence/repository"
)

// Create generates three steps with the model and stores the new sequence.
func (uc *implUseCase) Create(ctx context.Context, input sequence.CreateInput) (sequence.Sequence, error) {
	position := strings.TrimSpace(input.Position)
	if position == "" {
		return sequence.Sequence{}, sequence.ErrPositionRequired
	}
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		userID = uc.defaultUserID
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = fmt.Sprintf("Recruiting for %s", position)
	}

	u, err := uc.users.EnsureUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create EnsureUser: %v", err)
		return sequence.Sequence{}, err
	}

	drafts, err := uc.generateSteps(ctx, position, u.Company, u.CompanyDescription, input.AdditionalInfo)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create generateSteps: %v", err)
		return sequence.Sequence{}, err
	}

	seq, err := uc.repo.Create(ctx, repo.CreateOptions{
		UserID:         userID,
		Title:          title,
		Position:       position,
		AdditionalInfo: input.AdditionalInfo,
		Steps:          drafts,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Create: %v", err)
		return sequence.Sequence{}, err
	}

	uc.l.Info(ctx, "sequence created", "sequence_id", seq.ID, "user_id", userID, "steps", len(seq.Steps))
	uc.notifier.Emit(ctx, userID, notify.EventSequenceUpdated, seq)
	return seq, nil
}

// Update replaces every step of the sequence. A sequence that does not exist
// yet is created first with placeholder metadata.
func (uc *implUseCase) Update(ctx context.Context, input sequence.UpdateInput) (sequence.Sequence, error) {
	if strings.TrimSpace(input.SequenceID) == "" {
		return sequence.Sequence{}, sequence.ErrSequenceNotFound
	}
	if len(input.Steps) == 0 {
		return sequence.Sequence{}, sequence.ErrStepsRequired
	}

	current, err := uc.repo.GetByID(ctx, input.SequenceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetByID: %v", err)
		return sequence.Sequence{}, err
	}

	if current.ID == "" {
		userID := strings.TrimSpace(input.UserID)
		if userID == "" {
			userID = uc.defaultUserID
		}
		if _, err := uc.users.EnsureUser(ctx, userID); err != nil {
			uc.l.Errorf(ctx, "uc.Update EnsureUser: %v", err)
			return sequence.Sequence{}, err
		}
		current, err = uc.repo.Create(ctx, repo.CreateOptions{
			ID:       input.SequenceID,
			UserID:   userID,
			Title:    PlaceholderTitle,
			Position: PlaceholderPosition,
			Steps:    input.Steps,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update Create: %v", err)
			return sequence.Sequence{}, err
		}
		uc.l.Info(ctx, "placeholder sequence created", "sequence_id", current.ID, "user_id", userID)
	} else {
		if err := uc.repo.ReplaceSteps(ctx, repo.ReplaceStepsOptions{SequenceID: current.ID, Steps: input.Steps}); err != nil {
			uc.l.Errorf(ctx, "uc.Update ReplaceSteps: %v", err)
			return sequence.Sequence{}, err
		}
		if current, err = uc.Detail(ctx, current.ID); err != nil {
			return sequence.Sequence{}, err
		}
	}

	uc.notifier.Emit(ctx, current.UserID, notify.EventSequenceUpdated, current)
	return current, nil
}

// Detail returns the sequence or ErrSequenceNotFound.
func (uc *implUseCase) Detail(ctx context.Context, id string) (sequence.Sequence, error) {
	seq, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetByID: %v", err)
		return sequence.Sequence{}, err
	}
	if seq.ID == "" {
		return sequence.Sequence{}, sequence.ErrSequenceNotFound
	}
	return seq, nil
}

func (uc *implUseCase) ListByUser(ctx context.Context, userID string) ([]sequence.Sequence, error) {
	seqs, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByUser ListByUser: %v", err)
		return nil, err
	}
	return seqs, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return err
	}
	uc.l.Info(ctx, "sequence deleted", "sequence_id", id)
	return nil
}

// Steps returns the ordered steps of an existing sequence.
func (uc *implUseCase) Steps(ctx context.Context, sequenceID string) ([]sequence.Step, error) {
	seq, err := uc.Detail(ctx, sequenceID)
	if err != nil {
		if !errors.Is(err, sequence.ErrSequenceNotFound) {
			uc.l.Errorf(ctx, "uc.Steps Detail: %v", err)
		}
		return nil, err
	}
	return seq.Steps, nil
}
