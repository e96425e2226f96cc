package usecase

import (
	"context"
	"errors"
	"maps"
	"strings"

	"outreach-agent/internal/sequence"
	"outreach-agent/internal/session"
	repo "outreach-agent/internal/session/repository"
)

// GetOrCreate returns the user's context, creating an empty one on first access.
func (uc *implUseCase) GetOrCreate(ctx context.Context, userID string) (session.SessionContext, error) {
	if strings.TrimSpace(userID) == "" {
		return session.SessionContext{}, session.ErrUserRequired
	}
	if sc, ok := uc.cache.Get(userID); ok {
		return clone(sc), nil
	}

	sc, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetOrCreate GetByUserID: %v", err)
		return session.SessionContext{}, err
	}
	if sc.ID == "" {
		sc, err = uc.repo.Create(ctx, repo.CreateOptions{UserID: userID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.GetOrCreate Create: %v", err)
			return session.SessionContext{}, err
		}
		uc.l.Debug(ctx, "session created", "user_id", userID, "session_id", sc.ID)
	}

	uc.cache.Add(userID, clone(sc))
	return sc, nil
}

// Update applies patch: scalar fields are replaced, ContextData is merged.
// Concurrent updates for one user are not serialized; the last write wins.
func (uc *implUseCase) Update(ctx context.Context, userID string, patch session.Patch) (session.SessionContext, error) {
	current, err := uc.GetOrCreate(ctx, userID)
	if err != nil {
		return session.SessionContext{}, err
	}

	opt := repo.UpdateOptions{
		UserID:           userID,
		ActiveSequenceID: current.ActiveSequenceID,
		LastAction:       current.LastAction,
		LastActionTime:   current.LastActionTime,
		ContextData:      current.ContextData,
	}
	if patch.ActiveSequenceID != nil {
		opt.ActiveSequenceID = *patch.ActiveSequenceID
	}
	if patch.LastAction != nil {
		now := uc.now().UTC()
		opt.LastAction = *patch.LastAction
		opt.LastActionTime = &now
	}
	if len(patch.ContextData) > 0 {
		merged := make(map[string]any, len(current.ContextData)+len(patch.ContextData))
		maps.Copy(merged, current.ContextData)
		maps.Copy(merged, patch.ContextData)
		opt.ContextData = merged
	}

	updated, err := uc.repo.Update(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Update: %v", err)
		uc.cache.Remove(userID)
		return session.SessionContext{}, err
	}
	if updated.ID == "" {
		// Row vanished between read and write (cleared concurrently): recreate and retry once.
		uc.cache.Remove(userID)
		if _, err := uc.repo.Create(ctx, repo.CreateOptions{UserID: userID}); err != nil {
			uc.l.Errorf(ctx, "uc.Update Create: %v", err)
			return session.SessionContext{}, err
		}
		if updated, err = uc.repo.Update(ctx, opt); err != nil {
			uc.l.Errorf(ctx, "uc.Update Update: %v", err)
			return session.SessionContext{}, err
		}
	}

	uc.cache.Add(userID, clone(updated))
	return updated, nil
}

// GetSessionContext builds the snapshot, including the active sequence
// summary when the referenced sequence still exists.
func (uc *implUseCase) GetSessionContext(ctx context.Context, userID string) (session.Snapshot, error) {
	sc, err := uc.GetOrCreate(ctx, userID)
	if err != nil {
		return session.Snapshot{}, err
	}

	snap := session.Snapshot{
		SessionID:        sc.ID,
		UserID:           sc.UserID,
		ActiveSequenceID: sc.ActiveSequenceID,
		LastAction:       sc.LastAction,
		LastActionTime:   sc.LastActionTime,
		ContextData:      sc.ContextData,
	}
	if snap.ContextData == nil {
		snap.ContextData = map[string]any{}
	}

	if sc.ActiveSequenceID == "" || uc.sequences == nil {
		return snap, nil
	}

	seq, err := uc.sequences.Detail(ctx, sc.ActiveSequenceID)
	switch {
	case errors.Is(err, sequence.ErrSequenceNotFound):
		uc.l.Debug(ctx, "active sequence no longer exists", "user_id", userID, "sequence_id", sc.ActiveSequenceID)
	case err != nil:
		uc.l.Errorf(ctx, "uc.GetSessionContext Detail: %v", err)
		return session.Snapshot{}, err
	default:
		snap.ActiveSequence = &session.ActiveSequenceSummary{
			ID:         seq.ID,
			Title:      seq.Title,
			Position:   seq.Position,
			StepsCount: len(seq.Steps),
		}
	}
	return snap, nil
}

// BuildContextAwarePrompt decorates basePrompt with the user's session block.
func (uc *implUseCase) BuildContextAwarePrompt(ctx context.Context, basePrompt, userID string) (string, error) {
	snap, err := uc.GetSessionContext(ctx, userID)
	if err != nil {
		return "", err
	}
	return session.ContextAwarePrompt(basePrompt, snap), nil
}

// Clear deletes the user's context; clearing a missing context is a no-op.
func (uc *implUseCase) Clear(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return session.ErrUserRequired
	}
	uc.cache.Remove(userID)
	if err := uc.repo.DeleteByUserID(ctx, userID); err != nil {
		uc.l.Errorf(ctx, "uc.Clear DeleteByUserID: %v", err)
		return err
	}
	return nil
}

// clone copies the context map so cached values are never shared with callers.
func clone(sc session.SessionContext) session.SessionContext {
	sc.ContextData = maps.Clone(sc.ContextData)
	if sc.ContextData == nil {
		sc.ContextData = map[string]any{}
	}
	return sc
}
