package usecase

import (
	"context"
	"fmt"
	"strings"

	"outreach-agent/internal/agent/orchestrator"
	"outreach-agent/internal/chat"
	repo "outreach-agent/internal/chat/repository"
	"outreach-agent/internal/notify"
	"outreach-agent/internal/session"
)

// messageEvent is the payload of new_message.
type messageEvent struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return chat.SendMessageOutput{}, chat.ErrUserRequired
	}
	if strings.TrimSpace(input.Message) == "" {
		return chat.SendMessageOutput{}, chat.ErrMessageRequired
	}

	u, err := uc.users.EnsureUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage EnsureUser: %v", err)
		return chat.SendMessageOutput{}, err
	}

	userMsg, err := uc.repo.Create(ctx, repo.CreateOptions{
		UserID:     userID,
		SequenceID: input.SequenceID,
		Role:       chat.RoleUser,
		Content:    input.Message,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage Create user turn: %v", err)
		return chat.SendMessageOutput{}, err
	}
	uc.notifier.Emit(ctx, userID, notify.EventNewMessage, messageEvent{ID: userMsg.ID, Role: userMsg.Role, Content: userMsg.Content})

	recent, err := uc.repo.ListRecent(ctx, userID, uc.historyLimit)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage ListRecent: %v", err)
		uc.rollback(ctx, userMsg.ID)
		return chat.SendMessageOutput{}, err
	}

	var snap *session.Snapshot
	if s, err := uc.sessions.GetSessionContext(ctx, userID); err != nil {
		uc.l.Warnf(ctx, "uc.SendMessage GetSessionContext: %v", err)
	} else {
		snap = &s
	}

	uc.l.Info(ctx, "generating reply", "user_id", userID, "history", len(recent))
	reply, err := uc.responder.GenerateResponse(ctx, toTurns(recent), u.Info(), snap)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage GenerateResponse: %v", err)
		uc.rollback(ctx, userMsg.ID)
		return chat.SendMessageOutput{}, fmt.Errorf("%w: %w", chat.ErrGenerationFailed, err)
	}

	assistantMsg, err := uc.repo.Create(ctx, repo.CreateOptions{
		UserID:     userID,
		SequenceID: input.SequenceID,
		Role:       chat.RoleAssistant,
		Content:    reply.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage Create assistant turn: %v", err)
		return chat.SendMessageOutput{}, err
	}
	uc.notifier.Emit(ctx, userID, notify.EventNewMessage, messageEvent{ID: assistantMsg.ID, Role: assistantMsg.Role, Content: assistantMsg.Content})

	return chat.SendMessageOutput{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		ToolCalls:        reply.ToolCalls,
	}, nil
}

func (uc *implUseCase) History(ctx context.Context, input chat.HistoryInput) ([]chat.Message, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, chat.ErrUserRequired
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	msgs, err := uc.repo.ListByUser(ctx, input.UserID, limit)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListByUser: %v", err)
		return nil, err
	}
	return msgs, nil
}

// rollback removes a user turn that never got a reply.
func (uc *implUseCase) rollback(ctx context.Context, messageID string) {
	if err := uc.repo.Delete(ctx, messageID); err != nil {
		uc.l.Errorf(ctx, "uc.rollback Delete %s: %v", messageID, err)
	}
}

func toTurns(msgs []chat.Message) []orchestrator.Turn {
	turns := make([]orchestrator.Turn, len(msgs))
	for i, m := range msgs {
		turns[i] = orchestrator.Turn{ID: m.ID, Role: m.Role, Content: m.Content}
	}
	return turns
}
