package usecase

import (
	"context"

	"outreach-agent/internal/agent/orchestrator"
	"outreach-agent/internal/agent/output"
	"outreach-agent/internal/chat/repository"
	"outreach-agent/internal/notify"
	"outreach-agent/internal/session"
	"outreach-agent/internal/user"
	"outreach-agent/pkg/log"
)

const (
	defaultHistoryLimit = 10
	defaultPageLimit    = 20
	maxPageLimit        = 100
)

// Responder produces the assistant reply for a conversation.
type Responder interface {
	GenerateResponse(ctx context.Context, history []orchestrator.Turn, info user.Info, snap *session.Snapshot) (output.Processed, error)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo         repository.Repository
	users        user.UseCase
	sessions     session.UseCase
	responder    Responder
	notifier     notify.Notifier
	l            log.Logger
	historyLimit int
}

// New creates a chat UseCase. historyLimit is the number of turns sent to the model.
func New(
	repo repository.Repository,
	users user.UseCase,
	sessions session.UseCase,
	responder Responder,
	notifier notify.Notifier,
	l log.Logger,
	historyLimit int,
) *implUseCase {
	if notifier == nil {
		notifier = notify.Nop()
	}
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &implUseCase{
		repo:         repo,
		users:        users,
		sessions:     sessions,
		responder:    responder,
		notifier:     notifier,
		l:            l,
		historyLimit: historyLimit,
	}
}
