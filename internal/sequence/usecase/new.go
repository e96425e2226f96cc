package usecase

import (
	"outreach-agent/internal/notify"
	"outreach-agent/internal/sequence/repository"
	"outreach-agent/internal/user"
	"outreach-agent/pkg/llmprovider"
	"outreach-agent/pkg/log"
)

// implUseCase is the private implementation of sequence.UseCase.
type implUseCase struct {
	repo          repository.Repository
	users         user.UseCase
	llm           llmprovider.Generator
	notifier      notify.Notifier
	l             log.Logger
	defaultUserID string
}

// New creates a sequence UseCase. defaultUserID owns sequences created without a user.
func New(
	repo repository.Repository,
	users user.UseCase,
	llm llmprovider.Generator,
	notifier notify.Notifier,
	l log.Logger,
	defaultUserID string,
) *implUseCase {
	if notifier == nil {
		notifier = notify.Nop()
	}
	if defaultUserID == "" {
		defaultUserID = DefaultUserID
	}
	return &implUseCase{
		repo:          repo,
		users:         users,
		llm:           llm,
		notifier:      notifier,
		l:             l,
		defaultUserID: defaultUserID,
	}
}
