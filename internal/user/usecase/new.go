package usecase

import (
	"outreach-agent/internal/user/repository"
	"outreach-agent/pkg/log"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a user UseCase.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}
