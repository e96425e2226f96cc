package usecase

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"outreach-agent/internal/sequence"
	"outreach-agent/internal/session"
	"outreach-agent/internal/session/repository"
	"outreach-agent/pkg/log"
)

const defaultCacheSize = 512

// SequenceReader is the slice of the sequence use case needed for summaries.
type SequenceReader interface {
	Detail(ctx context.Context, id string) (sequence.Sequence, error)
}

// implUseCase is the private implementation of session.UseCase.
type implUseCase struct {
	repo      repository.Repository
	sequences SequenceReader
	cache     *lru.Cache[string, session.SessionContext]
	l         log.Logger
	now       func() time.Time
}

// New creates a session UseCase with an in-process LRU in front of the repository.
func New(repo repository.Repository, sequences SequenceReader, l log.Logger, cacheSize int) (*implUseCase, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, session.SessionContext](cacheSize)
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		repo:      repo,
		sequences: sequences,
		cache:     cache,
		l:         l,
		now:       time.Now,
	}, nil
}
