package http

import (
	"outreach-agent/internal/sequence"
	"outreach-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc sequence.UseCase
}

// New creates the HTTP handler for the sequence domain.
func New(l log.Logger, uc sequence.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
