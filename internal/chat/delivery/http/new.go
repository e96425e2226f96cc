package http

import (
	"outreach-agent/internal/chat"
	"outreach-agent/pkg/log"
)

type handler struct {
	l             log.Logger
	uc            chat.UseCase
	defaultUserID string
}

// New creates the HTTP handler for the chat domain. Requests without a
// userId are attributed to defaultUserID.
func New(l log.Logger, uc chat.UseCase, defaultUserID string) *handler {
	return &handler{l: l, uc: uc, defaultUserID: defaultUserID}
}
