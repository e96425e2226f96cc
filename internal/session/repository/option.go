package repository

import "time"

type CreateOptions struct {
	UserID string
}

// UpdateOptions carries the full row state; every field is written.
type UpdateOptions struct {
	UserID           string
	ActiveSequenceID string
	LastAction       string
	LastActionTime   *time.Time
	ContextData      map[string]any
}
