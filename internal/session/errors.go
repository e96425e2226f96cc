package session

import "errors"

var (
	ErrUserRequired = errors.New("user id is required")
)
