package chat

import "errors"

var (
	ErrUserRequired     = errors.New("user id is required")
	ErrMessageRequired  = errors.New("message is required")
	ErrGenerationFailed = errors.New("failed to generate a response")
)
