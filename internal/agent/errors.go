package agent

import "errors"

var (
	ErrInvalidToolDefinition = errors.New("invalid tool definition")
	ErrInvalidArguments      = errors.New("invalid tool arguments")
)
