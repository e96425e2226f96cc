package sequence

import "errors"

var (
	ErrSequenceNotFound  = errors.New("sequence not found")
	ErrStepNotFound      = errors.New("step not found")
	ErrPositionRequired  = errors.New("position is required")
	ErrStepsRequired     = errors.New("at least one step is required")
	ErrStepRequired      = errors.New("step id or sequence id is required")
	ErrFeedbackRequired  = errors.New("feedback or content is required")
	ErrInvalidGeneration = errors.New("model returned no usable sequence")
)
