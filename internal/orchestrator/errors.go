package orchestrator

import "errors"

// ErrInvalidInput matches every ValidationError.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError is a local gating failure. Message is shown to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
