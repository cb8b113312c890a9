package deadline

import "errors"

// Domain-specific errors for the deadline package.
var (
	ErrTaskNotFound = errors.New("task not found in current snapshot")
	ErrEmptyTaskID  = errors.New("task id is empty")
)
