package task

import "errors"

var (
	// ErrMissingID indicates a task with no identifier.
	ErrMissingID = errors.New("task id is required")
	// ErrMissingTitle indicates a task with no title.
	ErrMissingTitle = errors.New("task title is required")
	// ErrInvalidType indicates an unknown routing type.
	ErrInvalidType = errors.New("invalid task type")
	// ErrInvalidPriority indicates an unknown priority tier.
	ErrInvalidPriority = errors.New("invalid task priority")
)
