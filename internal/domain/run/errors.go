package run

import "errors"

var (
	// ErrNotFound is returned when a run doesn't exist.
	ErrNotFound = errors.New("run not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
