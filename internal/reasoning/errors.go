package reasoning

import "errors"

var (
	// ErrServiceUnavailable indicates no candidate model responded.
	ErrServiceUnavailable = errors.New("reasoning service unavailable")
	// ErrMalformedResponse indicates the service replied but no parseable
	// task array was found.
	ErrMalformedResponse = errors.New("malformed reasoning response")
)
