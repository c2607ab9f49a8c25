package brief

import (
	"errors"
	"strings"
)

// ErrEmptyDescription indicates a brief with no usable description.
var ErrEmptyDescription = errors.New("brief description is empty")

// Validate checks that a brief carries enough text to decompose.
func Validate(b ProjectBrief) error {
	if strings.TrimSpace(b.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}
