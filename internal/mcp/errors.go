package mcp

import (
	"errors"
	"fmt"

	"github.com/seedcode/briefforge/internal/domain/brief"
	"github.com/seedcode/briefforge/internal/domain/run"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors pass
// through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, brief.ErrEmptyDescription):
		return &APIError{Code: "EMPTY_BRIEF", Message: "brief description is empty", RecoveryHint: "Provide a non-empty description"}
	case errors.Is(err, run.ErrNotFound):
		return &APIError{Code: "RUN_NOT_FOUND", Message: "run not found", RecoveryHint: "Check the run ID with list_runs"}
	case errors.Is(err, run.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid input", RecoveryHint: "Check required fields"}
	default:
		return err
	}
}
