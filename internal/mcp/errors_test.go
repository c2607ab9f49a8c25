package mcp_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/domain/brief"
	"github.com/seedcode/briefforge/internal/domain/run"
	"github.com/seedcode/briefforge/internal/mcp"
)

func TestMapError(t *testing.T) {
	require.NoError(t, mcp.MapError(nil))

	var apiErr *mcp.APIError

	err := mcp.MapError(brief.ErrEmptyDescription)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "EMPTY_BRIEF", apiErr.Code)

	err = mcp.MapError(fmt.Errorf("getting run: %w", run.ErrNotFound))
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "RUN_NOT_FOUND", apiErr.Code)

	err = mcp.MapError(run.ErrInvalidInput)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "INVALID_INPUT", apiErr.Code)

	unknown := errors.New("mystery")
	require.Equal(t, unknown, mcp.MapError(unknown))
}
