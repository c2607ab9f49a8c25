package fallback_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/domain/brief"
	"github.com/seedcode/briefforge/internal/domain/task"
	"github.com/seedcode/briefforge/internal/fallback"
)

func newDecomposer() *fallback.Decomposer {
	return fallback.NewDecomposer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDecompose_AuthBrief(t *testing.T) {
	d := newDecomposer()
	tasks := d.Decompose(brief.ProjectBrief{
		Description: "Build a todo app with user authentication",
	})

	var auth *task.TechnicalTask
	for i := range tasks {
		if tasks[i].Title == "User Authentication" {
			auth = &tasks[i]
		}
	}
	require.NotNil(t, auth)
	require.Equal(t, task.TypeBackend, auth.Type)
	require.Equal(t, task.PriorityHigh, auth.Priority)
	require.GreaterOrEqual(t, len(auth.AcceptanceCriteria), 4)
	require.NotEmpty(t, auth.ID)
}

func TestDecompose_MultipleFamiliesUnion(t *testing.T) {
	d := newDecomposer()
	tasks := d.Decompose(brief.ProjectBrief{
		Description: "An online shop where teams share product todo lists",
	})

	titles := make([]string, 0, len(tasks))
	for _, tk := range tasks {
		titles = append(titles, tk.Title)
	}
	require.Contains(t, titles, "Task Management API")
	require.Contains(t, titles, "Product Catalog API")
	require.Contains(t, titles, "Sharing and Permissions")
}

func TestDecompose_BaselineSkeletonWhenNothingMatches(t *testing.T) {
	d := newDecomposer()
	tasks := d.Decompose(brief.ProjectBrief{
		Description: "Something entirely unclassifiable",
	})

	require.Len(t, tasks, 8)
	hasBackend, hasFrontend := false, false
	for _, tk := range tasks {
		require.NoError(t, task.ValidateForRouting(tk))
		if tk.Type == task.TypeBackend {
			hasBackend = true
		}
		if tk.Type == task.TypeFrontend {
			hasFrontend = true
		}
	}
	require.True(t, hasBackend)
	require.True(t, hasFrontend)
}

func TestDecompose_NeverEmpty(t *testing.T) {
	d := newDecomposer()
	for _, desc := range []string{"x", "hello world", "quantum basket weaving"} {
		require.NotEmpty(t, d.Decompose(brief.ProjectBrief{Description: desc}))
	}
}

func TestDecompose_UniqueIDs(t *testing.T) {
	d := newDecomposer()
	tasks := d.Decompose(brief.ProjectBrief{
		Description: "users share tasks in a shop",
	})

	seen := map[string]bool{}
	for _, tk := range tasks {
		require.False(t, seen[tk.ID])
		seen[tk.ID] = true
	}
}
