package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/domain/run"
	"github.com/seedcode/briefforge/internal/repository"
)

func sampleRun(id string) *run.Run {
	return &run.Run{
		ID:     id,
		Brief:  "Build a todo app",
		Source: "fallback",
		Tasks: []run.TaskRecord{
			{TaskID: "t1", Title: "User Authentication", Type: "backend", Priority: "high"},
			{TaskID: "t2", Title: "Task Board UI", Type: "frontend", Priority: "medium"},
		},
		Artifacts: []run.ArtifactRecord{
			{Path: "backend/src/models/schema.sql", Type: "schema"},
			{Path: "backend/src/services/taskLifecycleService.ts", Type: "api"},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestRunRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewRunRepository(db)

	require.NoError(t, repo.Create(ctx, sampleRun("r1")))

	got, err := repo.Get(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, "Build a todo app", got.Brief)
	require.Equal(t, "fallback", got.Source)

	require.Len(t, got.Tasks, 2)
	require.Equal(t, "User Authentication", got.Tasks[0].Title)
	require.Equal(t, "t2", got.Tasks[1].TaskID)

	require.Len(t, got.Artifacts, 2)
	require.Equal(t, "backend/src/models/schema.sql", got.Artifacts[0].Path)
	require.Equal(t, "api", got.Artifacts[1].Type)
}

func TestRunRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewRunRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRunRepository_List(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewRunRepository(db)

	first := sampleRun("r1")
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, first))

	second := sampleRun("r2")
	second.Source = "reasoning"
	second.Artifacts = nil
	require.NoError(t, repo.Create(ctx, second))

	summaries, err := repo.List(ctx, run.ListOptions{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest first
	require.Equal(t, "r2", summaries[0].ID)
	require.Equal(t, 2, summaries[0].TaskCount)
	require.Equal(t, 0, summaries[0].ArtifactCount)
	require.Equal(t, "r1", summaries[1].ID)
	require.Equal(t, 2, summaries[1].ArtifactCount)

	filtered, err := repo.List(ctx, run.ListOptions{Source: "reasoning"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "r2", filtered[0].ID)

	limited, err := repo.List(ctx, run.ListOptions{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, "r1", limited[0].ID)
}

func TestRunRepository_DuplicateIDRejected(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewRunRepository(db)

	require.NoError(t, repo.Create(ctx, sampleRun("r1")))
	require.Error(t, repo.Create(ctx, sampleRun("r1")))
}
