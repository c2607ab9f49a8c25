package integration_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/classify"
	"github.com/seedcode/briefforge/internal/coordinator"
	"github.com/seedcode/briefforge/internal/domain/artifact"
	"github.com/seedcode/briefforge/internal/domain/brief"
	"github.com/seedcode/briefforge/internal/domain/run"
	"github.com/seedcode/briefforge/internal/fallback"
	"github.com/seedcode/briefforge/internal/schema"
	"github.com/seedcode/briefforge/internal/sqlite"
	"github.com/seedcode/briefforge/internal/synth/business"
	"github.com/seedcode/briefforge/internal/synth/frontend"
	"github.com/seedcode/briefforge/internal/synth/optimize"
	"github.com/seedcode/briefforge/internal/synth/scheduling"
)

type testEnv struct {
	db      *sqlite.DB
	runRepo *sqlite.RunRepository
	runSvc  *run.Service
	coord   *coordinator.Coordinator
}

// newTestEnv wires the full pipeline against an in-memory database with no
// reasoning client, so every brief takes the fallback path deterministically.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	runRepo := sqlite.NewRunRepository(db)
	runSvc := run.NewService(runRepo, logger)

	classifier := classify.NewKeywordClassifier()
	coord := coordinator.New(coordinator.Config{
		Fallback:     fallback.NewDecomposer(logger),
		Classifier:   classifier,
		SchemaEngine: schema.NewEngine(classifier, logger),
		Business:     business.NewSynthesizer(classifier, logger),
		Scheduling:   scheduling.NewSynthesizer(classifier, logger),
		Frontend:     frontend.NewSynthesizer(classifier, logger),
		Optimization: optimize.NewSynthesizer(),
		Assembler:    artifact.NewAssembler(logger),
		Runs:         runSvc,
		Logger:       logger,
	})

	return &testEnv{db: db, runRepo: runRepo, runSvc: runSvc, coord: coord}
}

func TestIntegration_ExecuteBriefRecordsRun(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	exec, err := env.coord.Execute(ctx, brief.ProjectBrief{
		Description: "Build a todo app with user authentication and task sharing",
	})
	require.NoError(t, err)
	require.Equal(t, coordinator.SourceFallback, exec.Source)
	require.NotEmpty(t, exec.Results)

	for _, resp := range exec.Results {
		require.True(t, resp.Success, "task %s failed: %s", resp.TaskID, resp.Error)
	}

	summaries, err := env.runSvc.List(ctx, run.ListOptions{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "fallback", summaries[0].Source)
	require.Equal(t, len(exec.Results), summaries[0].TaskCount)

	stored, err := env.runSvc.Get(ctx, summaries[0].ID)
	require.NoError(t, err)
	require.Len(t, stored.Tasks, len(exec.Results))
	require.NotEmpty(t, stored.Artifacts)

	// Assembled artifact paths are unique and project-rooted.
	seen := map[string]bool{}
	for _, a := range stored.Artifacts {
		require.False(t, seen[a.Path], "duplicate artifact path %s", a.Path)
		seen[a.Path] = true
		require.True(t,
			strings.HasPrefix(a.Path, "backend/src/") || strings.HasPrefix(a.Path, "frontend/src/"),
			"unexpected artifact root: %s", a.Path)
	}
}

func TestIntegration_DecomposeDoesNotGenerateArtifacts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	dec, err := env.coord.Decompose(ctx, brief.ProjectBrief{
		Description: "Build an online shop with products and a shopping cart",
	})
	require.NoError(t, err)
	require.NotEmpty(t, dec.Tasks)
	require.Contains(t, dec.Plan, "Execution Plan")
	require.Contains(t, dec.Analysis, "rule-based")

	stored, err := env.runSvc.List(ctx, run.ListOptions{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Zero(t, stored[0].ArtifactCount)
}

func TestIntegration_EmptyBriefRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.coord.Execute(ctx, brief.ProjectBrief{Description: "   "})
	require.ErrorIs(t, err, brief.ErrEmptyDescription)

	stored, err := env.runSvc.List(ctx, run.ListOptions{})
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestIntegration_ListRunsFiltersBySource(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.coord.Decompose(ctx, brief.ProjectBrief{Description: "Build a task tracker"})
	require.NoError(t, err)
	_, err = env.coord.Decompose(ctx, brief.ProjectBrief{Description: "Build a wiki"})
	require.NoError(t, err)

	all, err := env.runSvc.List(ctx, run.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	none, err := env.runSvc.List(ctx, run.ListOptions{Source: "reasoning"})
	require.NoError(t, err)
	require.Empty(t, none)
}
