package coordinator_test

import (
	"context"
	"errors"
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
	"github.com/seedcode/briefforge/internal/domain/task"
	"github.com/seedcode/briefforge/internal/fallback"
	"github.com/seedcode/briefforge/internal/reasoning"
	"github.com/seedcode/briefforge/internal/schema"
	"github.com/seedcode/briefforge/internal/synth/business"
	"github.com/seedcode/briefforge/internal/synth/frontend"
	"github.com/seedcode/briefforge/internal/synth/optimize"
	"github.com/seedcode/briefforge/internal/synth/scheduling"
)

type stubAnalyzer struct {
	tasks []task.TechnicalTask
	err   error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, b brief.ProjectBrief) ([]task.TechnicalTask, error) {
	return s.tasks, s.err
}

type panicSynth struct{}

func (panicSynth) Synthesize(t task.TechnicalTask) []artifact.GeneratedFile {
	panic("template exploded")
}

type recordingRuns struct {
	recorded []*run.Run
	err      error
}

func (r *recordingRuns) Record(ctx context.Context, rn *run.Run) error {
	r.recorded = append(r.recorded, rn)
	return r.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newConfig() coordinator.Config {
	classifier := classify.NewKeywordClassifier()
	logger := testLogger()
	return coordinator.Config{
		Fallback:     fallback.NewDecomposer(logger),
		Classifier:   classifier,
		SchemaEngine: schema.NewEngine(classifier, logger),
		Business:     business.NewSynthesizer(classifier, logger),
		Scheduling:   scheduling.NewSynthesizer(classifier, logger),
		Frontend:     frontend.NewSynthesizer(classifier, logger),
		Optimization: optimize.NewSynthesizer(),
		Assembler:    artifact.NewAssembler(logger),
		Logger:       logger,
	}
}

func analyzedTask(id, title string, typ task.Type) task.TechnicalTask {
	return task.TechnicalTask{
		ID: id, Title: title, Type: typ, Priority: task.PriorityMedium,
		AcceptanceCriteria: []string{"done"},
	}
}

func TestDecompose_EmptyBrief(t *testing.T) {
	c := coordinator.New(newConfig())
	_, err := c.Decompose(context.Background(), brief.ProjectBrief{Description: " "})
	require.ErrorIs(t, err, brief.ErrEmptyDescription)
}

func TestDecompose_UsesReasoningWhenAvailable(t *testing.T) {
	cfg := newConfig()
	cfg.Analyzer = &stubAnalyzer{tasks: []task.TechnicalTask{
		analyzedTask("a1", "Auth API", task.TypeBackend),
		analyzedTask("a2", "Auth UI", task.TypeFrontend),
	}}
	c := coordinator.New(cfg)

	dec, err := c.Decompose(context.Background(), brief.ProjectBrief{Description: "an app"})
	require.NoError(t, err)
	require.Equal(t, coordinator.SourceReasoning, dec.Source)
	require.Len(t, dec.Tasks, 2)
	require.NotContains(t, dec.Analysis, "rule-based")
}

func TestDecompose_FallsBackOnServiceFailure(t *testing.T) {
	cases := []error{
		fmt.Errorf("probe: %w", reasoning.ErrServiceUnavailable),
		fmt.Errorf("parse: %w", reasoning.ErrMalformedResponse),
		errors.New("boom"),
	}

	for _, failure := range cases {
		cfg := newConfig()
		cfg.Analyzer = &stubAnalyzer{err: failure}
		c := coordinator.New(cfg)

		dec, err := c.Decompose(context.Background(), brief.ProjectBrief{Description: "a todo app"})
		require.NoError(t, err)
		require.Equal(t, coordinator.SourceFallback, dec.Source)
		require.NotEmpty(t, dec.Tasks)
		require.Contains(t, dec.Analysis, "rule-based")
	}
}

func TestDecompose_NilAnalyzerUsesFallback(t *testing.T) {
	c := coordinator.New(newConfig())
	dec, err := c.Decompose(context.Background(), brief.ProjectBrief{Description: "a wiki"})
	require.NoError(t, err)
	require.Equal(t, coordinator.SourceFallback, dec.Source)
}

func TestDecompose_PlanGroupsBackendBeforeFrontend(t *testing.T) {
	cfg := newConfig()
	cfg.Analyzer = &stubAnalyzer{tasks: []task.TechnicalTask{
		analyzedTask("f1", "Dashboard UI", task.TypeFrontend),
		analyzedTask("b1", "Core API", task.TypeBackend),
	}}
	c := coordinator.New(cfg)

	dec, err := c.Decompose(context.Background(), brief.ProjectBrief{Description: "an app"})
	require.NoError(t, err)

	backendAt := strings.Index(dec.Plan, "## Backend")
	frontendAt := strings.Index(dec.Plan, "## Frontend")
	require.Greater(t, backendAt, -1)
	require.Greater(t, frontendAt, backendAt)
	require.Contains(t, dec.Plan, "Core API")
}

func TestExecute_OneResponsePerTask(t *testing.T) {
	cfg := newConfig()
	cfg.Analyzer = &stubAnalyzer{tasks: []task.TechnicalTask{
		analyzedTask("b1", "Task sharing with users", task.TypeBackend),
		analyzedTask("f1", "Task board UI", task.TypeFrontend),
		analyzedTask("b2", "Infra wiring", task.TypeBackend),
	}}
	c := coordinator.New(cfg)

	exec, err := c.Execute(context.Background(), brief.ProjectBrief{Description: "an app"})
	require.NoError(t, err)
	require.Len(t, exec.Results, 3)
	for _, resp := range exec.Results {
		require.True(t, resp.Success)
	}
}

func TestExecute_InvalidTaskFailsWithoutHaltingOthers(t *testing.T) {
	cfg := newConfig()
	cfg.Analyzer = &stubAnalyzer{tasks: []task.TechnicalTask{
		{ID: "bad", Title: "No type", Priority: task.PriorityLow},
		analyzedTask("ok", "Task API", task.TypeBackend),
	}}
	c := coordinator.New(cfg)

	exec, err := c.Execute(context.Background(), brief.ProjectBrief{Description: "an app"})
	require.NoError(t, err)
	require.Len(t, exec.Results, 2)

	require.False(t, exec.Results[0].Success)
	require.NotEmpty(t, exec.Results[0].Error)
	require.True(t, exec.Results[1].Success)
	require.Contains(t, exec.Summary, "1 failed")
}

func TestExecute_SynthesizerPanicIsContained(t *testing.T) {
	cfg := newConfig()
	cfg.Business = panicSynth{}
	cfg.Analyzer = &stubAnalyzer{tasks: []task.TechnicalTask{
		analyzedTask("b1", "Task API", task.TypeBackend),
		analyzedTask("f1", "Board UI with tasks", task.TypeFrontend),
	}}
	c := coordinator.New(cfg)

	exec, err := c.Execute(context.Background(), brief.ProjectBrief{Description: "an app"})
	require.NoError(t, err)
	require.Len(t, exec.Results, 2)

	require.False(t, exec.Results[0].Success)
	require.Contains(t, exec.Results[0].Error, "synthesis failed")
	require.Empty(t, exec.Results[0].Files)
	require.True(t, exec.Results[1].Success)
}

func TestExecute_ResultFilesAreNormalizedAndUnique(t *testing.T) {
	cfg := newConfig()
	cfg.Analyzer = &stubAnalyzer{tasks: []task.TechnicalTask{
		analyzedTask("b1", "Users share tasks", task.TypeBackend),
		analyzedTask("b2", "Comment threads for tasks", task.TypeBackend),
	}}
	c := coordinator.New(cfg)

	exec, err := c.Execute(context.Background(), brief.ProjectBrief{Description: "an app"})
	require.NoError(t, err)
	require.Len(t, exec.Results, 2)

	// Both tasks emit a models/schema.sql; the caller-visible files must
	// carry the normalized, collision-renamed paths.
	seen := map[string]bool{}
	for _, resp := range exec.Results {
		require.True(t, resp.Success)
		require.NotEmpty(t, resp.Files)
		for _, f := range resp.Files {
			require.True(t, strings.HasPrefix(f.Path, "backend/src/") ||
				strings.HasPrefix(f.Path, "frontend/src/"), "path %s", f.Path)
			require.False(t, seen[f.Path], "duplicate path %s", f.Path)
			seen[f.Path] = true
		}
	}
}

func TestExecute_ArtifactPathsAssembled(t *testing.T) {
	cfg := newConfig()
	cfg.Analyzer = &stubAnalyzer{tasks: []task.TechnicalTask{
		analyzedTask("b1", "Users share tasks", task.TypeBackend),
	}}
	runs := &recordingRuns{}
	cfg.Runs = runs
	c := coordinator.New(cfg)

	exec, err := c.Execute(context.Background(), brief.ProjectBrief{Description: "an app"})
	require.NoError(t, err)
	require.True(t, exec.Results[0].Success)

	require.Len(t, runs.recorded, 1)
	recorded := runs.recorded[0]
	require.Equal(t, "reasoning", recorded.Source)
	require.NotEmpty(t, recorded.Artifacts)
	for _, a := range recorded.Artifacts {
		require.True(t, strings.HasPrefix(a.Path, "backend/src/") ||
			strings.HasPrefix(a.Path, "frontend/src/"), "path %s", a.Path)
	}
}

func TestExecute_RunRecordingFailureIsSwallowed(t *testing.T) {
	cfg := newConfig()
	cfg.Runs = &recordingRuns{err: errors.New("disk full")}
	c := coordinator.New(cfg)

	_, err := c.Execute(context.Background(), brief.ProjectBrief{Description: "a todo app"})
	require.NoError(t, err)
}
