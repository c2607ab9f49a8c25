// Package coordinator orchestrates the brief-to-artifact pipeline: decompose
// a brief into tasks (reasoning service first, rule-based fallback on any
// failure), route each task to its synthesizer group, and assemble the final
// artifact set.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/seedcode/briefforge/internal/classify"
	"github.com/seedcode/briefforge/internal/domain/artifact"
	"github.com/seedcode/briefforge/internal/domain/brief"
	"github.com/seedcode/briefforge/internal/domain/run"
	"github.com/seedcode/briefforge/internal/domain/task"
	"github.com/seedcode/briefforge/internal/reasoning"
	"github.com/seedcode/briefforge/internal/schema"
)

// Source identifies which decomposition path produced a task list.
type Source string

const (
	SourceReasoning Source = "reasoning"
	SourceFallback  Source = "fallback"
)

// TaskAnalyzer is the reasoning-service decomposition path.
type TaskAnalyzer interface {
	Analyze(ctx context.Context, b brief.ProjectBrief) ([]task.TechnicalTask, error)
}

// FallbackDecomposer is the rule-based decomposition path.
type FallbackDecomposer interface {
	Decompose(b brief.ProjectBrief) []task.TechnicalTask
}

// TaskSynthesizer produces artifacts from one task's text.
type TaskSynthesizer interface {
	Synthesize(t task.TechnicalTask) []artifact.GeneratedFile
}

// FixedSynthesizer produces artifacts independent of task text.
type FixedSynthesizer interface {
	Synthesize() []artifact.GeneratedFile
}

// RunRecorder persists decomposition history. Best-effort; a nil recorder
// disables persistence.
type RunRecorder interface {
	Record(ctx context.Context, r *run.Run) error
}

// AgentResponse is the per-task execution result.
type AgentResponse struct {
	TaskID  string                   `json:"task_id"`
	Success bool                     `json:"success"`
	Output  string                   `json:"output"`
	Files   []artifact.GeneratedFile `json:"files,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

// Decomposition is the result of Decompose.
type Decomposition struct {
	Tasks    []task.TechnicalTask `json:"tasks"`
	Plan     string               `json:"plan"`
	Analysis string               `json:"analysis"`
	Source   Source               `json:"source"`
}

// Execution is the result of Execute.
type Execution struct {
	Results  []AgentResponse `json:"results"`
	Summary  string          `json:"summary"`
	Insights string          `json:"insights"`
	Source   Source          `json:"source"`
}

// Coordinator is the top-level orchestrator.
type Coordinator struct {
	analyzer   TaskAnalyzer
	fallback   FallbackDecomposer
	classifier classify.Classifier

	schemaEngine *schema.Engine
	business     TaskSynthesizer
	scheduling   TaskSynthesizer
	frontend     TaskSynthesizer
	optimization FixedSynthesizer

	assembler *artifact.Assembler
	runs      RunRecorder
	logger    *slog.Logger
}

// Config wires a coordinator. Analyzer and Runs may be nil; a nil Analyzer
// forces the fallback path for every brief.
type Config struct {
	Analyzer     TaskAnalyzer
	Fallback     FallbackDecomposer
	Classifier   classify.Classifier
	SchemaEngine *schema.Engine
	Business     TaskSynthesizer
	Scheduling   TaskSynthesizer
	Frontend     TaskSynthesizer
	Optimization FixedSynthesizer
	Assembler    *artifact.Assembler
	Runs         RunRecorder
	Logger       *slog.Logger
}

// New creates a coordinator.
func New(cfg Config) *Coordinator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		analyzer:     cfg.Analyzer,
		fallback:     cfg.Fallback,
		classifier:   cfg.Classifier,
		schemaEngine: cfg.SchemaEngine,
		business:     cfg.Business,
		scheduling:   cfg.Scheduling,
		frontend:     cfg.Frontend,
		optimization: cfg.Optimization,
		assembler:    cfg.Assembler,
		runs:         cfg.Runs,
		logger:       logger,
	}
}

// Decompose converts a brief into tasks plus a textual plan and analysis.
func (c *Coordinator) Decompose(ctx context.Context, b brief.ProjectBrief) (*Decomposition, error) {
	if err := brief.Validate(b); err != nil {
		return nil, err
	}

	tasks, source := c.decomposeTasks(ctx, b)
	dec := &Decomposition{
		Tasks:    tasks,
		Plan:     buildPlan(tasks),
		Analysis: buildAnalysis(tasks, source),
		Source:   source,
	}

	c.recordRun(ctx, b, source, tasks, nil)
	return dec, nil
}

// Execute decomposes a brief and synthesizes artifacts for every task,
// strictly sequentially. One task's failure never halts the rest; the
// result always carries one AgentResponse per task.
func (c *Coordinator) Execute(ctx context.Context, b brief.ProjectBrief) (*Execution, error) {
	if err := brief.Validate(b); err != nil {
		return nil, err
	}

	tasks, source := c.decomposeTasks(ctx, b)
	results := make([]AgentResponse, 0, len(tasks))
	var allFiles []artifact.GeneratedFile

	for _, t := range tasks {
		resp := c.executeTask(t)
		allFiles = append(allFiles, resp.Files...)
		results = append(results, resp)
	}

	assembled := c.assembler.Assemble(allFiles)

	// Assemble preserves input order one-to-one, so the normalized paths
	// reslice back onto the responses that produced them.
	offset := 0
	for i := range results {
		n := len(results[i].Files)
		if n == 0 {
			continue
		}
		results[i].Files = assembled[offset : offset+n]
		offset += n
	}

	exec := &Execution{
		Results:  results,
		Summary:  buildSummary(results, assembled),
		Insights: buildAnalysis(tasks, source),
		Source:   source,
	}

	c.recordRun(ctx, b, source, tasks, assembled)
	return exec, nil
}

// decomposeTasks tries the reasoning path once; any failure switches the
// brief to the fallback path entirely. There is no per-task mixed sourcing.
func (c *Coordinator) decomposeTasks(ctx context.Context, b brief.ProjectBrief) ([]task.TechnicalTask, Source) {
	if c.analyzer == nil {
		return c.fallback.Decompose(b), SourceFallback
	}

	tasks, err := c.analyzer.Analyze(ctx, b)
	if err != nil {
		switch {
		case errors.Is(err, reasoning.ErrServiceUnavailable):
			c.logger.Warn("reasoning service unavailable, using fallback", "error", err)
		case errors.Is(err, reasoning.ErrMalformedResponse):
			c.logger.Warn("reasoning response unparseable, using fallback", "error", err)
		default:
			c.logger.Warn("reasoning analysis failed, using fallback", "error", err)
		}
		return c.fallback.Decompose(b), SourceFallback
	}
	return tasks, SourceReasoning
}

// executeTask dispatches one task to its synthesizer group. Synthesizer
// panics are contained here so a bad task cannot take down the batch.
func (c *Coordinator) executeTask(t task.TechnicalTask) (resp AgentResponse) {
	resp = AgentResponse{TaskID: t.ID}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("synthesis panicked", "task", t.ID, "panic", r)
			resp.Success = false
			resp.Files = nil
			resp.Error = fmt.Sprintf("synthesis failed: %v", r)
		}
	}()

	if err := task.ValidateForRouting(t); err != nil {
		resp.Error = err.Error()
		return resp
	}

	switch t.Type {
	case task.TypeBackend:
		resp.Files = c.synthesizeBackend(t)
	case task.TypeFrontend:
		resp.Files = c.frontend.Synthesize(t)
	}

	resp.Success = true
	resp.Output = fmt.Sprintf("Generated %d artifact(s) for %q", len(resp.Files), t.Title)
	return resp
}

func (c *Coordinator) synthesizeBackend(t task.TechnicalTask) []artifact.GeneratedFile {
	files := make([]artifact.GeneratedFile, 0, 8)

	tables := c.schemaEngine.InferSchema(t)
	if len(tables) > 0 {
		files = append(files, artifact.GeneratedFile{
			Path:    "models/schema.sql",
			Content: schema.EmitSQL(tables, schema.DialectPostgres),
			Type:    artifact.TypeSchema,
		})
	}

	files = append(files, c.business.Synthesize(t)...)
	files = append(files, c.scheduling.Synthesize(t)...)

	if c.classifier.Matches(t.CombinedText(), classify.FamilyOptimization) {
		files = append(files, c.optimization.Synthesize()...)
	}

	return files
}

// recordRun persists history best-effort; failures are logged, never
// surfaced to the caller.
func (c *Coordinator) recordRun(ctx context.Context, b brief.ProjectBrief, source Source, tasks []task.TechnicalTask, files []artifact.GeneratedFile) {
	if c.runs == nil {
		return
	}

	r := run.New(b.Description, string(source))
	for _, t := range tasks {
		r.Tasks = append(r.Tasks, run.TaskRecord{
			TaskID:   t.ID,
			Title:    t.Title,
			Type:     string(t.Type),
			Priority: string(t.Priority),
		})
	}
	for _, f := range files {
		r.Artifacts = append(r.Artifacts, run.ArtifactRecord{
			Path: f.Path,
			Type: string(f.Type),
		})
	}

	if err := c.runs.Record(ctx, r); err != nil {
		c.logger.Warn("failed to record run", "error", err)
	}
}
