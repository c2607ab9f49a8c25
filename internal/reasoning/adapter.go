// Package reasoning wraps the external text-reasoning service used for task
// decomposition. The adapter negotiates a working model once per instance and
// parses free-text responses into technical tasks, defaulting missing fields
// rather than rejecting a batch.
package reasoning

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/seedcode/briefforge/internal/domain/brief"
	"github.com/seedcode/briefforge/internal/domain/task"
)

// Generator issues one completion against a named model.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Candidate model identifiers, newest first. The first to answer a probe is
// cached for the adapter's lifetime.
var defaultCandidates = []string{
	"gemini-3-flash-preview",
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-2.0-flash",
}

// Adapter calls the reasoning service to decompose briefs.
type Adapter struct {
	generator  Generator
	candidates []string
	logger     *slog.Logger

	// Negotiated model identifier. Instance state, never module-level;
	// single-writer because coordinator calls are sequential.
	model string
}

// NewAdapter creates an adapter over the given generator.
func NewAdapter(generator Generator, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		generator:  generator,
		candidates: defaultCandidates,
		logger:     logger,
	}
}

// Analyze decomposes a brief into technical tasks via the reasoning service.
// It fails with ErrServiceUnavailable when no candidate model responds and
// ErrMalformedResponse when the reply contains no parseable task array.
func (a *Adapter) Analyze(ctx context.Context, b brief.ProjectBrief) ([]task.TechnicalTask, error) {
	if err := a.negotiate(ctx); err != nil {
		return nil, err
	}

	resp, err := a.generator.Generate(ctx, a.model, buildPrompt(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	tasks, err := parseTasks(resp)
	if err != nil {
		return nil, err
	}

	a.logger.Info("reasoning service decomposed brief",
		"model", a.model, "tasks", len(tasks))
	return tasks, nil
}

// negotiate probes candidate models in order and caches the first that
// answers. A one-time warm-up per adapter instance.
func (a *Adapter) negotiate(ctx context.Context) error {
	if a.model != "" {
		return nil
	}

	for _, candidate := range a.candidates {
		if _, err := a.generator.Generate(ctx, candidate, "Reply with the single word: ok"); err != nil {
			a.logger.Debug("model probe failed", "model", candidate, "error", err)
			continue
		}
		a.model = candidate
		a.logger.Info("negotiated reasoning model", "model", candidate)
		return nil
	}

	return fmt.Errorf("%w: no candidate model responded", ErrServiceUnavailable)
}

func buildPrompt(b brief.ProjectBrief) string {
	var sb strings.Builder

	sb.WriteString("You are a technical project planner. Decompose the following project brief into technical tasks.\n\n")
	sb.WriteString("PROJECT DESCRIPTION:\n")
	sb.WriteString(b.Description)
	sb.WriteString("\n")

	if len(b.Requirements) > 0 {
		sb.WriteString("\nREQUIREMENTS:\n")
		for _, r := range b.Requirements {
			sb.WriteString("- ")
			sb.WriteString(r)
			sb.WriteString("\n")
		}
	}
	if len(b.Constraints) > 0 {
		sb.WriteString("\nCONSTRAINTS:\n")
		for _, c := range b.Constraints {
			sb.WriteString("- ")
			sb.WriteString(c)
			sb.WriteString("\n")
		}
	}
	if b.Timeline != "" {
		sb.WriteString("\nTIMELINE: ")
		sb.WriteString(b.Timeline)
		sb.WriteString("\n")
	}

	sb.WriteString(`
Produce 4-8 tasks as a JSON array. Each element must have:
{"title": "...", "description": "...", "type": "frontend|backend", "priority": "low|medium|high", "acceptance_criteria": ["..."]}

Output ONLY the JSON array.`)

	return sb.String()
}
