package coordinator

import (
	"fmt"
	"strings"

	"github.com/seedcode/briefforge/internal/domain/artifact"
	"github.com/seedcode/briefforge/internal/domain/task"
)

// buildPlan renders the execution plan text: backend work first, then
// frontend, with per-task priorities and an hour total per group.
func buildPlan(tasks []task.TechnicalTask) string {
	var sb strings.Builder
	sb.WriteString("# Execution Plan\n\n")

	writeGroup(&sb, "Backend", filterByType(tasks, task.TypeBackend))
	writeGroup(&sb, "Frontend", filterByType(tasks, task.TypeFrontend))

	total := 0.0
	for _, t := range tasks {
		total += t.EstimatedHours
	}
	fmt.Fprintf(&sb, "Total: %d task(s), ~%.0f hours\n", len(tasks), total)

	return sb.String()
}

func writeGroup(sb *strings.Builder, label string, tasks []task.TechnicalTask) {
	if len(tasks) == 0 {
		return
	}

	hours := 0.0
	fmt.Fprintf(sb, "## %s\n\n", label)
	for i, t := range tasks {
		fmt.Fprintf(sb, "%d. %s [%s]", i+1, t.Title, t.Priority)
		if t.EstimatedHours > 0 {
			fmt.Fprintf(sb, " (~%.0fh)", t.EstimatedHours)
		}
		sb.WriteString("\n")
		if t.Description != "" {
			fmt.Fprintf(sb, "   %s\n", t.Description)
		}
		hours += t.EstimatedHours
	}
	fmt.Fprintf(sb, "\n%s subtotal: ~%.0f hours\n\n", label, hours)
}

func filterByType(tasks []task.TechnicalTask, typ task.Type) []task.TechnicalTask {
	out := make([]task.TechnicalTask, 0, len(tasks))
	for _, t := range tasks {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}

// buildSummary condenses execution results into a short report.
func buildSummary(results []AgentResponse, files []artifact.GeneratedFile) string {
	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Executed %d task(s): %d succeeded, %d failed. Generated %d artifact(s).\n",
		len(results), succeeded, len(results)-succeeded, len(files))

	if len(files) > 0 {
		sb.WriteString("\nArtifacts:\n")
		for _, f := range files {
			fmt.Fprintf(&sb, "- %s (%s)\n", f.Path, f.Type)
		}
	}

	for _, r := range results {
		if !r.Success {
			fmt.Fprintf(&sb, "\nFailed task %s: %s\n", r.TaskID, r.Error)
		}
	}

	return sb.String()
}
