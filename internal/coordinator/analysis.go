package coordinator

import (
	"fmt"
	"strings"

	"github.com/seedcode/briefforge/internal/domain/task"
)

// buildAnalysis produces the human-readable project analysis. When the tasks
// came from the fallback path the header says so instead of implying AI
// analysis happened.
func buildAnalysis(tasks []task.TechnicalTask, source Source) string {
	var sb strings.Builder

	if source == SourceReasoning {
		sb.WriteString("# Project Analysis\n\n")
	} else {
		sb.WriteString("# Project Analysis (rule-based; reasoning service not used)\n\n")
	}

	fmt.Fprintf(&sb, "Complexity: %s\n", complexityOf(tasks))
	fmt.Fprintf(&sb, "Architecture: %s\n", architectureOf(tasks))
	fmt.Fprintf(&sb, "Risk: %s\n", riskOf(tasks))

	return sb.String()
}

func complexityOf(tasks []task.TechnicalTask) string {
	high := 0
	for _, t := range tasks {
		if t.Priority == task.PriorityHigh {
			high++
		}
	}

	switch {
	case len(tasks) >= 7 || high >= 4:
		return "high - broad scope with several critical-path tasks"
	case len(tasks) >= 4 || high >= 2:
		return "medium - moderate scope, manageable with a small team"
	default:
		return "low - narrow scope, suitable for a single developer"
	}
}

// architectureOf suggests a pattern based on which concerns the task titles
// mention.
func architectureOf(tasks []task.TechnicalTask) string {
	joined := strings.ToLower(joinTitles(tasks))

	parts := make([]string, 0, 4)
	if strings.Contains(joined, "auth") {
		parts = append(parts, "token-based authentication layer")
	}
	if strings.Contains(joined, "api") || strings.Contains(joined, "endpoint") {
		parts = append(parts, "REST API backend")
	}
	if hasType(tasks, task.TypeFrontend) {
		parts = append(parts, "component-based frontend")
	}
	if strings.Contains(joined, "schedul") || strings.Contains(joined, "report") || strings.Contains(joined, "job") {
		parts = append(parts, "background job runner")
	}

	if len(parts) == 0 {
		return "layered service with a relational store"
	}
	return strings.Join(parts, ", ")
}

func riskOf(tasks []task.TechnicalTask) string {
	switch {
	case len(tasks) > 8:
		return "elevated - task count suggests scope creep; consider phasing delivery"
	case len(tasks) < 3:
		return "low - but verify the brief was not under-decomposed"
	default:
		return "moderate - standard delivery risk"
	}
}

func joinTitles(tasks []task.TechnicalTask) string {
	titles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		titles = append(titles, t.Title)
	}
	return strings.Join(titles, " ")
}

func hasType(tasks []task.TechnicalTask, typ task.Type) bool {
	for _, t := range tasks {
		if t.Type == typ {
			return true
		}
	}
	return false
}
