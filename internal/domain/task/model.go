package task

// Type routes a task to exactly one synthesizer group.
type Type string

const (
	TypeBackend  Type = "backend"
	TypeFrontend Type = "frontend"
)

// Valid reports whether the type is a known routing target.
func (t Type) Valid() bool {
	return t == TypeBackend || t == TypeFrontend
}

// Priority is the scheduling weight assigned during decomposition.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is a known tier.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// TechnicalTask is one unit of work produced by decomposition.
// Tasks are never mutated after creation; synthesizers are pure functions of a task.
type TechnicalTask struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Type               Type     `json:"type"`
	Priority           Priority `json:"priority"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	EstimatedHours     float64  `json:"estimated_hours,omitempty"`
	Dependencies       []string `json:"dependencies,omitempty"`
}

// CombinedText joins title, description and acceptance criteria into the
// lower-cased haystack every keyword-driven synthesizer scans.
func (t TechnicalTask) CombinedText() string {
	parts := make([]string, 0, 2+len(t.AcceptanceCriteria))
	parts = append(parts, t.Title, t.Description)
	parts = append(parts, t.AcceptanceCriteria...)
	return lowerJoin(parts)
}
