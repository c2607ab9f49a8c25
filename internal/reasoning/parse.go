package reasoning

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/seedcode/briefforge/internal/domain/task"
)

// placeholderCriterion fills tasks the service returned without acceptance
// criteria.
const placeholderCriterion = "Implementation completed and reviewed"

type rawTask struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Type               string   `json:"type"`
	Priority           string   `json:"priority"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	EstimatedHours     float64  `json:"estimated_hours"`
}

// parseTasks extracts the first bracket-delimited array from free text and
// converts it to technical tasks. Tasks missing required fields get safe
// defaults rather than failing the batch.
func parseTasks(resp string) ([]task.TechnicalTask, error) {
	payload, ok := extractArray(resp)
	if !ok {
		return nil, fmt.Errorf("%w: no task array found", ErrMalformedResponse)
	}

	var raws []rawTask
	if err := json.Unmarshal([]byte(payload), &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("%w: empty task array", ErrMalformedResponse)
	}

	tasks := make([]task.TechnicalTask, 0, len(raws))
	for i, raw := range raws {
		tasks = append(tasks, normalizeTask(raw, i))
	}
	return tasks, nil
}

func normalizeTask(raw rawTask, index int) task.TechnicalTask {
	t := task.TechnicalTask{
		ID:                 uuid.NewString(),
		Title:              strings.TrimSpace(raw.Title),
		Description:        strings.TrimSpace(raw.Description),
		Type:               task.Type(strings.ToLower(strings.TrimSpace(raw.Type))),
		Priority:           task.Priority(strings.ToLower(strings.TrimSpace(raw.Priority))),
		AcceptanceCriteria: raw.AcceptanceCriteria,
		EstimatedHours:     raw.EstimatedHours,
	}

	if t.Title == "" {
		t.Title = fmt.Sprintf("Task %d", index+1)
	}
	if !t.Type.Valid() {
		t.Type = task.TypeBackend
	}
	if !t.Priority.Valid() {
		t.Priority = task.PriorityMedium
	}
	if len(t.AcceptanceCriteria) == 0 {
		t.AcceptanceCriteria = []string{placeholderCriterion}
	}
	return t
}

// extractArray returns the first balanced bracket-delimited substring,
// tolerating surrounding prose and brackets inside JSON strings.
func extractArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
