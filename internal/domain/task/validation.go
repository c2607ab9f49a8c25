package task

import "strings"

// ValidateForRouting checks the fields the coordinator needs before dispatch.
func ValidateForRouting(t TechnicalTask) error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrMissingTitle
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

func lowerJoin(parts []string) string {
	return strings.ToLower(strings.Join(parts, " "))
}
