// Package frontend synthesizes component artifacts for frontend-typed tasks.
// Same keyword routing as the backend group; non-matching input yields an
// empty list.
package frontend

import (
	"log/slog"

	"github.com/seedcode/briefforge/internal/classify"
	"github.com/seedcode/briefforge/internal/domain/artifact"
	"github.com/seedcode/briefforge/internal/domain/task"
)

// Synthesizer maps task text to component artifacts.
type Synthesizer struct {
	classifier classify.Classifier
	logger     *slog.Logger
}

// NewSynthesizer creates a frontend synthesizer.
func NewSynthesizer(classifier classify.Classifier, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{classifier: classifier, logger: logger}
}

// Synthesize emits one component per matched family.
func (s *Synthesizer) Synthesize(t task.TechnicalTask) []artifact.GeneratedFile {
	text := t.CombinedText()
	files := make([]artifact.GeneratedFile, 0, 4)

	if s.classifier.Matches(text, classify.FamilyAuth) {
		files = append(files, artifact.GeneratedFile{
			Path: "components/LoginForm.tsx", Content: loginFormTemplate, Type: artifact.TypeComponent,
		})
	}
	if s.classifier.Matches(text, classify.FamilyTask) {
		files = append(files, artifact.GeneratedFile{
			Path: "components/TaskList.tsx", Content: taskListTemplate, Type: artifact.TypeComponent,
		})
	}
	if s.classifier.Matches(text, classify.FamilyComment) {
		files = append(files, artifact.GeneratedFile{
			Path: "components/CommentThread.tsx", Content: commentThreadTemplate, Type: artifact.TypeComponent,
		})
	}
	if s.classifier.Matches(text, classify.FamilyNotification) {
		files = append(files, artifact.GeneratedFile{
			Path: "components/NotificationBell.tsx", Content: notificationBellTemplate, Type: artifact.TypeComponent,
		})
	}

	if len(files) == 0 {
		s.logger.Debug("no component family matched", "task", t.ID)
	}
	return files
}
