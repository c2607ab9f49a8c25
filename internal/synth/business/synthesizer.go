// Package business synthesizes workflow-shaped backend source artifacts from
// task text. Up to five families trigger independently off the same combined
// text; each family emits one self-contained artifact with its own type
// definitions. Non-matching input yields an empty list, never an error.
package business

import (
	"log/slog"

	"github.com/seedcode/briefforge/internal/classify"
	"github.com/seedcode/briefforge/internal/domain/artifact"
	"github.com/seedcode/briefforge/internal/domain/task"
)

// Synthesizer maps task text to workflow service artifacts.
type Synthesizer struct {
	classifier classify.Classifier
	logger     *slog.Logger
}

// NewSynthesizer creates a business-logic synthesizer.
func NewSynthesizer(classifier classify.Classifier, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{classifier: classifier, logger: logger}
}

// Synthesize emits one artifact per matched workflow family.
func (s *Synthesizer) Synthesize(t task.TechnicalTask) []artifact.GeneratedFile {
	text := t.CombinedText()
	files := make([]artifact.GeneratedFile, 0, 5)

	lifecycle := s.classifier.Matches(text, classify.FamilyTask)
	sharing := s.classifier.Matches(text, classify.FamilySharing)

	if lifecycle {
		files = append(files, artifact.GeneratedFile{
			Path:    "services/taskLifecycleService.ts",
			Content: taskLifecycleTemplate,
			Type:    artifact.TypeAPI,
		})
	}
	if sharing {
		files = append(files, artifact.GeneratedFile{
			Path:    "services/sharingService.ts",
			Content: sharingTemplate,
			Type:    artifact.TypeAPI,
		})
	}
	// The notification service is called by the lifecycle and sharing
	// workflows, so it is emitted whenever any caller is, not only on its
	// own keywords.
	if lifecycle || sharing || s.classifier.Matches(text, classify.FamilyNotification) {
		files = append(files, artifact.GeneratedFile{
			Path:    "services/notificationService.ts",
			Content: notificationTemplate,
			Type:    artifact.TypeAPI,
		})
	}
	if s.classifier.Matches(text, classify.FamilyComment) {
		files = append(files, artifact.GeneratedFile{
			Path:    "services/commentService.ts",
			Content: commentTemplate,
			Type:    artifact.TypeAPI,
		})
	}
	if s.classifier.Matches(text, classify.FamilyAttachment) {
		files = append(files, artifact.GeneratedFile{
			Path:    "services/attachmentService.ts",
			Content: attachmentTemplate,
			Type:    artifact.TypeAPI,
		})
	}

	if len(files) == 0 {
		s.logger.Debug("no workflow family matched", "task", t.ID)
	}
	return files
}
