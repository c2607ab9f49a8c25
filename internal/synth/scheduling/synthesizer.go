// Package scheduling synthesizes recurring-job artifacts. When any scheduling
// keyword matches, a central scheduler, a queue processor and shared job type
// definitions are always emitted, plus whichever job families matched.
package scheduling

import (
	"log/slog"

	"github.com/seedcode/briefforge/internal/classify"
	"github.com/seedcode/briefforge/internal/domain/artifact"
	"github.com/seedcode/briefforge/internal/domain/task"
)

// Synthesizer maps task text to scheduling artifacts.
type Synthesizer struct {
	classifier classify.Classifier
	logger     *slog.Logger
}

// NewSynthesizer creates a scheduling synthesizer.
func NewSynthesizer(classifier classify.Classifier, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{classifier: classifier, logger: logger}
}

// Synthesize emits the scheduler plus matched job families, or nothing when
// no scheduling keyword is present.
func (s *Synthesizer) Synthesize(t task.TechnicalTask) []artifact.GeneratedFile {
	text := t.CombinedText()
	if !s.classifier.Matches(text, classify.FamilyScheduling) {
		return nil
	}

	files := []artifact.GeneratedFile{
		{Path: "jobs/scheduler.ts", Content: schedulerTemplate, Type: artifact.TypeAPI},
		{Path: "jobs/types.ts", Content: jobTypesTemplate, Type: artifact.TypeOther},
		{Path: "jobs/queueProcessor.ts", Content: queueProcessorTemplate, Type: artifact.TypeAPI},
	}

	if s.classifier.Matches(text, classify.FamilyNotification) {
		files = append(files, artifact.GeneratedFile{
			Path: "jobs/notificationJobs.ts", Content: notificationJobsTemplate, Type: artifact.TypeAPI,
		})
	}
	if s.classifier.Matches(text, classify.FamilyCleanup) {
		files = append(files, artifact.GeneratedFile{
			Path: "jobs/cleanupJobs.ts", Content: cleanupJobsTemplate, Type: artifact.TypeAPI,
		})
	}
	if s.classifier.Matches(text, classify.FamilyReport) {
		files = append(files, artifact.GeneratedFile{
			Path: "jobs/reportJobs.ts", Content: reportJobsTemplate, Type: artifact.TypeAPI,
		})
	}
	if s.classifier.Matches(text, classify.FamilyBackup) {
		files = append(files, artifact.GeneratedFile{
			Path: "jobs/backupJobs.ts", Content: backupJobsTemplate, Type: artifact.TypeAPI,
		})
	}

	return files
}
