package business_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/classify"
	"github.com/seedcode/briefforge/internal/domain/artifact"
	"github.com/seedcode/briefforge/internal/domain/task"
	"github.com/seedcode/briefforge/internal/synth/business"
)

func newSynth() *business.Synthesizer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return business.NewSynthesizer(classify.NewKeywordClassifier(), logger)
}

func taskWith(title, description string) task.TechnicalTask {
	return task.TechnicalTask{
		ID: "t1", Title: title, Description: description,
		Type: task.TypeBackend, Priority: task.PriorityMedium,
	}
}

func paths(files []artifact.GeneratedFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestSynthesize_InfrastructureTaskYieldsNothing(t *testing.T) {
	s := newSynth()
	files := s.Synthesize(taskWith("Setup Docker and CI/CD", "containerize the build pipeline"))
	require.Empty(t, files)
}

func TestSynthesize_LifecycleEmitsNotificationDependency(t *testing.T) {
	s := newSynth()
	files := s.Synthesize(taskWith("Task workflow", "tasks move through statuses"))

	got := paths(files)
	require.Contains(t, got, "services/taskLifecycleService.ts")
	require.Contains(t, got, "services/notificationService.ts")
	require.NotContains(t, got, "services/sharingService.ts")
}

func TestSynthesize_SharingEmitsPermissionChecks(t *testing.T) {
	s := newSynth()
	files := s.Synthesize(taskWith("Sharing", "share resources with permission tiers"))

	var sharing *artifact.GeneratedFile
	for i := range files {
		if files[i].Path == "services/sharingService.ts" {
			sharing = &files[i]
		}
	}
	require.NotNil(t, sharing)
	require.Equal(t, artifact.TypeAPI, sharing.Type)
	require.Contains(t, sharing.Content, "permissionRank")
}

func TestSynthesize_AllFamilies(t *testing.T) {
	s := newSynth()
	files := s.Synthesize(taskWith("Everything",
		"users share tasks, comment on them, attach files and get notified"))

	require.Len(t, files, 5)
	require.ElementsMatch(t, paths(files), []string{
		"services/taskLifecycleService.ts",
		"services/sharingService.ts",
		"services/notificationService.ts",
		"services/commentService.ts",
		"services/attachmentService.ts",
	})
}

func TestSynthesize_Deterministic(t *testing.T) {
	s := newSynth()
	tk := taskWith("Comments", "threaded discussion on tasks")
	require.Equal(t, s.Synthesize(tk), s.Synthesize(tk))
}
