package frontend_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/classify"
	"github.com/seedcode/briefforge/internal/domain/artifact"
	"github.com/seedcode/briefforge/internal/domain/task"
	"github.com/seedcode/briefforge/internal/synth/frontend"
)

func newSynth() *frontend.Synthesizer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return frontend.NewSynthesizer(classify.NewKeywordClassifier(), logger)
}

func frontendTask(description string) task.TechnicalTask {
	return task.TechnicalTask{
		ID: "t1", Title: "UI", Description: description,
		Type: task.TypeFrontend, Priority: task.PriorityMedium,
	}
}

func TestSynthesize_ComponentsPerFamily(t *testing.T) {
	s := newSynth()
	files := s.Synthesize(frontendTask("login screen, task board, comment threads and notification badges"))

	got := make([]string, 0, len(files))
	for _, f := range files {
		require.Equal(t, artifact.TypeComponent, f.Type)
		got = append(got, f.Path)
	}
	require.ElementsMatch(t, got, []string{
		"components/LoginForm.tsx",
		"components/TaskList.tsx",
		"components/CommentThread.tsx",
		"components/NotificationBell.tsx",
	})
}

func TestSynthesize_NoMatchYieldsNothing(t *testing.T) {
	s := newSynth()
	require.Empty(t, s.Synthesize(frontendTask("static marketing landing page")))
}
