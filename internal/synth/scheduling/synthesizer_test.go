package scheduling_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/classify"
	"github.com/seedcode/briefforge/internal/domain/artifact"
	"github.com/seedcode/briefforge/internal/domain/task"
	"github.com/seedcode/briefforge/internal/synth/scheduling"
)

func newSynth() *scheduling.Synthesizer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return scheduling.NewSynthesizer(classify.NewKeywordClassifier(), logger)
}

func taskWith(description string) task.TechnicalTask {
	return task.TechnicalTask{
		ID: "t1", Title: "Background work", Description: description,
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

func TestSynthesize_NoSchedulingKeywordYieldsNothing(t *testing.T) {
	s := newSynth()
	require.Empty(t, s.Synthesize(taskWith("a REST endpoint returning JSON")))
}

func TestSynthesize_CoreAlwaysPresent(t *testing.T) {
	s := newSynth()
	files := s.Synthesize(taskWith("run recurring maintenance"))

	got := paths(files)
	require.Contains(t, got, "jobs/scheduler.ts")
	require.Contains(t, got, "jobs/types.ts")
	require.Contains(t, got, "jobs/queueProcessor.ts")
}

func TestSynthesize_JobFamiliesPerKeyword(t *testing.T) {
	s := newSynth()

	files := s.Synthesize(taskWith("send daily reminder emails and a weekly report, purge expired data, nightly backup"))
	got := paths(files)
	require.Contains(t, got, "jobs/notificationJobs.ts")
	require.Contains(t, got, "jobs/cleanupJobs.ts")
	require.Contains(t, got, "jobs/reportJobs.ts")
	require.Contains(t, got, "jobs/backupJobs.ts")

	onlyCleanup := s.Synthesize(taskWith("scheduled cleanup of stale rows"))
	names := paths(onlyCleanup)
	require.Contains(t, names, "jobs/cleanupJobs.ts")
	require.NotContains(t, names, "jobs/backupJobs.ts")
}

func TestSynthesize_SchedulerSupportsManualTrigger(t *testing.T) {
	s := newSynth()
	files := s.Synthesize(taskWith("cron driven jobs"))

	for _, f := range files {
		if f.Path == "jobs/scheduler.ts" {
			require.Contains(t, f.Content, "runJob")
			require.Contains(t, f.Content, "register(")
			return
		}
	}
	t.Fatal("scheduler.ts not emitted")
}
