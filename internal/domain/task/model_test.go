package task_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/domain/task"
)

func validTask() task.TechnicalTask {
	return task.TechnicalTask{
		ID:       "t1",
		Title:    "Build API",
		Type:     task.TypeBackend,
		Priority: task.PriorityHigh,
	}
}

func TestValidateForRouting(t *testing.T) {
	require.NoError(t, task.ValidateForRouting(validTask()))

	cases := []struct {
		name   string
		mutate func(*task.TechnicalTask)
		want   error
	}{
		{"missing id", func(tk *task.TechnicalTask) { tk.ID = "  " }, task.ErrMissingID},
		{"missing title", func(tk *task.TechnicalTask) { tk.Title = "" }, task.ErrMissingTitle},
		{"unknown type", func(tk *task.TechnicalTask) { tk.Type = "database" }, task.ErrInvalidType},
		{"unknown priority", func(tk *task.TechnicalTask) { tk.Priority = "urgent" }, task.ErrInvalidPriority},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tk := validTask()
			tc.mutate(&tk)
			require.ErrorIs(t, task.ValidateForRouting(tk), tc.want)
		})
	}
}

func TestCombinedText(t *testing.T) {
	tk := task.TechnicalTask{
		Title:              "Sharing API",
		Description:        "Users SHARE tasks",
		AcceptanceCriteria: []string{"Owners revoke access"},
	}
	got := tk.CombinedText()
	require.Equal(t, "sharing api users share tasks owners revoke access", got)
}
