package run_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/domain/run"
	"github.com/seedcode/briefforge/internal/repository"
	"github.com/seedcode/briefforge/internal/repository/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunService_RecordFillsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RunRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*run.Run")).Return(nil)

	svc := run.NewService(repo, testLogger())
	r := &run.Run{Brief: "Build a wiki", Source: "fallback"}
	require.NoError(t, svc.Record(ctx, r))

	require.NotEmpty(t, r.ID)
	require.False(t, r.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestRunService_RecordRejectsEmptyBrief(t *testing.T) {
	repo := &mocks.RunRepository{}
	svc := run.NewService(repo, testLogger())

	err := svc.Record(context.Background(), &run.Run{Source: "fallback"})
	require.ErrorIs(t, err, run.ErrInvalidInput)

	err = svc.Record(context.Background(), nil)
	require.ErrorIs(t, err, run.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestRunService_GetMapsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RunRepository{}
	repo.On("Get", ctx, "missing").Return((*run.Run)(nil), repository.ErrNotFound)

	svc := run.NewService(repo, testLogger())
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, run.ErrNotFound)
}

func TestRunService_GetRejectsEmptyID(t *testing.T) {
	svc := run.NewService(&mocks.RunRepository{}, testLogger())
	_, err := svc.Get(context.Background(), "")
	require.ErrorIs(t, err, run.ErrInvalidInput)
}

func TestRunService_ListAppliesDefaultLimit(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RunRepository{}
	repo.On("List", ctx, run.ListOptions{Limit: 50}).Return([]run.Summary{{ID: "r1"}}, nil)

	svc := run.NewService(repo, testLogger())
	got, err := svc.List(ctx, run.ListOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	repo.AssertExpectations(t)
}
