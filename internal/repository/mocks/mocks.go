package mocks

import (
	"context"

	"github.com/seedcode/briefforge/internal/domain/run"
	"github.com/stretchr/testify/mock"
)

// RunRepository is a mock for repository.RunRepository.
type RunRepository struct {
	mock.Mock
}

func (m *RunRepository) Create(ctx context.Context, r *run.Run) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *RunRepository) Get(ctx context.Context, id string) (*run.Run, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*run.Run); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RunRepository) List(ctx context.Context, opts run.ListOptions) ([]run.Summary, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]run.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
