package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/seedcode/briefforge/internal/repository"
)

const defaultListLimit = 50

// Service handles run history operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new run service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record persists a run, filling ID and timestamp if missing.
func (s *Service) Record(ctx context.Context, r *Run) error {
	if r == nil || r.Brief == "" {
		return ErrInvalidInput
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	s.logger.Debug("recorded run", "id", r.ID, "source", r.Source,
		"tasks", len(r.Tasks), "artifacts", len(r.Artifacts))
	return nil
}

// Get retrieves a run with its tasks and artifacts.
func (s *Service) Get(ctx context.Context, id string) (*Run, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	r, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return r, nil
}

// List returns run summaries, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Summary, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultListLimit
	}
	return s.repo.List(ctx, opts)
}
