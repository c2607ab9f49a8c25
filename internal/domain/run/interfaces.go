package run

import "context"

// Repository provides persistence operations for runs.
type Repository interface {
	Create(ctx context.Context, r *Run) error
	Get(ctx context.Context, id string) (*Run, error)
	List(ctx context.Context, opts ListOptions) ([]Summary, error)
}

// ListOptions provides paging for run listings.
type ListOptions struct {
	Source string
	Limit  int
	Offset int
}
