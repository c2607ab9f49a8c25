package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/seedcode/briefforge/internal/domain/run"
	"github.com/seedcode/briefforge/internal/repository"
)

// RunRepository implements run.Repository for SQLite
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new RunRepository
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a run with its tasks and artifacts in one transaction.
func (r *RunRepository) Create(ctx context.Context, rn *run.Run) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, brief, source, created_at) VALUES (?, ?, ?, ?)`,
		rn.ID, rn.Brief, rn.Source, rn.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for i, t := range rn.Tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_tasks (run_id, task_id, title, type, priority, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rn.ID, t.TaskID, t.Title, t.Type, t.Priority, i,
		); err != nil {
			return fmt.Errorf("failed to insert run task: %w", err)
		}
	}

	for i, a := range rn.Artifacts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_artifacts (run_id, path, type, position)
			 VALUES (?, ?, ?, ?)`,
			rn.ID, a.Path, a.Type, i,
		); err != nil {
			return fmt.Errorf("failed to insert run artifact: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// Get returns a run with its tasks and artifacts.
func (r *RunRepository) Get(ctx context.Context, id string) (*run.Run, error) {
	var rn run.Run
	err := r.db.QueryRowContext(ctx,
		`SELECT id, brief, source, created_at FROM runs WHERE id = ?`, id,
	).Scan(&rn.ID, &rn.Brief, &rn.Source, &rn.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	rn.Tasks, err = r.listTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	rn.Artifacts, err = r.listArtifacts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &rn, nil
}

// List returns run summaries, newest first.
func (r *RunRepository) List(ctx context.Context, opts run.ListOptions) ([]run.Summary, error) {
	query := `
		SELECT
			r.id, r.brief, r.source, r.created_at,
			(SELECT COUNT(*) FROM run_tasks t WHERE t.run_id = r.id),
			(SELECT COUNT(*) FROM run_artifacts a WHERE a.run_id = r.id)
		FROM runs r
	`
	args := []interface{}{}

	if opts.Source != "" {
		query += " WHERE r.source = ?"
		args = append(args, opts.Source)
	}

	query += " ORDER BY r.created_at DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var summaries []run.Summary
	for rows.Next() {
		var s run.Summary
		if err := rows.Scan(&s.ID, &s.Brief, &s.Source, &s.CreatedAt,
			&s.TaskCount, &s.ArtifactCount); err != nil {
			return nil, fmt.Errorf("failed to scan run summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", err)
	}
	return summaries, nil
}

func (r *RunRepository) listTasks(ctx context.Context, runID string) ([]run.TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, title, type, priority FROM run_tasks
		 WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list run tasks: %w", err)
	}
	defer rows.Close()

	var tasks []run.TaskRecord
	for rows.Next() {
		var t run.TaskRecord
		if err := rows.Scan(&t.TaskID, &t.Title, &t.Type, &t.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan run task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *RunRepository) listArtifacts(ctx context.Context, runID string) ([]run.ArtifactRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT path, type FROM run_artifacts
		 WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list run artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []run.ArtifactRecord
	for rows.Next() {
		var a run.ArtifactRecord
		if err := rows.Scan(&a.Path, &a.Type); err != nil {
			return nil, fmt.Errorf("failed to scan run artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}
