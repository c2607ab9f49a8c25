// Package run models pipeline run history: one record per decomposition or
// execution, with the tasks produced and the artifacts written.
package run

import (
	"time"

	"github.com/google/uuid"
)

// Run is one recorded pipeline invocation.
type Run struct {
	ID        string           `json:"id"`
	Brief     string           `json:"brief"`
	Source    string           `json:"source"`
	Tasks     []TaskRecord     `json:"tasks,omitempty"`
	Artifacts []ArtifactRecord `json:"artifacts,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// TaskRecord is the persisted shape of one decomposed task.
type TaskRecord struct {
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}

// ArtifactRecord is the persisted shape of one generated artifact.
type ArtifactRecord struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// Summary is the list-view projection of a run.
type Summary struct {
	ID            string    `json:"id"`
	Brief         string    `json:"brief"`
	Source        string    `json:"source"`
	TaskCount     int       `json:"task_count"`
	ArtifactCount int       `json:"artifact_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// New creates a run with a fresh ID and timestamp.
func New(brief, source string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Brief:     brief,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}
