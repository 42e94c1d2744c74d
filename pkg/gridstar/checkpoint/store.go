// Package checkpoint persists search snapshots so an interrupted run can be resumed.
package checkpoint

import (
	"errors"
	"time"
)

// Store persists checkpoints keyed by run and step count.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a checkpoint taken after the given number of steps.
	// Overwrites if a checkpoint for (runID, step) already exists.
	Save(runID string, step int, data []byte) error

	// Load retrieves a checkpoint.
	// Returns ErrNotFound if the checkpoint doesn't exist.
	Load(runID string, step int) ([]byte, error)

	// Latest retrieves the checkpoint with the highest step for a run.
	// Returns ErrNotFound if the run has no checkpoints.
	Latest(runID string) (Info, []byte, error)

	// List returns all checkpoints for a run, ordered by step.
	// Returns empty slice (not error) if the run has no checkpoints.
	List(runID string) ([]Info, error)

	// DeleteRun removes all checkpoints for a run.
	// Returns nil if the run has no checkpoints.
	DeleteRun(runID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides metadata without loading the snapshot.
type Info struct {
	RunID     string
	Step      int
	Timestamp time.Time
	Size      int64
}

// Sentinel errors for checkpoint operations.
var (
	// ErrNotFound indicates a checkpoint doesn't exist.
	ErrNotFound = errors.New("checkpoint not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("checkpoint store closed")
)
