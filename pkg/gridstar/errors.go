package gridstar

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid configuration.
var (
	// ErrCapacity indicates the grid dimensions exceed Capacity or are not positive.
	ErrCapacity = errors.New("grid exceeds capacity")

	// ErrNoPassability indicates Fill() was called without a passability source.
	ErrNoPassability = errors.New("passability source not set")

	// ErrOutOfBounds indicates a coordinate or index outside the configured grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Sentinel errors for running a search.
var (
	// ErrMaxSteps indicates the search exceeded the configured step limit.
	ErrMaxSteps = errors.New("exceeded maximum steps")

	// ErrNilContext indicates Run() was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")
)

// Sentinel errors for snapshots, checkpointing and resume.
var (
	// ErrRunIDRequired indicates checkpointing was enabled without a run ID.
	ErrRunIDRequired = errors.New("run ID required for checkpointing")

	// ErrNoCheckpoints indicates no checkpoints exist for the run.
	ErrNoCheckpoints = errors.New("no checkpoints found for run")

	// ErrCheckpointVersionMismatch indicates the checkpoint version is incompatible.
	ErrCheckpointVersionMismatch = errors.New("checkpoint version mismatch")

	// ErrDeserializeSnapshot indicates a checkpointed snapshot could not be decoded.
	ErrDeserializeSnapshot = errors.New("failed to deserialize snapshot")

	// ErrMalformedSnapshot indicates a text snapshot does not follow the state block layout.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)

// CapacityError reports grid dimensions that cannot be stored in the state block.
type CapacityError struct {
	Cols int
	Rows int
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("grid %dx%d: %v (max %d cells)", e.Cols, e.Rows, ErrCapacity, Capacity)
}

// Unwrap returns ErrCapacity for errors.Is support.
func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

// CoordinateError reports a coordinate outside the configured grid.
// Accessors panic with this error; Index and Validate return it.
type CoordinateError struct {
	// Op is the operation that rejected the coordinate ("start", "end", "is_open", ...).
	Op   string
	Col  int
	Row  int
	Cols int
	Rows int
}

// Error implements the error interface.
func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: (%d,%d) outside %dx%d grid: %v", e.Op, e.Col, e.Row, e.Cols, e.Rows, ErrOutOfBounds)
}

// Unwrap returns ErrOutOfBounds for errors.Is support.
func (e *CoordinateError) Unwrap() error {
	return ErrOutOfBounds
}

// CancellationError captures where a run stopped when its context was cancelled.
type CancellationError struct {
	// Steps is the number of steps completed before cancellation.
	Steps int
	// Cause is context.Canceled or context.DeadlineExceeded.
	Cause error
}

// Error implements the error interface.
func (e *CancellationError) Error() string {
	return fmt.Sprintf("search cancelled after %d steps: %v", e.Steps, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CancellationError) Unwrap() error {
	return e.Cause
}

// MaxStepsError provides context when the step limit is exceeded.
type MaxStepsError struct {
	Max int
	// Current is the frontier cell that would have been expanded next.
	Current int
}

// Error implements the error interface.
func (e *MaxStepsError) Error() string {
	return fmt.Sprintf("exceeded maximum steps (%d) at cell %d", e.Max, e.Current)
}

// Unwrap returns ErrMaxSteps for errors.Is support.
func (e *MaxStepsError) Unwrap() error {
	return ErrMaxSteps
}

// CheckpointError wraps errors from checkpoint operations.
type CheckpointError struct {
	// Step is the step count at which checkpointing failed.
	Step int
	// Op is the operation that failed ("marshal", "save", "load").
	Op  string
	Err error
}

// Error implements the error interface.
func (e *CheckpointError) Error() string {
	return fmt.Sprintf("checkpoint %s at step %d: %v", e.Op, e.Step, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CheckpointError) Unwrap() error {
	return e.Err
}
