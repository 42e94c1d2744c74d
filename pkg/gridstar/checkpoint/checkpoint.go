package checkpoint

import (
	"encoding/json"
	"time"
)

// Version is the current checkpoint format version.
// Increment when the envelope or the snapshot layout changes.
const Version = 1

// Checkpoint is the persisted envelope around a search snapshot.
type Checkpoint struct {
	Version   int       `json:"version"`
	RunID     string    `json:"run_id"`
	Step      int       `json:"step"`
	Timestamp time.Time `json:"timestamp"`

	// Snapshot is the JSON-encoded state block.
	Snapshot json.RawMessage `json:"snapshot"`

	// Current is the frontier cell expanded by the last step.
	Current int `json:"current"`
}

// Marshal serializes a checkpoint to JSON.
func (c *Checkpoint) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// Unmarshal deserializes a checkpoint from JSON.
func Unmarshal(data []byte) (*Checkpoint, error) {
	var c Checkpoint
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// New creates a checkpoint for a run after the given number of steps.
// The snapshot must already be JSON-serialized.
func New(runID string, step int, snapshot []byte) *Checkpoint {
	return &Checkpoint{
		Version:   Version,
		RunID:     runID,
		Step:      step,
		Timestamp: time.Now().UTC(),
		Snapshot:  snapshot,
	}
}

// WithCurrent records the cell expanded by the checkpointed step.
func (c *Checkpoint) WithCurrent(cell int) *Checkpoint {
	c.Current = cell
	return c
}
