package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newJSONLogger returns a debug-level JSON logger and the buffer it writes to.
func newJSONLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, buf
}

// lastRecord decodes the last JSON line in buf.
func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds run_id and grid size", func(t *testing.T) {
		logger, buf := newJSONLogger()

		EnrichLogger(logger, "run-123", 5, 4).Info("test message")

		record := lastRecord(t, buf)
		assert.Equal(t, "run-123", record["run_id"])
		assert.Equal(t, float64(5), record["cols"])
		assert.Equal(t, float64(4), record["rows"])
		assert.Equal(t, "test message", record["msg"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "run-123", 1, 1))
	})
}

func TestLogSearchLifecycle(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		logger, buf := newJSONLogger()
		LogSearchStart(logger, "run-1", 6, 18)

		record := lastRecord(t, buf)
		assert.Equal(t, "INFO", record["level"])
		assert.Equal(t, "search starting", record["msg"])
		assert.Equal(t, float64(6), record["start"])
		assert.Equal(t, float64(18), record["end"])
	})

	t.Run("complete", func(t *testing.T) {
		logger, buf := newJSONLogger()
		LogSearchComplete(logger, "run-1", true, 9, 5, 1.5)

		record := lastRecord(t, buf)
		assert.Equal(t, "search completed", record["msg"])
		assert.Equal(t, true, record["found"])
		assert.Equal(t, float64(9), record["steps"])
		assert.Equal(t, float64(5), record["path_length"])
		assert.Equal(t, 1.5, record["duration_ms"])
	})

	t.Run("error", func(t *testing.T) {
		logger, buf := newJSONLogger()
		LogSearchError(logger, "run-1", errors.New("boom"), 3, 2)

		record := lastRecord(t, buf)
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, "boom", record["error"])
		assert.Equal(t, float64(3), record["steps"])
	})

	t.Run("step is debug", func(t *testing.T) {
		logger, buf := newJSONLogger()
		LogStep(logger, 4, 11, true)

		record := lastRecord(t, buf)
		assert.Equal(t, "DEBUG", record["level"])
		assert.Equal(t, float64(11), record["current"])
		assert.Equal(t, true, record["continue"])
	})

	t.Run("checkpoint failure is a warning", func(t *testing.T) {
		logger, buf := newJSONLogger()
		LogCheckpointError(logger, 8, "save", errors.New("disk full"))

		record := lastRecord(t, buf)
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "save", record["operation"])
		assert.Equal(t, "disk full", record["error"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogSearchStart(nil, "run", 0, 1)
			LogSearchComplete(nil, "run", false, 0, 0, 0)
			LogSearchError(nil, "run", errors.New("x"), 0, 0)
			LogStep(nil, 0, 0, false)
			LogCheckpoint(nil, 0, 0)
			LogCheckpointError(nil, 0, "save", errors.New("x"))
		})
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, done(), float64(5))
}
