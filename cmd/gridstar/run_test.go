package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_OpenGrid(t *testing.T) {
	code, out, _ := runCLI(t, "-chance", "100", "-width", "3", "-height", "1", "-end-col", "2", "-end-row", "0")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "  Passable chance: 100\n")
	assert.Contains(t, out, "#####\n#S*E#\n#####\n")
	assert.Contains(t, out, "A path was found!")
}

func TestRun_NoPassableCells(t *testing.T) {
	code, out, _ := runCLI(t, "-chance", "0", "-width", "3", "-height", "1", "-end-col", "2", "-end-row", "0")
	require.Equal(t, exitOK, code, "no path is a normal outcome")
	assert.Contains(t, out, "#s#e#")
	assert.Contains(t, out, "No path was found!")
}

func TestRun_DemoMap(t *testing.T) {
	code, out, _ := runCLI(t)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Map:\n"+strings.Repeat("#", 26)+"\n")
	assert.Equal(t, 13+2, strings.Count(out, "#\n"))
	assert.True(t, strings.Contains(out, "A path was found!") || strings.Contains(out, "No path was found!"))

	_, again, _ := runCLI(t)
	assert.Equal(t, out, again, "same seed, same map")
}

func TestRun_Progress(t *testing.T) {
	code, out, _ := runCLI(t, "-progress", "-delay", "0", "-chance", "100",
		"-width", "4", "-height", "1", "-end-col", "3", "-end-row", "0")
	require.Equal(t, exitOK, code)
	assert.Equal(t, 4, strings.Count(out, "Map:"), "three progress frames and the final map")
	assert.Contains(t, out, "#SO E#")
	assert.Contains(t, out, "#S**E#")
}

func TestRun_InvalidConfig(t *testing.T) {
	code, out, _ := runCLI(t, "-width", "40", "-height", "40")
	assert.Equal(t, exitUsage, code)
	assert.Equal(t, msgInvalidSize+"\n", out)

	code, out, _ = runCLI(t, "-width", "4611686018427387904", "-height", "4", "-end-row", "3")
	assert.Equal(t, exitUsage, code)
	assert.Equal(t, msgInvalidSize+"\n", out)

	code, out, _ = runCLI(t, "-end-col", "24")
	assert.Equal(t, exitUsage, code)
	assert.Equal(t, msgInvalidCoordinates+"\n", out)

	code, _, errOut := runCLI(t, "-chance", "150")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "passable_chance")

	code, _, _ = runCLI(t, "-no-such-flag")
	assert.Equal(t, exitUsage, code)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
width: 3
height: 1
end: {col: 2, row: 0}
passable_chance: 100
`), 0o600))

	code, out, _ := runCLI(t, "-config", path)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "#S*E#")

	code, out, _ = runCLI(t, "-config", path, "-chance", "0")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "#s#e#", "flags override the file")

	code, _, _ = runCLI(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, exitUsage, code)
}

func TestRun_PrintConfig(t *testing.T) {
	code, out, _ := runCLI(t, "-print-config", "-width", "7")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "width: 7\n")
	assert.Contains(t, out, "delay: 25ms\n")
}

func TestRun_CheckpointResume(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	grid := []string{"-chance", "100", "-width", "5", "-height", "4",
		"-start-col", "1", "-start-row", "1", "-end-col", "3", "-end-row", "3",
		"-checkpoint", db, "-run-id", "cli"}

	code, _, errOut := runCLI(t, append(grid, "-max-steps", "3")...)
	require.Equal(t, exitError, code)
	assert.Contains(t, errOut, "exceeded maximum steps")

	code, out, _ := runCLI(t, append(grid, "-resume")...)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "A path was found!")
}

func TestRun_ResumeRequiresCheckpoint(t *testing.T) {
	code, _, errOut := runCLI(t, "-resume")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "-resume requires -checkpoint")
}

func TestRun_GeneratedRunID(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	code, _, errOut := runCLI(t, "-chance", "100", "-width", "3", "-height", "1",
		"-end-col", "2", "-end-row", "0", "-checkpoint", db)
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "run id: ")
}

func TestRun_TUI(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	prev := newScreen
	newScreen = func() (tcell.Screen, error) { return sim, nil }
	defer func() { newScreen = prev }()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-tui", "-delay", "0", "-chance", "100",
		"-width", "3", "-height", "1", "-end-col", "2", "-end-row", "0"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout.String(), "the map is drawn on the screen, not printed")
}
