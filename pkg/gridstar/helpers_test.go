package gridstar_test

import (
	"testing"

	"github.com/randalmurphal/gridstar/pkg/gridstar"
	"github.com/randalmurphal/gridstar/pkg/gridstar/mapgen"
	"github.com/stretchr/testify/require"
)

var none = struct{}{}

// newGrid returns a filled engine with start and end set.
func newGrid(t *testing.T, cols, rows int, p gridstar.Passability, start, end int) *gridstar.Plain {
	t.Helper()
	e := gridstar.New[struct{}]()
	require.NoError(t, e.SetSize(cols, rows))
	e.SetPassability(p)
	require.NoError(t, e.Fill())
	e.SetStart(start%cols, start/cols)
	e.SetEnd(end%cols, end/cols)
	return e
}

// only returns a passability source where just the listed indices are passable.
func only(cols int, indices ...int) gridstar.Passability {
	pts := make([][2]int, len(indices))
	for i, idx := range indices {
		pts[i] = [2]int{idx % cols, idx / cols}
	}
	return mapgen.Blocked(pts...)
}

// except returns a passability source where all but the listed indices are passable.
func except(cols int, walls ...int) gridstar.Passability {
	blocked := make(map[int]bool, len(walls))
	for _, w := range walls {
		blocked[w] = true
	}
	return gridstar.PassabilityFunc(func(_ gridstar.View, col, row int) bool {
		return !blocked[row*cols+col]
	})
}

// pathCells returns every index with the path bit set, ascending.
func pathCells(e *gridstar.Plain) []int {
	var out []int
	for i := 0; i < e.Cols()*e.Rows(); i++ {
		if e.Cell(i).State.IsPath() {
			out = append(out, i)
		}
	}
	return out
}

// closeOrder steps the engine to completion and returns the cell closed by
// each step.
func closeOrder(e *gridstar.Plain) []int {
	var order []int
	e.Begin()
	for {
		before := e.Export()
		more := e.Step(none)
		for i := range before.State {
			if before.State[i]&uint8(gridstar.Closed) == 0 && e.Cell(i).State.IsClosed() && e.Cell(i).State.IsPassable() {
				order = append(order, i)
			}
		}
		if !more {
			return order
		}
	}
}
