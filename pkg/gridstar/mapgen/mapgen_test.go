package mapgen_test

import (
	"math/rand"
	"testing"

	"github.com/randalmurphal/gridstar/pkg/gridstar"
	"github.com/randalmurphal/gridstar/pkg/gridstar/mapgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(t *testing.T, cols, rows int, p gridstar.Passability) *gridstar.Plain {
	t.Helper()
	e := gridstar.New[struct{}]()
	require.NoError(t, e.SetSize(cols, rows))
	e.SetPassability(p)
	require.NoError(t, e.Fill())
	return e
}

func passableCount(e *gridstar.Plain) int {
	n := 0
	for row := 0; row < e.Rows(); row++ {
		for col := 0; col < e.Cols(); col++ {
			if e.IsPassable(col, row) {
				n++
			}
		}
	}
	return n
}

func TestRandom_Deterministic(t *testing.T) {
	a := filled(t, 24, 13, mapgen.Random(rand.New(rand.NewSource(12345)), 80))
	b := filled(t, 24, 13, mapgen.Random(rand.New(rand.NewSource(12345)), 80))
	assert.Equal(t, a.Export(), b.Export())
}

func TestRandom_Extremes(t *testing.T) {
	all := filled(t, 10, 10, mapgen.Random(rand.New(rand.NewSource(1)), 100))
	assert.Equal(t, 100, passableCount(all))

	none := filled(t, 10, 10, mapgen.Random(rand.New(rand.NewSource(1)), -1))
	assert.Equal(t, 0, passableCount(none))
}

func TestRandom_Density(t *testing.T) {
	e := filled(t, 32, 32, mapgen.Random(rand.New(rand.NewSource(7)), 50))
	n := passableCount(e)
	assert.InDelta(t, 512, n, 100)
}

func TestOpenAndBlocked(t *testing.T) {
	assert.Equal(t, 20, passableCount(filled(t, 5, 4, mapgen.Open())))

	e := filled(t, 5, 4, mapgen.Blocked([2]int{1, 1}, [2]int{3, 3}))
	assert.Equal(t, 2, passableCount(e))
	assert.True(t, e.IsPassable(1, 1))
	assert.True(t, e.IsPassable(3, 3))
	assert.False(t, e.IsPassable(0, 0))
}

func TestFromRows(t *testing.T) {
	rows, cols, height, err := mapgen.FromRows(
		"S.#..",
		"..#..",
		"..#.E",
		".....",
	)
	require.NoError(t, err)
	assert.Equal(t, 5, cols)
	assert.Equal(t, 4, height)

	col, row, ok := rows.Find('E')
	require.True(t, ok)
	assert.Equal(t, 4, col)
	assert.Equal(t, 2, row)
	_, _, ok = rows.Find('Z')
	assert.False(t, ok)

	e := filled(t, cols, height, rows)
	assert.False(t, e.IsPassable(2, 0))
	assert.False(t, e.IsPassable(2, 2))
	assert.True(t, e.IsPassable(2, 3))
	assert.True(t, e.IsPassable(0, 0), "markers are passable")
	assert.False(t, rows.Passable(e, 9, 0), "outside the map is impassable")
}

func TestFromRows_Errors(t *testing.T) {
	_, _, _, err := mapgen.FromRows()
	assert.Error(t, err)

	_, _, _, err = mapgen.FromRows("...", "..")
	assert.ErrorContains(t, err, "row 1")
}
