package mapgen

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/gridstar/pkg/gridstar"
)

// Wall is the rune FromRows treats as impassable.
const Wall = '#'

// Rows is an ASCII map, one string per grid row. It implements
// gridstar.Passability; cells outside the strings are impassable.
type Rows []string

// FromRows parses an ASCII map and returns it with its dimensions.
// All rows must have the same width.
func FromRows(rows ...string) (Rows, int, int, error) {
	if len(rows) == 0 {
		return nil, 0, 0, errors.New("map has no rows")
	}
	cols := len([]rune(rows[0]))
	for i, r := range rows {
		if n := len([]rune(r)); n != cols {
			return nil, 0, 0, fmt.Errorf("row %d has width %d, want %d", i, n, cols)
		}
	}
	return Rows(rows), cols, len(rows), nil
}

// Passable implements gridstar.Passability.
func (m Rows) Passable(_ gridstar.View, col, row int) bool {
	if row < 0 || row >= len(m) {
		return false
	}
	line := []rune(m[row])
	if col < 0 || col >= len(line) {
		return false
	}
	return line[col] != Wall
}

// Find returns the coordinate of the first occurrence of r, scanning rows
// top to bottom.
func (m Rows) Find(r rune) (col, row int, ok bool) {
	for y, line := range m {
		for x, c := range []rune(line) {
			if c == r {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
