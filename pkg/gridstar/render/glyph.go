// Package render draws a grid search as text or onto a terminal screen.
package render

import "github.com/randalmurphal/gridstar/pkg/gridstar"

// Map legend.
const (
	GlyphStart        = 'S'
	GlyphStartBlocked = 's' // start placed on an impassable cell
	GlyphEnd          = 'E'
	GlyphEndBlocked   = 'e'
	GlyphOpen         = 'O'
	GlyphClosed       = 'X'
	GlyphPath         = '*'
	GlyphWall         = '#'
	GlyphEmpty        = ' '
)

// Glyph returns the rune for one cell. Start and end win over everything,
// then walls, then the path. Open and closed cells are only distinguished
// when showOpenClosed is set.
func Glyph(v gridstar.View, col, row int, showOpenClosed bool) rune {
	passable := v.IsPassable(col, row)
	switch {
	case v.IsStart(col, row):
		if passable {
			return GlyphStart
		}
		return GlyphStartBlocked
	case v.IsEnd(col, row):
		if passable {
			return GlyphEnd
		}
		return GlyphEndBlocked
	case !passable:
		return GlyphWall
	case v.IsPath(col, row):
		return GlyphPath
	case showOpenClosed && v.IsOpen(col, row) && !v.IsClosed(col, row):
		return GlyphOpen
	case showOpenClosed && v.IsClosed(col, row):
		return GlyphClosed
	default:
		return GlyphEmpty
	}
}

// Outcome is the one-line summary printed under a map.
func Outcome(v gridstar.View) string {
	if v.HasPath() {
		return "A path was found!"
	}
	return "No path was found!"
}
