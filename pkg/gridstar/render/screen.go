package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/randalmurphal/gridstar/pkg/gridstar"
)

// Style returns the terminal style for a legend glyph.
func Style(glyph rune) tcell.Style {
	switch glyph {
	case GlyphStart, GlyphStartBlocked:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case GlyphEnd, GlyphEndBlocked:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case GlyphWall:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case GlyphPath:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case GlyphOpen:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case GlyphClosed:
		return tcell.StyleDefault.Foreground(tcell.ColorPurple)
	default:
		return tcell.StyleDefault
	}
}

// Draw paints the bordered map at the top-left corner of screen and the
// outcome (or status, while searching) on the row below it. It does not
// call Show.
func Draw(screen tcell.Screen, v gridstar.View, showOpenClosed bool, status string) {
	screen.Clear()

	wall := Style(GlyphWall)
	width := v.Cols() + 2
	for x := 0; x < width; x++ {
		screen.SetContent(x, 0, GlyphWall, nil, wall)
		screen.SetContent(x, v.Rows()+1, GlyphWall, nil, wall)
	}
	for row := 0; row < v.Rows(); row++ {
		y := row + 1
		screen.SetContent(0, y, GlyphWall, nil, wall)
		screen.SetContent(width-1, y, GlyphWall, nil, wall)
		for col := 0; col < v.Cols(); col++ {
			g := Glyph(v, col, row, showOpenClosed)
			screen.SetContent(col+1, y, g, nil, Style(g))
		}
	}

	if status == "" {
		status = Outcome(v)
	}
	for i, r := range []rune(status) {
		screen.SetContent(i, v.Rows()+2, r, nil, tcell.StyleDefault)
	}
}
