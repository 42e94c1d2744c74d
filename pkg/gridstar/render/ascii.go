package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/randalmurphal/gridstar/pkg/gridstar"
)

// Options controls ASCII output.
type Options struct {
	// ShowOpenClosed marks frontier and expanded cells, for progress frames.
	ShowOpenClosed bool
	// Chance is the passable percentage shown in the legend.
	Chance int
	// NoLegend skips the legend block.
	NoLegend bool
}

// ASCII writes the legend, the bordered map and the outcome line.
func ASCII(w io.Writer, v gridstar.View, opts Options) error {
	bw := bufio.NewWriter(w)
	if !opts.NoLegend {
		fmt.Fprintf(bw, "  Passable chance: %d\n", opts.Chance)
		fmt.Fprintf(bw, "            Start: '%c' (or '%c' if fall in a wall)\n", GlyphStart, GlyphStartBlocked)
		fmt.Fprintf(bw, "              End: '%c' (or '%c' if fall in a wall)\n", GlyphEnd, GlyphEndBlocked)
		fmt.Fprintf(bw, "        Open path: '%c'\n", GlyphOpen)
		fmt.Fprintf(bw, "      Closed path: '%c'\n", GlyphClosed)
		fmt.Fprintf(bw, "             Path: '%c'\n", GlyphPath)
		fmt.Fprintf(bw, "       Unpassable: '%c'\n", GlyphWall)
	}
	bw.WriteString("Map:\n")

	border := strings.Repeat(string(GlyphWall), v.Cols()+2) + "\n"
	bw.WriteString(border)
	for row := 0; row < v.Rows(); row++ {
		bw.WriteRune(GlyphWall)
		for col := 0; col < v.Cols(); col++ {
			bw.WriteRune(Glyph(v, col, row, opts.ShowOpenClosed))
		}
		bw.WriteRune(GlyphWall)
		bw.WriteByte('\n')
	}
	bw.WriteString(border)
	bw.WriteString(Outcome(v) + "\n\n")
	return bw.Flush()
}

// Lines returns just the map rows, without border or legend.
func Lines(v gridstar.View, showOpenClosed bool) []string {
	lines := make([]string, v.Rows())
	var sb strings.Builder
	for row := range lines {
		sb.Reset()
		for col := 0; col < v.Cols(); col++ {
			sb.WriteRune(Glyph(v, col, row, showOpenClosed))
		}
		lines[row] = sb.String()
	}
	return lines
}
