// Package mapgen provides passability sources for filling a grid.
package mapgen

import (
	"math/rand"

	"github.com/randalmurphal/gridstar/pkg/gridstar"
)

// Random returns a source where each cell is passable with the given chance,
// in percent. Cells are decided in the order Fill visits them, so a seeded
// rng reproduces the same map.
func Random(rng *rand.Rand, chancePercent int) gridstar.Passability {
	threshold := float64(chancePercent) / 100.0
	return gridstar.PassabilityFunc(func(_ gridstar.View, _, _ int) bool {
		return rng.Float64() <= threshold
	})
}

// Open returns a source where every cell is passable.
func Open() gridstar.Passability {
	return gridstar.PassabilityFunc(func(_ gridstar.View, _, _ int) bool {
		return true
	})
}

// Blocked returns a source where every cell is impassable except the given
// coordinates.
func Blocked(except ...[2]int) gridstar.Passability {
	keep := make(map[[2]int]bool, len(except))
	for _, p := range except {
		keep[p] = true
	}
	return gridstar.PassabilityFunc(func(_ gridstar.View, col, row int) bool {
		return keep[[2]int{col, row}]
	})
}
