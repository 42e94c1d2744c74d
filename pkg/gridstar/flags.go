package gridstar

import "strings"

// Flags is the per-cell state bit set. Bits are independent and combinable;
// the numeric values are part of the snapshot layout and must not change.
type Flags uint8

const (
	// Passable marks a traversable cell.
	Passable Flags = 1 << iota
	// Open marks a discovered cell waiting in the frontier.
	Open
	// Closed marks an expanded cell, or an impassable neighbor that was rejected.
	Closed
	// Path marks a cell on the reconstructed route.
	Path
)

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// IsPassable reports whether the Passable bit is set.
func (f Flags) IsPassable() bool { return f.Has(Passable) }

// IsOpen reports whether the Open bit is set.
func (f Flags) IsOpen() bool { return f.Has(Open) }

// IsClosed reports whether the Closed bit is set.
func (f Flags) IsClosed() bool { return f.Has(Closed) }

// IsPath reports whether the Path bit is set.
func (f Flags) IsPath() bool { return f.Has(Path) }

// String returns the set bits joined by "|", or "none".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, b := range []struct {
		flag Flags
		name string
	}{
		{Passable, "passable"},
		{Open, "open"},
		{Closed, "closed"},
		{Path, "path"},
	} {
		if f.Has(b.flag) {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}
