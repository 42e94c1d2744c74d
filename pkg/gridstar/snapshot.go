package gridstar

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// snapshotScalars is the number of scalar fields ahead of the arrays.
const snapshotScalars = 5

// Snapshot is the raw state block in its external layout: five scalars
// followed by four Capacity-length arrays. Hooks are not part of it.
type Snapshot struct {
	Cols    int             `json:"cols"`
	Rows    int             `json:"rows"`
	Start   int             `json:"start"`
	End     int             `json:"end"`
	HasPath bool            `json:"has_path"`
	State   [Capacity]uint8 `json:"state"`
	Parent  [Capacity]int32 `json:"parent"`
	G       [Capacity]int32 `json:"g_score"`
	F       [Capacity]int32 `json:"f_score"`
}

// Export copies the state block into a snapshot.
func (e *Engine[D]) Export() Snapshot {
	s := Snapshot{
		Cols:    e.cols,
		Rows:    e.rows,
		Start:   e.start,
		End:     e.end,
		HasPath: e.hasPath,
	}
	for i, c := range e.cells {
		s.State[i] = uint8(c.State)
		s.Parent[i] = c.Parent
		s.G[i] = c.G
		s.F[i] = c.F
	}
	return s
}

// Import replaces the state block with the snapshot. Dimensions that do not
// fit the block are rejected and leave the engine untouched.
func (e *Engine[D]) Import(s Snapshot) error {
	if !fits(s.Cols, s.Rows) {
		return &CapacityError{Cols: s.Cols, Rows: s.Rows}
	}
	e.cols = s.Cols
	e.rows = s.Rows
	e.start = s.Start
	e.end = s.End
	e.hasPath = s.HasPath
	for i := range e.cells {
		e.cells[i] = Cell{
			State:  Flags(s.State[i]),
			Parent: s.Parent[i],
			G:      s.G[i],
			F:      s.F[i],
		}
	}
	return nil
}

// Equal reports whether two snapshots hold the same state block.
func (s Snapshot) Equal(other Snapshot) bool {
	return s == other
}

// WriteTo writes the snapshot as text, one value per line.
func (s Snapshot) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	line := func(v int64) error {
		written, err := bw.WriteString(strconv.FormatInt(v, 10) + "\n")
		n += int64(written)
		return err
	}

	hasPath := int64(0)
	if s.HasPath {
		hasPath = 1
	}
	for _, v := range []int64{int64(s.Cols), int64(s.Rows), int64(s.Start), int64(s.End), hasPath} {
		if err := line(v); err != nil {
			return n, err
		}
	}
	for _, v := range s.State {
		if err := line(int64(v)); err != nil {
			return n, err
		}
	}
	for _, arr := range []*[Capacity]int32{&s.Parent, &s.G, &s.F} {
		for _, v := range arr {
			if err := line(int64(v)); err != nil {
				return n, err
			}
		}
	}
	return n, bw.Flush()
}

// ReadSnapshot parses the text layout written by WriteTo.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func(bits int) (int64, error) {
		for sc.Scan() {
			lineNo++
			text := strings.TrimSpace(sc.Text())
			if text == "" {
				continue
			}
			v, err := strconv.ParseInt(text, 10, bits)
			if err != nil {
				return 0, fmt.Errorf("%w: line %d: %v", ErrMalformedSnapshot, lineNo, err)
			}
			return v, nil
		}
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: unexpected end of input after line %d", ErrMalformedSnapshot, lineNo)
	}

	scalars := make([]int, snapshotScalars)
	for i := range scalars {
		v, err := next(32)
		if err != nil {
			return s, err
		}
		scalars[i] = int(v)
	}
	s.Cols, s.Rows, s.Start, s.End = scalars[0], scalars[1], scalars[2], scalars[3]
	switch scalars[4] {
	case 0:
	case 1:
		s.HasPath = true
	default:
		return s, fmt.Errorf("%w: has_path must be 0 or 1, got %d", ErrMalformedSnapshot, scalars[4])
	}

	for i := range s.State {
		v, err := next(32)
		if err != nil {
			return s, err
		}
		if v < 0 || v > 0xff {
			return s, fmt.Errorf("%w: line %d: state %d out of range", ErrMalformedSnapshot, lineNo, v)
		}
		s.State[i] = uint8(v)
	}
	for _, arr := range []*[Capacity]int32{&s.Parent, &s.G, &s.F} {
		for i := range arr {
			v, err := next(32)
			if err != nil {
				return s, err
			}
			arr[i] = int32(v)
		}
	}
	return s, nil
}
