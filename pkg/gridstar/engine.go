package gridstar

// Capacity is the fixed number of cells in the state block.
const Capacity = 1024

// Cell is the per-cell slot of the state block.
// Parent is an index into the same block; it is meaningful only once the
// cell has been opened. G and F are valid only once the cell has been opened.
type Cell struct {
	State  Flags
	Parent int32
	G      int32
	F      int32
}

// View is the read-only surface of an engine handed to callbacks and renderers.
type View interface {
	Cols() int
	Rows() int
	Start() int
	End() int
	HasPath() bool

	IsPassable(col, row int) bool
	IsOpen(col, row int) bool
	IsClosed(col, row int) bool
	IsPath(col, row int) bool
	IsStart(col, row int) bool
	IsEnd(col, row int) bool

	// Score returns the current f-score of the cell.
	Score(col, row int) int
}

// Passability decides whether a cell is traversable. It is consulted once
// per cell, in row-major order, by Fill.
type Passability interface {
	Passable(v View, col, row int) bool
}

// PassabilityFunc adapts a function to Passability.
type PassabilityFunc func(v View, col, row int) bool

// Passable implements Passability.
func (f PassabilityFunc) Passable(v View, col, row int) bool { return f(v, col, row) }

// Scorer adds an extra cost term to a relaxed neighbor's f-score.
// Note the argument order: row first, then col.
type Scorer[D any] interface {
	Score(v View, row, col int, data D) int
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc[D any] func(v View, row, col int, data D) int

// Score implements Scorer.
func (f ScorerFunc[D]) Score(v View, row, col int, data D) int { return f(v, row, col, data) }

// Engine is an incremental A* search over a grid of at most Capacity cells.
//
// D is the type of the context value passed through Step and Find to the
// Scorer. The engine is not safe for concurrent use; use one engine per
// concurrent search.
type Engine[D any] struct {
	cols    int
	rows    int
	start   int
	end     int
	hasPath bool

	cells [Capacity]Cell

	passability Passability
	scorer      Scorer[D]
}

// Plain is an engine whose scorer takes no context value.
type Plain = Engine[struct{}]

// Compile-time interface check.
var _ View = (*Engine[struct{}])(nil)

// New returns an initialized engine with no grid configured.
func New[D any]() *Engine[D] {
	e := &Engine[D]{}
	e.Initialize()
	return e
}

// Initialize resets the whole state block: every cell becomes Passable with
// zeroed parent and scores, and dimensions, start, end and the result flag
// are zeroed. Hooks are left untouched.
func (e *Engine[D]) Initialize() {
	for i := range e.cells {
		e.cells[i] = Cell{State: Passable}
	}
	e.cols = 0
	e.rows = 0
	e.start = 0
	e.end = 0
	e.hasPath = false
}

// SetSize configures the grid dimensions. It rejects sizes that would not
// fit in the state block before anything reads it.
func (e *Engine[D]) SetSize(cols, rows int) error {
	if cols < 1 || rows < 1 || !fits(cols, rows) {
		return &CapacityError{Cols: cols, Rows: rows}
	}
	e.cols = cols
	e.rows = rows
	return nil
}

// fits reports whether a cols by rows grid fits in the state block. Each
// dimension is bounded first so the product cannot overflow.
func fits(cols, rows int) bool {
	return cols >= 0 && rows >= 0 && cols <= Capacity && rows <= Capacity && cols*rows <= Capacity
}

// SetPassability sets the source consulted by Fill.
func (e *Engine[D]) SetPassability(p Passability) {
	e.passability = p
}

// SetScorer sets the optional extra cost term. A nil scorer means f-scores
// are heuristic only.
func (e *Engine[D]) SetScorer(s Scorer[D]) {
	e.scorer = s
}

// Fill asks the passability source about every cell in row-major order and
// sets or clears the Passable bit. Other bits are untouched.
func (e *Engine[D]) Fill() error {
	if e.passability == nil {
		return ErrNoPassability
	}
	for row := 0; row < e.rows; row++ {
		for col := 0; col < e.cols; col++ {
			i := row*e.cols + col
			if e.passability.Passable(e, col, row) {
				e.cells[i].State |= Passable
			} else {
				e.cells[i].State &^= Passable
			}
		}
	}
	return nil
}

// ClearPath erases search progress across the full block so the same map can
// be searched again. Passability and dimensions are preserved.
func (e *Engine[D]) ClearPath() {
	for i := range e.cells {
		e.cells[i] = Cell{State: e.cells[i].State &^ (Open | Closed | Path)}
	}
	e.hasPath = false
}

// SetStart stores the start cell. The coordinate is not validated.
func (e *Engine[D]) SetStart(col, row int) {
	e.start = row*e.cols + col
}

// SetEnd stores the end cell. The coordinate is not validated.
func (e *Engine[D]) SetEnd(col, row int) {
	e.end = row*e.cols + col
}

// Index converts a coordinate into a cell index, rejecting coordinates
// outside the configured grid.
func (e *Engine[D]) Index(col, row int) (int, error) {
	if col < 0 || col >= e.cols || row < 0 || row >= e.rows {
		return 0, &CoordinateError{Op: "index", Col: col, Row: row, Cols: e.cols, Rows: e.rows}
	}
	return row*e.cols + col, nil
}

// Validate checks that the engine is ready to search: dimensions fit the
// block and start and end lie inside the grid.
func (e *Engine[D]) Validate() error {
	if e.cols < 1 || e.rows < 1 || !fits(e.cols, e.rows) {
		return &CapacityError{Cols: e.cols, Rows: e.rows}
	}
	if err := e.checkIndex("start", e.start); err != nil {
		return err
	}
	return e.checkIndex("end", e.end)
}

func (e *Engine[D]) checkIndex(op string, i int) error {
	if i < 0 || i >= e.cols*e.rows {
		col, row := i, 0
		if e.cols > 0 {
			row = i / e.cols
			col = i - row*e.cols
		}
		return &CoordinateError{Op: op, Col: col, Row: row, Cols: e.cols, Rows: e.rows}
	}
	return nil
}

// at returns the index of a coordinate, panicking when it falls outside the
// configured grid so that a bad coordinate never aliases another cell.
func (e *Engine[D]) at(op string, col, row int) int {
	if col < 0 || col >= e.cols || row < 0 || row >= e.rows {
		panic(&CoordinateError{Op: op, Col: col, Row: row, Cols: e.cols, Rows: e.rows})
	}
	return row*e.cols + col
}

// Cols returns the grid width.
func (e *Engine[D]) Cols() int { return e.cols }

// Rows returns the grid height.
func (e *Engine[D]) Rows() int { return e.rows }

// Start returns the start cell index.
func (e *Engine[D]) Start() int { return e.start }

// End returns the end cell index.
func (e *Engine[D]) End() int { return e.end }

// HasPath reports whether the last finished search found a route.
func (e *Engine[D]) HasPath() bool { return e.hasPath }

// Cell returns the raw state of the cell at index i.
func (e *Engine[D]) Cell(i int) Cell { return e.cells[i] }

// IsPassable reports whether the cell is traversable.
func (e *Engine[D]) IsPassable(col, row int) bool {
	return e.cells[e.at("is_passable", col, row)].State.IsPassable()
}

// IsClosed reports whether the cell has been expanded or rejected.
func (e *Engine[D]) IsClosed(col, row int) bool {
	return e.cells[e.at("is_closed", col, row)].State.IsClosed()
}

// IsOpen reports whether the cell is in the frontier.
func (e *Engine[D]) IsOpen(col, row int) bool {
	return e.cells[e.at("is_open", col, row)].State.IsOpen()
}

// IsPath reports whether the cell is on the reconstructed route.
func (e *Engine[D]) IsPath(col, row int) bool {
	return e.cells[e.at("is_path", col, row)].State.IsPath()
}

// IsStart reports whether the coordinate is the start cell.
func (e *Engine[D]) IsStart(col, row int) bool {
	return e.at("is_start", col, row) == e.start
}

// IsEnd reports whether the coordinate is the end cell.
func (e *Engine[D]) IsEnd(col, row int) bool {
	return e.at("is_end", col, row) == e.end
}

// Score returns the current f-score of the cell.
func (e *Engine[D]) Score(col, row int) int {
	return int(e.cells[e.at("score", col, row)].F)
}
