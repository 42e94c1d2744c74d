package gridstar

// noNeighbor marks a left or right neighbor that would wrap to another row.
const noNeighbor = -1

// LowestInOpenSet returns the open cell with the smallest f-score. Ties go
// to the lowest index. When the open set is empty it returns 0, which is
// indistinguishable from a real answer; check OpenSetIsEmpty first.
func (e *Engine[D]) LowestInOpenSet() int {
	i, _ := e.lowestOpen()
	return i
}

// OpenSetIsEmpty reports whether no cell in the grid is open.
func (e *Engine[D]) OpenSetIsEmpty() bool {
	_, ok := e.lowestOpen()
	return !ok
}

func (e *Engine[D]) lowestOpen() (int, bool) {
	lowest, found := 0, false
	var lowestF int32
	count := e.cols * e.rows
	for i := 0; i < count; i++ {
		c := &e.cells[i]
		if !c.State.IsOpen() {
			continue
		}
		if !found || c.F < lowestF {
			lowest, lowestF, found = i, c.F, true
		}
	}
	return lowest, found
}

// Heuristic returns the Manhattan distance from cell to the end cell. It is
// 0 while no grid size is configured.
func (e *Engine[D]) Heuristic(cell int) int {
	if e.cols == 0 {
		return 0
	}
	cellRow := cell / e.cols
	cellCol := cell - cellRow*e.cols
	endRow := e.end / e.cols
	endCol := e.end - endRow*e.cols
	return abs(cellCol-endCol) + abs(cellRow-endRow)
}

// Begin opens the start cell. Call it once before the first Step.
func (e *Engine[D]) Begin() {
	if err := e.checkIndex("begin", e.start); err != nil {
		panic(err)
	}
	e.cells[e.start].State |= Open
}

// Step expands one frontier cell. It returns false once the search is over,
// with HasPath reporting the outcome, and true while there is more to do.
func (e *Engine[D]) Step(data D) bool {
	_, more := e.step(data)
	return more
}

// Find runs Begin and then steps until the search is over.
func (e *Engine[D]) Find(data D) {
	e.Begin()
	for e.Step(data) {
	}
}

// step returns the cell it selected along with the continue flag.
func (e *Engine[D]) step(data D) (int, bool) {
	current, ok := e.lowestOpen()
	if ok && current == e.end {
		e.reconstruct()
		e.hasPath = true
		return current, false
	}
	if !ok {
		e.hasPath = false
		return current, false
	}

	e.cells[current].State &^= Open
	e.cells[current].State |= Closed

	count := e.cols * e.rows
	neighbors := [4]int{
		current - 1,      // left
		current - e.cols, // top
		current + 1,      // right
		current + e.cols, // bottom
	}
	if current%e.cols == 0 {
		neighbors[0] = noNeighbor
	}
	if (current+1)%e.cols == 0 {
		neighbors[2] = noNeighbor
	}

	for _, n := range neighbors {
		if n < 0 || n >= count || e.cells[n].State.IsClosed() {
			continue
		}
		cell := &e.cells[n]
		if !cell.State.IsPassable() {
			cell.State |= Closed
			continue
		}
		g := e.cells[current].G + 1
		if cell.State.IsOpen() && g >= cell.G {
			continue
		}
		cell.Parent = int32(current)
		cell.G = g
		cell.F = g + int32(e.Heuristic(n))
		if e.scorer != nil {
			cell.F += int32(e.scorer.Score(e, n/e.cols, n%e.cols, data))
		}
		cell.State |= Open
	}
	return current, true
}

// reconstruct walks parent links from end back to start and marks every
// parent except start itself.
func (e *Engine[D]) reconstruct() {
	for i := e.end; i != e.start; {
		parent := int(e.cells[i].Parent)
		if parent != e.start {
			e.cells[parent].State |= Path
		}
		i = parent
	}
}

// Path returns the found route as cell indices from start to end inclusive,
// or nil if the last search found nothing.
func (e *Engine[D]) Path() []int {
	if !e.hasPath {
		return nil
	}
	path := []int{e.end}
	for i := e.end; i != e.start; {
		i = int(e.cells[i].Parent)
		path = append(path, i)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
