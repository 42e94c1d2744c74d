/*
Package gridstar provides an incremental A* path search over a small grid.

# Overview

The whole search lives in one fixed-size state block of Capacity (1024)
cells. Each cell carries a Flags bit set (passable, open, closed, path), a
parent index and g/f scores. Movement is 4-connected with a uniform step
cost of 1, and the heuristic is the Manhattan distance to the end cell.

# Basic Usage

Configure the grid, fill passability, then run to completion:

	e := gridstar.New[struct{}]()
	if err := e.SetSize(5, 4); err != nil {
	    log.Fatal(err) // more than Capacity cells
	}
	e.SetPassability(gridstar.PassabilityFunc(func(_ gridstar.View, col, row int) bool {
	    return !(col == 2 && row < 3)
	}))
	if err := e.Fill(); err != nil {
	    log.Fatal(err)
	}
	e.SetStart(1, 1)
	e.SetEnd(3, 3)
	e.Find(struct{}{})
	fmt.Println(e.HasPath(), e.Path())

# Stepping

Step expands exactly one frontier cell and reports whether there is more to
do, so a caller can render, sleep or check for cancellation in between:

	e.Begin()
	for e.Step(struct{}{}) {
	    render.ASCII(os.Stdout, e, render.Options{ShowOpenClosed: true})
	}

Run wraps the same loop with context cancellation, a step limit, step hooks,
slog logging, OpenTelemetry metrics and tracing, and checkpointing:

	res, err := e.Run(ctx, struct{}{},
	    gridstar.WithLogger(logger),
	    gridstar.WithCheckpointing(store),
	    gridstar.WithRunID("run-123"))

	// After a crash
	res, err = e.Resume(ctx, store, "run-123", struct{}{})

# Scoring

A Scorer adds an extra term to every relaxed neighbor's f-score. Its context
value is typed by the engine's type parameter:

	type terrain struct{ mud map[int]bool }

	e := gridstar.New[terrain]()
	e.SetScorer(gridstar.ScorerFunc[terrain](func(v gridstar.View, row, col int, t terrain) int {
	    if t.mud[row*v.Cols()+col] {
	        return 5
	    }
	    return 0
	}))

# Errors

Configuration problems are returned: SetSize and Import reject grids larger
than Capacity with *CapacityError, Fill without a passability source returns
ErrNoPassability, and Validate reports start or end outside the grid. Query
accessors and Begin panic with *CoordinateError on out-of-grid coordinates,
since a bad index would silently read another cell. Finding no path is not an
error: HasPath reports false.

# Thread Safety

An Engine is not safe for concurrent use. Use one engine per concurrent
search. Checkpoint stores are safe for concurrent use.

# Subpackages

  - checkpoint: snapshot storage (memory, SQLite)
  - config: YAML/JSON search configuration
  - mapgen: passability sources (random, ASCII rows)
  - observability: logging, metrics, and tracing helpers
  - render: ASCII and terminal (tcell) rendering
*/
package gridstar
