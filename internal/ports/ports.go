package ports

import (
	"time"

	"svw.info/sudoku-gen/internal/domain"
	"svw.info/sudoku-gen/internal/grid"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Oracle reports whether the grid it is bound to currently has exactly one
// solution. The space remover calls it synchronously after each tentative
// blanking; the oracle must leave the grid exactly as it found it.
type Oracle interface {
	IsUniquelySolvable() bool
}

// Solver exhaustively counts solutions of a grid and yields one example
// solved grid (nil when the count is zero).
type Solver interface {
	Solve() (count int, solution *grid.Grid, stats Stats)
}

// Generator produces a complete puzzle from scratch.
type Generator interface {
	Generate(cfg domain.GenerateConfig) (*domain.Puzzle, Stats, error)
}

// Validator performs an independent row/column/box conflict scan.
type Validator interface {
	Validate(cells [grid.Rows][grid.Columns]uint8) (ok bool, conflicts []domain.CellCoord)
}
