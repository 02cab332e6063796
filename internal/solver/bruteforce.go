package solver

import (
	"time"

	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/ports"
)

// BruteForce exhaustively counts the solutions of a grid by backtracking
// over the 81 cells in row-major order, and captures one example solved
// grid. The search is intentionally exhaustive: it never stops early once a
// second solution is found, because callers need the exact count to decide
// uniqueness.
//
// The solver mutates the grid it is bound to while searching, but every
// tentative write is undone before it returns, so the grid comes back
// exactly as it went in.
type BruteForce struct {
	g        *grid.Grid
	solution *grid.Grid
	nodes    int
}

var _ ports.Solver = (*BruteForce)(nil)

// NewBruteForce binds a solver to g. The grid may be fully or partially
// filled.
func NewBruteForce(g *grid.Grid) *BruteForce {
	return &BruteForce{g: g}
}

// Solve counts all solutions reachable from the grid's current state. When
// the count is positive the returned grid holds the last solution found in
// search order; when it is zero the grid is nil.
func (s *BruteForce) Solve() (int, *grid.Grid, ports.Stats) {
	start := time.Now()
	s.solution = nil
	s.nodes = 0
	count := s.solve(0)
	return count, s.solution, ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}
}

func (s *BruteForce) solve(index int) int {
	if index >= grid.Cells {
		// Recursed past the last cell: a full consistent assignment.
		if s.solution == nil {
			s.solution = grid.New()
		}
		// CopyFrom replays a consistent grid, so it cannot fail here.
		_ = s.solution.CopyFrom(s.g)
		return 1
	}
	x, y := index%grid.Columns, index/grid.Columns
	blank, options, _ := s.g.PossibleValues(x, y)
	if !blank {
		return s.solve(index + 1)
	}
	if options.Len() == 0 {
		// Dead branch, nothing was written here.
		return 0
	}
	count := 0
	for _, val := range options.Values() {
		s.nodes++
		s.g.SetForce(x, y, val)
		count += s.solve(index + 1)
		_ = s.g.SetValue(x, y, 0)
	}
	return count
}
