package solver

import (
	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/ports"
)

// Uniqueness is the solvability oracle the space remover consults. It owns a
// reference to the same grid the remover mutates, which is safe only because
// the calls are strictly nested and synchronous: each query runs a complete
// solve and restores the grid before the remover resumes.
type Uniqueness struct {
	g     *grid.Grid
	nodes int
}

var _ ports.Oracle = (*Uniqueness)(nil)

// NewUniqueness binds an oracle to g.
func NewUniqueness(g *grid.Grid) *Uniqueness {
	return &Uniqueness{g: g}
}

// IsUniquelySolvable reports whether the grid currently has exactly one
// solution.
func (u *Uniqueness) IsUniquelySolvable() bool {
	count, _, stats := NewBruteForce(u.g).Solve()
	u.nodes += stats.Nodes
	return count == 1
}

// Nodes returns the total number of search nodes visited across all queries
// since the oracle was created.
func (u *Uniqueness) Nodes() int { return u.nodes }
