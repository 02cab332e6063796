package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"svw.info/sudoku-gen/internal/grid"
)

// ErrGenerationFailed means the populator exhausted both its row-level and
// grid-level retry budgets. Callers may simply attempt the whole generation
// again.
var ErrGenerationFailed = errors.New("could not populate grid")

const (
	// A row whose greedy random choices leave a later cell with no
	// column/box-consistent digit is cleared and retried this many times.
	maxRowRetries = 20
	// Occasionally the early rows themselves are an unlucky combination;
	// the whole fill is then restarted, up to this many times.
	maxGridRetries = 40
)

// Populator fills an empty grid with a complete rule-conforming assignment
// by per-row randomized construction.
type Populator struct {
	rng *rand.Rand
}

func NewPopulator(rng *rand.Rand) *Populator {
	return &Populator{rng: rng}
}

// Fill populates g with digits 1-9 such that no row, column or box repeats
// a digit. The grid is left fully populated on success and cleared state may
// remain on failure.
func (p *Populator) Fill(g *grid.Grid) error {
	for redo := 0; redo < maxGridRetries; redo++ {
		if p.attemptFill(g) {
			return nil
		}
	}
	return fmt.Errorf("%w after %d attempts", ErrGenerationFailed, maxGridRetries)
}

// attemptFill tries to fill the grid row by row, retrying each row up to
// maxRowRetries when its random choices dead-end.
func (p *Populator) attemptFill(g *grid.Grid) bool {
	for y := 0; y < grid.Rows; y++ {
		redo := 0
		for ; redo < maxRowRetries; redo++ {
			if p.fillRow(g, y) {
				break
			}
		}
		if redo == maxRowRetries {
			return false
		}
	}
	return true
}

// fillRow assigns a digit to every cell of row y, choosing uniformly at
// random among the digits not yet used in the row, the cell's column or its
// box. Returns false if some cell ends up with no viable choice.
func (p *Populator) fillRow(g *grid.Grid, y int) bool {
	_ = g.ClearRow(y)
	rowOptions := grid.FullSet()
	for x := 0; x < grid.Columns; x++ {
		bx, by := x/grid.BoxSize, y/grid.BoxSize
		choices := rowOptions.Diff(g.ColumnSet(x), g.BoxSet(bx, by))
		if choices.Len() == 0 {
			return false
		}
		vals := choices.Values()
		choice := vals[p.rng.Intn(len(vals))]
		// choices was derived from the index sets, so no duplicate
		// re-validation is needed.
		g.SetForce(x, y, choice)
		rowOptions.Discard(choice)
	}
	return true
}
