package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-gen/internal/domain"
	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/solver"
)

// alwaysSolvable stands in for the real oracle when a test only cares about
// the distribution search.
type alwaysSolvable struct{}

func (alwaysSolvable) IsUniquelySolvable() bool { return true }

func boxBlankCounts(g *grid.Grid) [9]int {
	var counts [9]int
	for by := 0; by < grid.BoxSize; by++ {
		for bx := 0; bx < grid.BoxSize; bx++ {
			counts[by*grid.BoxSize+bx] = 9 - g.BoxSet(bx, by).Len()
		}
	}
	return counts
}

func filledGrid(t *testing.T, seed int64) *grid.Grid {
	t.Helper()
	g := grid.New()
	require.NoError(t, NewPopulator(rand.New(rand.NewSource(seed))).Fill(g))
	return g
}

func TestRemoveDistribution(t *testing.T) {
	const spaces = 45
	g := filledGrid(t, 1)

	rng := rand.New(rand.NewSource(1))
	rem := NewRemover(rng, RemoverConfig{Spaces: spaces})
	ok, err := rem.Remove(g, alwaysSolvable{})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, spaces, g.BlankCount())
	avg := spaces / 9
	atAvg := 0
	for box, n := range boxBlankCounts(g) {
		assert.GreaterOrEqual(t, n, avg-1, "box %d", box)
		assert.LessOrEqual(t, n, avg+1, "box %d", box)
		if n == avg {
			atAvg++
		}
	}
	assert.GreaterOrEqual(t, atAvg, 5)
}

func TestRemoveForgivingBand(t *testing.T) {
	const spaces = 45
	g := filledGrid(t, 2)

	rng := rand.New(rand.NewSource(2))
	rem := NewRemover(rng, RemoverConfig{Spaces: spaces, Leniency: domain.LeniencyForgiving})
	ok, err := rem.Remove(g, alwaysSolvable{})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, spaces, g.BlankCount())
	avg := spaces / 9
	for box, n := range boxBlankCounts(g) {
		assert.GreaterOrEqual(t, n, avg-2, "box %d", box)
		assert.LessOrEqual(t, n, avg+2, "box %d", box)
	}
}

func TestRemoveKeepsPuzzleUnique(t *testing.T) {
	const spaces = 45
	g := filledGrid(t, 3)
	solution := g.Cells()

	rng := rand.New(rand.NewSource(3))
	rem := NewRemover(rng, RemoverConfig{Spaces: spaces})
	ok, err := rem.Remove(g, solver.NewUniqueness(g))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, spaces, g.BlankCount())

	count, solved, _ := solver.NewBruteForce(g).Solve()
	require.Equal(t, 1, count)
	assert.Equal(t, solution, solved.Cells(), "the unique solution is the grid the blanks were carved from")

	// Every remaining clue still carries its original digit.
	cells := g.Cells()
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Columns; x++ {
			if cells[y][x] != 0 {
				assert.Equal(t, solution[y][x], cells[y][x])
			}
		}
	}
}

func TestDistributionCheck(t *testing.T) {
	g := filledGrid(t, 4)
	r := NewRemover(rand.New(rand.NewSource(4)), RemoverConfig{Spaces: 45})
	r.g = g
	r.avgPerBox = 5
	r.minPerBox = 4
	r.maxPerBox = 6
	r.quotaAtAvg = 5

	// Full grid: every box has zero blanks, far below the band.
	assert.False(t, r.distributionOK())

	// Blank exactly five cells in every box.
	for by := 0; by < grid.BoxSize; by++ {
		for bx := 0; bx < grid.BoxSize; bx++ {
			for i := 0; i < 5; i++ {
				x := bx*grid.BoxSize + i%grid.BoxSize
				y := by*grid.BoxSize + i/grid.BoxSize
				require.NoError(t, g.SetValue(x, y, 0))
			}
		}
	}
	assert.True(t, r.distributionOK())
}
