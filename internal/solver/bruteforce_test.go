package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/validator"
)

// The classic example puzzle and its unique solution.
const (
	classicPuzzle = "53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79"
	classicSolution = "534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"
)

func TestSolveClassicPuzzle(t *testing.T) {
	g, err := grid.Parse(classicPuzzle)
	require.NoError(t, err)

	count, solved, stats := NewBruteForce(g).Solve()
	require.Equal(t, 1, count)
	require.NotNil(t, solved)
	assert.Positive(t, stats.Nodes)

	want, err := grid.Parse(classicSolution)
	require.NoError(t, err)
	assert.Equal(t, want.Cells(), solved.Cells())

	ok, conflicts := validator.New().Validate(solved.Cells())
	assert.True(t, ok, "conflicts: %v", conflicts)
}

func TestSolveRestoresGrid(t *testing.T) {
	g, err := grid.Parse(classicPuzzle)
	require.NoError(t, err)
	before := g.Cells()

	_, _, _ = NewBruteForce(g).Solve()
	assert.Equal(t, before, g.Cells(), "every tentative write must be undone")
}

func TestSolveSingleBlank(t *testing.T) {
	solved, err := grid.Parse(classicSolution)
	require.NoError(t, err)
	// Blank one cell; its groups hold the other eight digits.
	require.NoError(t, solved.SetValue(0, 0, 0))

	count, solution, _ := NewBruteForce(solved).Solve()
	require.Equal(t, 1, count)
	v, err := solution.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), v)
}

func TestSolveExactlyTwoSolutions(t *testing.T) {
	g, err := grid.Parse(classicSolution)
	require.NoError(t, err)
	// Blank an unavoidable rectangle: rows 3 and 4 share digits 1 and 3 in
	// columns 5 and 8, swappable without touching any other group.
	for _, c := range []struct{ x, y int }{{5, 3}, {8, 3}, {5, 4}, {8, 4}} {
		require.NoError(t, g.SetValue(c.x, c.y, 0))
	}

	count, solution, _ := NewBruteForce(g).Solve()
	assert.Equal(t, 2, count, "the search must not stop after the first solution")
	require.NotNil(t, solution)

	ok, _ := validator.New().Validate(solution.Cells())
	assert.True(t, ok)
}

func TestSolveContradiction(t *testing.T) {
	// (0,0) is blank while its row holds 1-8 and its column holds 9: no
	// candidate remains even though no group has a duplicate.
	board := ".12345678" +
		"9........" +
		strings.Repeat(".", 63)
	g, err := grid.Parse(board)
	require.NoError(t, err)

	blank, options, err := g.PossibleValues(0, 0)
	require.NoError(t, err)
	require.True(t, blank)
	require.Equal(t, 0, options.Len())

	count, solution, _ := NewBruteForce(g).Solve()
	assert.Equal(t, 0, count)
	assert.Nil(t, solution)
}

func TestUniquenessOracle(t *testing.T) {
	g, err := grid.Parse(classicPuzzle)
	require.NoError(t, err)
	oracle := NewUniqueness(g)

	before := g.Cells()
	assert.True(t, oracle.IsUniquelySolvable())
	assert.Equal(t, before, g.Cells(), "the oracle must leave the grid as it found it")
	assert.Positive(t, oracle.Nodes())

	two, err := grid.Parse(classicSolution)
	require.NoError(t, err)
	for _, c := range []struct{ x, y int }{{5, 3}, {8, 3}, {5, 4}, {8, 4}} {
		require.NoError(t, two.SetValue(c.x, c.y, 0))
	}
	assert.False(t, NewUniqueness(two).IsUniquelySolvable())
}
