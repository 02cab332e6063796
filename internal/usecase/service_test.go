package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"svw.info/sudoku-gen/internal/domain"
	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/solver"
	"svw.info/sudoku-gen/internal/validator"
)

func TestGenerateEndToEnd(t *testing.T) {
	svc := NewService(zap.NewNop())
	p, stats, err := svc.Generate(domain.GenerateConfig{Seed: 42, Spaces: 45})
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, int64(42), p.Seed)
	assert.Equal(t, 45, p.Spaces)
	assert.Equal(t, 36, p.Clues)
	assert.Positive(t, stats.Nodes)

	g, err := grid.FromCells(p.Cells)
	require.NoError(t, err)
	assert.Equal(t, 45, g.BlankCount())

	// The puzzle must have exactly one solution, and it must be the grid
	// the blanks were carved from.
	count, solved, _ := solver.NewBruteForce(g).Solve()
	require.Equal(t, 1, count)
	assert.Equal(t, p.Solution, solved.Cells())

	ok, conflicts := validator.New().Validate(p.Solution)
	assert.True(t, ok, "conflicts: %v", conflicts)

	// Blanks stay balanced across boxes.
	avg := p.Spaces / 9
	atAvg := 0
	for by := 0; by < grid.BoxSize; by++ {
		for bx := 0; bx < grid.BoxSize; bx++ {
			blanks := 9 - g.BoxSet(bx, by).Len()
			assert.GreaterOrEqual(t, blanks, avg-1)
			assert.LessOrEqual(t, blanks, avg+1)
			if blanks == avg {
				atAvg++
			}
		}
	}
	assert.GreaterOrEqual(t, atAvg, 5)
}

func TestGenerateSeedsDiffer(t *testing.T) {
	svc := NewService(nil)
	p1, _, err := svc.Generate(domain.GenerateConfig{Seed: 5, Spaces: 40})
	require.NoError(t, err)
	p2, _, err := svc.Generate(domain.GenerateConfig{Seed: 6, Spaces: 40})
	require.NoError(t, err)
	assert.NotEqual(t, p1.Cells, p2.Cells)
}

func TestSolvePassthrough(t *testing.T) {
	g, err := grid.Parse("53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79")
	require.NoError(t, err)

	count, solved, stats := NewService(nil).Solve(g)
	assert.Equal(t, 1, count)
	require.NotNil(t, solved)
	assert.Equal(t, 0, solved.BlankCount())
	assert.Positive(t, stats.Nodes)
}
