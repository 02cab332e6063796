package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/sudoku-gen/internal/domain"
	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/solver"
	"svw.info/sudoku-gen/internal/usecase"
	"svw.info/sudoku-gen/internal/validator"
)

var samplePuzzle = [][]int{
	{8, 5, 0, 0, 0, 1, 0, 0, 6},
	{0, 0, 7, 0, 6, 4, 1, 0, 0},
	{0, 0, 4, 0, 7, 0, 5, 9, 0},
	{2, 0, 0, 0, 5, 6, 0, 0, 4},
	{6, 0, 0, 1, 0, 9, 0, 7, 0},
	{7, 0, 1, 0, 4, 0, 0, 0, 9},
	{0, 1, 0, 9, 0, 0, 4, 6, 0},
	{0, 9, 6, 0, 0, 8, 0, 0, 7},
	{0, 7, 0, 6, 0, 0, 0, 0, 1},
}

// Contains an overly-long row.
var badPuzzleOverlongRow = [][]int{
	{8, 5, 0, 0, 0, 1, 0, 0, 6},
	{0, 0, 7, 0, 6, 4, 1, 0, 0},
	{0, 0, 4, 0, 7, 0, 5, 9, 0},
	{2, 0, 0, 0, 5, 6, 0, 0, 4, 3},
	{6, 0, 0, 1, 0, 9, 0, 7, 0},
	{7, 0, 1, 0, 4, 0, 0, 0, 9},
	{0, 1, 0, 9, 0, 0, 4, 6, 0},
	{0, 9, 6, 0, 0, 8, 0, 0, 7},
	{0, 7, 0, 6, 0, 0, 0, 0, 1},
}

// Contains an unacceptable value.
var badPuzzleBadValue = [][]int{
	{111, 5, 0, 0, 0, 1, 0, 0, 6},
	{0, 0, 7, 0, 6, 4, 1, 0, 0},
	{0, 0, 4, 0, 7, 0, 5, 9, 0},
	{2, 0, 0, 0, 5, 6, 0, 0, 4},
	{6, 0, 0, 1, 0, 9, 0, 7, 0},
	{7, 0, 1, 0, 4, 0, 0, 0, 9},
	{0, 1, 0, 9, 0, 0, 4, 6, 0},
	{0, 9, 6, 0, 0, 8, 0, 0, 7},
	{0, 7, 0, 6, 0, 0, 0, 0, 1},
}

var selftestCase string

var commandSelftest = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in sample puzzles and a seeded generation",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSelftest(); err != nil {
			logger.Fatal("selftest failed", zap.Error(err))
		}
	},
}

func init() {
	commandSelftest.Flags().StringVar(&selftestCase, "case", "",
		"run a single case: sample, overlong-row, bad-value, generate")
	mainCommand.AddCommand(commandSelftest)
}

func runSelftest() error {
	cases := []struct {
		name string
		run  func() error
	}{
		{"sample", selftestSample},
		{"overlong-row", selftestOverlongRow},
		{"bad-value", selftestBadValue},
		{"generate", selftestGenerate},
	}
	ran := 0
	for _, c := range cases {
		if selftestCase != "" && selftestCase != c.name {
			continue
		}
		ran++
		fmt.Printf("--- %s\n", c.name)
		if err := c.run(); err != nil {
			return fmt.Errorf("case %s: %w", c.name, err)
		}
		fmt.Printf("--- %s ok\n\n", c.name)
	}
	if ran == 0 {
		return fmt.Errorf("unknown case %q", selftestCase)
	}
	return nil
}

func selftestSample() error {
	g := grid.New()
	if err := g.PopulateFromValues(samplePuzzle); err != nil {
		return err
	}
	fmt.Print(g.Format())

	count, solved, stats := solver.NewBruteForce(g).Solve()
	fmt.Printf("%d solution(s), %d nodes in %v\n", count, stats.Nodes, stats.Duration)
	if count == 0 || solved == nil {
		return errors.New("sample puzzle should be solvable")
	}
	if ok, conflicts := validator.New().Validate(solved.Cells()); !ok {
		return fmt.Errorf("solution has conflicts: %v", conflicts)
	}
	fmt.Print(solved.Format())
	return nil
}

func selftestOverlongRow() error {
	err := grid.New().PopulateFromValues(badPuzzleOverlongRow)
	if !errors.Is(err, grid.ErrShapeMismatch) {
		return fmt.Errorf("expected shape mismatch, got %v", err)
	}
	fmt.Printf("rejected as expected: %v\n", err)
	return nil
}

func selftestBadValue() error {
	err := grid.New().PopulateFromValues(badPuzzleBadValue)
	if !errors.Is(err, grid.ErrInvalidValue) {
		return fmt.Errorf("expected invalid value, got %v", err)
	}
	fmt.Printf("rejected as expected: %v\n", err)
	return nil
}

func selftestGenerate() error {
	svc := usecase.NewService(logger)
	p, stats, err := svc.Generate(domain.GenerateConfig{Seed: 1, Spaces: 45})
	if err != nil {
		return err
	}
	g, err := grid.FromCells(p.Cells)
	if err != nil {
		return err
	}
	fmt.Print(g.Format())
	fmt.Printf("%d spaces, %d nodes in %v\n", p.Spaces, stats.Nodes, stats.Duration)
	if g.BlankCount() != p.Spaces {
		return fmt.Errorf("expected %d blanks, found %d", p.Spaces, g.BlankCount())
	}
	return nil
}
