package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/sudoku-gen/internal/domain"
	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/usecase"
)

var (
	generateSpaces    int
	generateClues     int
	generateSeed      int64
	generateForgiving bool
	generateSolve     bool
	generateLarge     bool
	generateJSON      bool
)

var commandGenerate = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle with a unique solution",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(); err != nil {
			logger.Fatal("generate failed", zap.Error(err))
		}
	},
}

func init() {
	commandGenerate.Flags().IntVar(&generateSpaces, "spaces", 46, "number of cells to blank")
	commandGenerate.Flags().IntVar(&generateClues, "clues", 0, "number of clues to keep (overrides --spaces)")
	commandGenerate.Flags().Int64Var(&generateSeed, "seed", 0, "random seed, 0 picks one from the clock")
	commandGenerate.Flags().BoolVar(&generateForgiving, "forgiving", false, "relax the per-box blank distribution")
	commandGenerate.Flags().BoolVar(&generateSolve, "solve", false, "also print the solution")
	commandGenerate.Flags().BoolVar(&generateLarge, "large", false, "print the large, printer-friendly board")
	commandGenerate.Flags().BoolVar(&generateJSON, "json", false, "emit the puzzle as JSON")
	mainCommand.AddCommand(commandGenerate)
}

func runGenerate() error {
	spaces := generateSpaces
	if generateClues > 0 {
		spaces = grid.Cells - generateClues
	}
	if spaces < 1 || spaces >= grid.Cells {
		return fmt.Errorf("space count %d out of range", spaces)
	}
	leniency := domain.LeniencyStrict
	if generateForgiving {
		leniency = domain.LeniencyForgiving
	}

	svc := usecase.NewService(logger)
	p, stats, err := svc.Generate(domain.GenerateConfig{
		Seed:     generateSeed,
		Spaces:   spaces,
		Leniency: leniency,
	})
	if err != nil {
		return err
	}

	if generateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	puzzle, err := grid.FromCells(p.Cells)
	if err != nil {
		return err
	}
	if generateLarge {
		fmt.Print(puzzle.FormatLarge())
	} else {
		fmt.Print(puzzle.Format())
	}
	fmt.Printf("seed %d, %d spaces, %d clues, %d nodes in %v\n",
		p.Seed, p.Spaces, p.Clues, stats.Nodes, stats.Duration)

	if generateSolve {
		solution, err := grid.FromCells(p.Solution)
		if err != nil {
			return err
		}
		fmt.Println("\nSolution:")
		fmt.Print(solution.Format())
	}
	return nil
}
