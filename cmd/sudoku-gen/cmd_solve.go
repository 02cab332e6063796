package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/usecase"
)

var solveFile string

var commandSolve = &cobra.Command{
	Use:   "solve [board]",
	Short: "Exhaustively solve a puzzle and count its solutions",
	Long: `Solve a 9x9 Sudoku, counting every solution.

The board is 81 digits in row-major order, with 0 or . for blank cells;
whitespace and newlines are ignored. It can be passed as an argument, read
from a file with --file, or piped on stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSolve(args); err != nil {
			logger.Fatal("solve failed", zap.Error(err))
		}
	},
}

func init() {
	commandSolve.Flags().StringVarP(&solveFile, "file", "f", "", "read the board from a file")
	mainCommand.AddCommand(commandSolve)
}

func readBoard(args []string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case solveFile != "":
		data, err := os.ReadFile(solveFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func runSolve(args []string) error {
	raw, err := readBoard(args)
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, ch := range raw {
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
		default:
			sb.WriteRune(ch)
		}
	}
	g, err := grid.Parse(sb.String())
	if err != nil {
		return err
	}
	fmt.Print(g.Format())

	svc := usecase.NewService(logger)
	count, solution, stats := svc.Solve(g)
	fmt.Printf("\n%d solution(s), %d nodes in %v\n", count, stats.Nodes, stats.Duration)
	if count == 0 || solution == nil {
		return errors.New("puzzle has no solution")
	}
	fmt.Println()
	fmt.Print(solution.Format())
	return nil
}
