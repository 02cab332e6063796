package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  *zap.Logger
)

var mainCommand = &cobra.Command{
	Use:   "sudoku-gen",
	Short: "Generate and solve 9x9 Sudoku puzzles",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := zap.NewDevelopmentConfig()
		if !verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			os.Exit(1)
		}
	},
}

func main() {
	mainCommand.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
