// ffauction prepares and runs an ESPN fantasy football auction draft:
// collect season data, build a salary sheet, run the live draft shell,
// and serve the results to an AI assistant over MCP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	dataDir string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ffauction",
	Short: "ESPN auction draft kit",
	Long: `ffauction pulls league and projection data from the ESPN fantasy API,
builds auction salaries, and tracks the live draft.

Typical season flow:
  ffauction collect-prev-season-data 2024
  ffauction collect-current-season-projections 2025
  ffauction valuate --proj-year 2025 --seasons 2023,2024
  ffauction draft`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The draft shell owns the terminal; no logger there.
		if cmd.Name() == "draft" {
			return nil
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory for collected CSVs and raw API cache")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
