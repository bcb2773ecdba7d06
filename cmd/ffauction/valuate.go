package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ffauction/internal/store"
	"ffauction/internal/valuation"
)

var (
	valuateProjYear    int
	valuateSeasons     []int
	valuateStrategy    string
	valuateOut         string
	valuatePrintPrompt bool
	valuateTimeout     time.Duration
)

var valuateCmd = &cobra.Command{
	Use:   "valuate",
	Short: "Build the valuation prompt and produce salaries.csv",
	Long: `valuate assembles the auction valuation prompt from the collected CSVs
and either prints it for a manual copy-paste workflow (--print-prompt) or
runs it against the OpenAI API and writes the structured result to
salaries.csv.`,
	RunE: runValuate,
}

func runValuate(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)

	seasons := make(map[int]string, len(valuateSeasons))
	for _, year := range valuateSeasons {
		body, err := os.ReadFile(st.Path(fmt.Sprintf("%d.csv", year)))
		if err != nil {
			return fmt.Errorf("season stats for %d not collected yet: %w", year, err)
		}
		seasons[year] = string(body)
	}

	proj, err := os.ReadFile(st.Path(fmt.Sprintf("proj_%d.csv", valuateProjYear)))
	if err != nil {
		return fmt.Errorf("projections for %d not collected yet: %w", valuateProjYear, err)
	}

	var strategy string
	if valuateStrategy != "" {
		body, err := os.ReadFile(valuateStrategy)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("read strategy notes: %w", err)
			}
			logger.Warn("strategy file not found, using default weighting", zap.String("path", valuateStrategy))
		} else {
			strategy = string(body)
		}
	}

	prompt := valuation.BuildPrompt(valuation.Inputs{
		Strategy:    strategy,
		Seasons:     seasons,
		Projections: string(proj),
		ProjYear:    valuateProjYear,
	})

	if valuatePrintPrompt {
		fmt.Println(prompt)
		return nil
	}

	svc, err := valuation.NewService()
	if err != nil {
		return err
	}

	logger.Info("running valuation",
		zap.Int("proj_year", valuateProjYear),
		zap.Ints("seasons", valuateSeasons),
		zap.Int("prompt_bytes", len(prompt)))

	ctx, cancel := context.WithTimeout(cmd.Context(), valuateTimeout)
	defer cancel()

	sheet, err := svc.Valuate(ctx, prompt)
	if err != nil {
		logger.Error("valuation failed", zap.Error(err))
		return err
	}

	if err := valuation.WriteSalariesCSV(valuateOut, sheet); err != nil {
		return err
	}

	logger.Info("salary sheet written",
		zap.String("path", valuateOut),
		zap.Int("players", len(sheet.Salaries)))
	return nil
}

func init() {
	valuateCmd.Flags().IntVar(&valuateProjYear, "proj-year", 0, "season the projections were collected for (required)")
	valuateCmd.Flags().IntSliceVar(&valuateSeasons, "seasons", nil, "finished seasons to include as history, e.g. 2023,2024")
	valuateCmd.Flags().StringVar(&valuateStrategy, "strategy", "strategy.md", "optional strategy notes to embed in the prompt")
	valuateCmd.Flags().StringVar(&valuateOut, "out", "salaries.csv", "output path for the salary sheet")
	valuateCmd.Flags().BoolVar(&valuatePrintPrompt, "print-prompt", false, "print the assembled prompt instead of calling the API")
	valuateCmd.Flags().DurationVar(&valuateTimeout, "timeout", 5*time.Minute, "API call timeout")
	_ = valuateCmd.MarkFlagRequired("proj-year")
	rootCmd.AddCommand(valuateCmd)
}
