package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ffauction/internal/collect"
	"ffauction/internal/config"
	"ffauction/internal/espn"
	"ffauction/internal/store"
)

var collectRefresh bool

var collectPrevCmd = &cobra.Command{
	Use:   "collect-prev-season-data <year>",
	Short: "Pull a finished season's stats into data/<year>.csv",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseYear(args[0])
		if err != nil {
			return err
		}
		return runCollect(year, "prev-season", collect.Season)
	},
}

var collectProjCmd = &cobra.Command{
	Use:   "collect-current-season-projections <year>",
	Short: "Pull the upcoming season's projections into data/proj_<year>.csv",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseYear(args[0])
		if err != nil {
			return err
		}
		return runCollect(year, "projections", collect.Projections)
	},
}

func runCollect(year int, kind string, fn func(*espn.Client, *store.Store, int, bool) (int, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	client := espn.NewClient(st, cfg)

	logger.Info("collecting league data",
		zap.String("kind", kind),
		zap.Int("year", year),
		zap.Int("league_id", cfg.LeagueID),
		zap.Bool("private", cfg.Private()),
		zap.Bool("refresh", collectRefresh))

	rows, err := fn(client, st, year, collectRefresh)
	if err != nil {
		logger.Error("collection failed", zap.String("kind", kind), zap.Int("year", year), zap.Error(err))
		return err
	}

	logger.Info("collection complete",
		zap.String("kind", kind),
		zap.Int("year", year),
		zap.Int("rows", rows),
		zap.String("data_dir", dataDir))
	return nil
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

func parseYear(raw string) (int, error) {
	if !yearPattern.MatchString(raw) {
		return 0, fmt.Errorf("%q is not a valid year: expected a 4-digit year like 2024", raw)
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid year: %w", raw, err)
	}
	return year, nil
}

func init() {
	for _, cmd := range []*cobra.Command{collectPrevCmd, collectProjCmd} {
		cmd.Flags().BoolVar(&collectRefresh, "refresh", false, "re-download from ESPN even when a cached raw response exists")
		rootCmd.AddCommand(cmd)
	}
}
