package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ffauction/internal/config"
	"ffauction/internal/salary"
	"ffauction/internal/tui"
)

var (
	draftSalaries string
	draftLedger   string
	draftLeagueID int
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Run the interactive auction draft shell",
	Long: `draft loads salaries.csv and opens the live auction shell: fuzzy
player search, team budgets, price entry and undo. Every pick is
persisted to the auction ledger as it happens.`,
	RunE: runDraft,
}

func runDraft(cmd *cobra.Command, args []string) error {
	rows, err := salary.Load(draftSalaries)
	if err != nil {
		return fmt.Errorf("load salary sheet: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("salary sheet %s has no players", draftSalaries)
	}

	leagueID := draftLeagueID
	if leagueID == 0 {
		// Best effort: the draft shell works without ESPN credentials, the
		// league id just labels the ledger.
		if cfg, err := config.Load(); err == nil {
			leagueID = cfg.LeagueID
		}
	}

	ledgerPath := draftLedger
	if ledgerPath == "" {
		ledgerPath = filepath.Join(dataDir, "auction.json")
	}

	p := tea.NewProgram(tui.New(rows, leagueID, ledgerPath), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func init() {
	draftCmd.Flags().StringVar(&draftSalaries, "salaries", "salaries.csv", "salary sheet to draft from")
	draftCmd.Flags().StringVar(&draftLedger, "ledger", "", "auction ledger path (default <data-dir>/auction.json)")
	draftCmd.Flags().IntVar(&draftLeagueID, "league", 0, "league id recorded in the ledger (default LEAGUE_ID from env)")
	rootCmd.AddCommand(draftCmd)
}
