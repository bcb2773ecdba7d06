// Package ledger persists the auction record so a crashed shell can be
// reconstructed and the MCP server can report live budgets.
package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"ffauction/internal/draft"
)

type TeamState struct {
	Name      string         `json:"name"`
	Budget    int            `json:"budget"`
	Spent     int            `json:"spent"`
	Remaining int            `json:"remaining"`
	Roster    map[string]int `json:"roster"`
}

type Pick struct {
	Number   int    `json:"number"`
	Player   string `json:"player"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Price    int    `json:"price"`
}

type AuctionLedger struct {
	LeagueID       int         `json:"league_id"`
	GeneratedAtUTC string      `json:"generated_at_utc"`
	Teams          []TeamState `json:"teams"`
	Picks          []Pick      `json:"picks"`
}

// BuildAuctionLedger snapshots the draft state. Teams come out sorted by
// name, picks numbered in auction order.
func BuildAuctionLedger(leagueID int, s *draft.State) *AuctionLedger {
	teams := make([]TeamState, 0, len(s.Teams))
	for _, t := range s.SortedTeams() {
		roster := make(map[string]int, len(t.Roster))
		for pos, n := range t.Roster {
			roster[pos] = n
		}
		teams = append(teams, TeamState{
			Name:      t.Name,
			Budget:    t.Budget,
			Spent:     t.Spent,
			Remaining: t.Remaining(),
			Roster:    roster,
		})
	}

	picks := make([]Pick, 0, len(s.History))
	for i, p := range s.History {
		picks = append(picks, Pick{
			Number:   i + 1,
			Player:   p.Player,
			Position: p.Position,
			Team:     p.Team,
			Price:    p.Price,
		})
	}

	return &AuctionLedger{
		LeagueID:       leagueID,
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Teams:          teams,
		Picks:          picks,
	}
}

func WriteAuctionLedger(path string, l *AuctionLedger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}

	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644)
}

func ReadAuctionLedger(path string) (*AuctionLedger, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var l AuctionLedger
	if err := json.Unmarshal(b, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
