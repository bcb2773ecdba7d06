// Package collect turns raw league and player-pool responses into the
// per-year CSV tables the valuation workflow reads.
package collect

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ffauction/internal/espn"
	"ffauction/internal/store"
)

// FreeAgentPoolSize pulls the whole pool; ESPN carries fewer relevant
// players than this.
const FreeAgentPoolSize = 2000

// SeasonHeader is the fixed column order for data/<year>.csv.
var SeasonHeader = []string{
	"playerId", "name", "proTeam", "position", "posRank",
	"points", "avg_points", "games_played",
	"passingAttempts", "passingCompletions", "passingIncompletions",
	"passingYards", "passingTouchdowns", "passingInterceptions",
	"rushingAttempts", "rushingYards", "rushingYardsPerAttempt",
	"rushingTouchdowns", "fumbles",
	"receivingReceptions", "receivingYards", "receivingTouchdowns",
	"receivingTargets", "receivingYardsAfterCatch", "receivingYardsPerReception",
	"madeFieldGoals", "attemptedFieldGoals", "missedFieldGoals",
	"madeExtraPoints", "attemptedExtraPoints", "missedExtraPoints",
	"defensive0PointsAllowed", "defensive1To6PointsAllowed",
	"defensive7To13PointsAllowed", "defensive14To17PointsAllowed",
	"defensiveTouchdowns", "defensiveInterceptions",
	"defensiveForcedFumbles", "defensiveSacks",
}

// ProjectionHeader is the fixed column order for data/proj_<year>.csv.
var ProjectionHeader = []string{"playerId", "name", "proTeam", "position", "proj_points"}

type Manifest struct {
	RunID          string `json:"run_id"`
	Kind           string `json:"kind"`
	Year           int    `json:"year"`
	Rows           int    `json:"rows"`
	GeneratedAtUTC string `json:"generated_at_utc"`
}

// Season collects a finished season's stats into data/<year>.csv and
// returns the row count.
func Season(client *espn.Client, st *store.Store, year int, force bool) (int, error) {
	players, err := allPlayers(client, year, force)
	if err != nil {
		return 0, err
	}
	rows := seasonRows(players, year)
	if err := st.WriteCSV(fmt.Sprintf("%d.csv", year), SeasonHeader, rows); err != nil {
		return 0, err
	}
	return len(rows), writeManifest(st, "prev-season", year, len(rows))
}

// Projections collects the current season's projections into
// data/proj_<year>.csv and returns the row count.
func Projections(client *espn.Client, st *store.Store, year int, force bool) (int, error) {
	players, err := allPlayers(client, year, force)
	if err != nil {
		return 0, err
	}
	rows := projectionRows(players, year)
	if err := st.WriteCSV(fmt.Sprintf("proj_%d.csv", year), ProjectionHeader, rows); err != nil {
		return 0, err
	}
	return len(rows), writeManifest(st, "projections", year, len(rows))
}

// allPlayers merges rostered players with the free-agent pool, rosters
// winning on player id collisions, sorted by id for stable CSV output.
func allPlayers(client *espn.Client, year int, force bool) ([]espn.Player, error) {
	leagueBody, err := client.LeagueRosters(year, force)
	if err != nil {
		return nil, err
	}
	var league espn.LeagueResponse
	if err := json.Unmarshal(leagueBody, &league); err != nil {
		return nil, fmt.Errorf("parse league response: %w", err)
	}

	byID := make(map[int]espn.Player)
	for _, team := range league.Teams {
		for _, entry := range team.Roster.Entries {
			p := entry.PlayerPoolEntry.Player
			byID[p.ID] = p
		}
	}

	faBody, err := client.FreeAgents(year, FreeAgentPoolSize, force)
	if err != nil {
		return nil, err
	}
	var pool espn.PlayersResponse
	if err := json.Unmarshal(faBody, &pool); err != nil {
		return nil, fmt.Errorf("parse free-agent response: %w", err)
	}
	for _, entry := range pool.Players {
		p := entry.Player
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}

	players := make([]espn.Player, 0, len(byID))
	for _, p := range byID {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func seasonRows(players []espn.Player, year int) [][]string {
	rows := make([][]string, 0, len(players))
	for i := range players {
		p := &players[i]
		if p.PosRank() <= 0 {
			continue
		}
		totals := p.SeasonTotals(year)
		if totals == nil {
			continue
		}
		breakdown := espn.NamedStats(totals.Stats)

		row := []string{
			strconv.Itoa(p.ID),
			p.FullName,
			p.ProTeam(),
			p.Position(),
			strconv.Itoa(p.PosRank()),
			fmtFloat(totals.AppliedTotal),
			fmtFloat(totals.AppliedAverage),
			fmtFloat(breakdown["210"]), // games played keeps its raw id
		}
		for _, col := range SeasonHeader[8:] {
			row = append(row, fmtFloat(breakdown[col]))
		}
		rows = append(rows, row)
	}
	return rows
}

func projectionRows(players []espn.Player, year int) [][]string {
	rows := make([][]string, 0, len(players))
	for i := range players {
		p := &players[i]
		if p.ProTeam() == "None" {
			continue
		}
		proj := p.ProjectedTotal(year)
		if proj == 0 {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.FullName,
			p.ProTeam(),
			p.Position(),
			fmtFloat(proj),
		})
	}
	return rows
}

func writeManifest(st *store.Store, kind string, year int, rows int) error {
	m := Manifest{
		RunID:          uuid.NewString(),
		Kind:           kind,
		Year:           year,
		Rows:           rows,
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return st.WriteRaw("manifest.json", b, false)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
