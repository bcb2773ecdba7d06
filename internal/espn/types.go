package espn

import "strings"

// Raw shapes from the fantasy v3 read API. Only the fields the collector
// consumes are declared; the cached JSON on disk keeps everything.

type LeagueResponse struct {
	ID    int    `json:"id"`
	Teams []Team `json:"teams"`
}

type Team struct {
	ID     int `json:"id"`
	Roster struct {
		Entries []RosterEntry `json:"entries"`
	} `json:"roster"`
}

type RosterEntry struct {
	PlayerPoolEntry PlayerPoolEntry `json:"playerPoolEntry"`
}

type PlayersResponse struct {
	Players []PlayerPoolEntry `json:"players"`
}

type PlayerPoolEntry struct {
	ID     int    `json:"id"`
	Player Player `json:"player"`
}

type Player struct {
	ID                int               `json:"id"`
	FullName          string            `json:"fullName"`
	DefaultPositionID int               `json:"defaultPositionId"`
	ProTeamID         int               `json:"proTeamId"`
	Stats             []StatLine        `json:"stats"`
	Ratings           map[string]Rating `json:"ratings"`
}

// StatLine is one stats split for a player. statSourceId 0 is actuals,
// 1 is projections; statSplitTypeId 0 is the full-season split.
type StatLine struct {
	SeasonID        int                `json:"seasonId"`
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	AppliedAverage  float64            `json:"appliedAverage"`
	Stats           map[string]float64 `json:"stats"`
}

type Rating struct {
	PositionalRanking int `json:"positionalRanking"`
}

func (p *Player) Position() string {
	return PositionName(p.DefaultPositionID)
}

func (p *Player) ProTeam() string {
	return ProTeamName(p.ProTeamID)
}

// PosRank is the season-long positional ranking ("0" ratings key), 0 when
// the API returned no ratings for the player.
func (p *Player) PosRank() int {
	if r, ok := p.Ratings["0"]; ok {
		return r.PositionalRanking
	}
	return 0
}

// SeasonTotals returns the finalized full-season stat line for year, or nil.
func (p *Player) SeasonTotals(year int) *StatLine {
	return p.statLine(year, 0)
}

// ProjectedTotal returns the projected full-season points for year, 0 when
// no projection split is present.
func (p *Player) ProjectedTotal(year int) float64 {
	if sl := p.statLine(year, 1); sl != nil {
		return sl.AppliedTotal
	}
	return 0
}

func (p *Player) statLine(year int, source int) *StatLine {
	for i := range p.Stats {
		sl := &p.Stats[i]
		if sl.SeasonID == year && sl.StatSourceID == source && sl.StatSplitTypeID == 0 {
			return sl
		}
	}
	return nil
}

// NamedStats translates a raw statId→value map into scoring-category names.
// Unknown stat ids are kept under their numeric key so nothing is dropped.
func NamedStats(raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for id, v := range raw {
		name, ok := statNames[strings.TrimSpace(id)]
		if !ok {
			name = id
		}
		out[name] = v
	}
	return out
}
