// Package draft tracks the live auction: team budgets, rosters, pick
// history with undo, and the drafted-player set.
package draft

import (
	"sort"
	"strings"
)

// DefaultBudget is the per-team auction budget used when auto-creating a
// team.
const DefaultBudget = 200

type Team struct {
	Name   string
	Budget int
	Spent  int
	Roster map[string]int // position → count
}

func (t *Team) Remaining() int {
	return t.Budget - t.Spent
}

type Pick struct {
	Player   string
	Position string
	Team     string
	Price    int
}

type State struct {
	Teams   map[string]*Team
	Drafted map[string]bool
	History []Pick
}

func NewState() *State {
	return &State{
		Teams:   make(map[string]*Team),
		Drafted: make(map[string]bool),
	}
}

// EnsureTeam returns the named team, creating it with the default budget
// when new.
func (s *State) EnsureTeam(name string) *Team {
	if t, ok := s.Teams[name]; ok {
		return t
	}
	t := &Team{Name: name, Budget: DefaultBudget, Roster: make(map[string]int)}
	s.Teams[name] = t
	return t
}

// Assign records a purchase: debits the team, bumps its position count,
// marks the player drafted and appends to history.
func (s *State) Assign(player string, position string, teamName string, price int) {
	t := s.EnsureTeam(teamName)
	t.Spent += price
	t.Roster[position]++
	s.Drafted[player] = true
	s.History = append(s.History, Pick{Player: player, Position: position, Team: teamName, Price: price})
}

// Undo reverts the most recent pick and returns it. The second return is
// false when there is nothing to undo.
func (s *State) Undo() (Pick, bool) {
	if len(s.History) == 0 {
		return Pick{}, false
	}
	last := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]

	delete(s.Drafted, last.Player)
	if t, ok := s.Teams[last.Team]; ok {
		t.Spent -= last.Price
		if t.Spent < 0 {
			t.Spent = 0
		}
		if n := t.Roster[last.Position]; n <= 1 {
			delete(t.Roster, last.Position)
		} else {
			t.Roster[last.Position] = n - 1
		}
	}
	return last, true
}

// Available filters names down to players not yet drafted, preserving
// order.
func (s *State) Available(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !s.Drafted[n] {
			out = append(out, n)
		}
	}
	return out
}

// TeamNames returns team names sorted case-insensitively.
func (s *State) TeamNames() []string {
	out := make([]string, 0, len(s.Teams))
	for name := range s.Teams {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// SortedTeams returns the team states in TeamNames order.
func (s *State) SortedTeams() []*Team {
	names := s.TeamNames()
	out := make([]*Team, 0, len(names))
	for _, n := range names {
		out = append(out, s.Teams[n])
	}
	return out
}
