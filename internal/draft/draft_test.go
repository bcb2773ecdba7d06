package draft

import "testing"

func TestAssign_DebitsBudgetAndRoster(t *testing.T) {
	s := NewState()

	s.Assign("Josh Allen", "QB", "My Team", 54)

	team := s.Teams["My Team"]
	if team == nil {
		t.Fatal("team not created")
	}
	if team.Budget != DefaultBudget {
		t.Errorf("Budget = %d, want %d", team.Budget, DefaultBudget)
	}
	if team.Spent != 54 || team.Remaining() != DefaultBudget-54 {
		t.Errorf("Spent = %d, Remaining = %d", team.Spent, team.Remaining())
	}
	if team.Roster["QB"] != 1 {
		t.Errorf("Roster[QB] = %d, want 1", team.Roster["QB"])
	}
	if !s.Drafted["Josh Allen"] {
		t.Error("player not marked drafted")
	}
}

func TestUndo_RestoresState(t *testing.T) {
	s := NewState()
	s.Assign("Player A", "RB", "Team X", 30)
	s.Assign("Player B", "RB", "Team X", 20)

	pick, ok := s.Undo()
	if !ok {
		t.Fatal("Undo returned false")
	}
	if pick.Player != "Player B" || pick.Price != 20 {
		t.Errorf("pick = %+v", pick)
	}

	team := s.Teams["Team X"]
	if team.Spent != 30 {
		t.Errorf("Spent = %d, want 30", team.Spent)
	}
	if team.Roster["RB"] != 1 {
		t.Errorf("Roster[RB] = %d, want 1", team.Roster["RB"])
	}
	if s.Drafted["Player B"] {
		t.Error("undone player still drafted")
	}
	if !s.Drafted["Player A"] {
		t.Error("earlier pick lost")
	}
}

func TestUndo_LastPositionRemovesKey(t *testing.T) {
	s := NewState()
	s.Assign("Only Kicker", "K", "Team X", 1)
	s.Undo()

	if _, ok := s.Teams["Team X"].Roster["K"]; ok {
		t.Error("empty position should be deleted, not zeroed")
	}
}

func TestUndo_Empty(t *testing.T) {
	if _, ok := NewState().Undo(); ok {
		t.Error("Undo on empty history should return false")
	}
}

func TestAvailable_ExcludesDrafted(t *testing.T) {
	s := NewState()
	s.Assign("Gone", "WR", "T", 5)

	got := s.Available([]string{"Gone", "Here", "Also Here"})
	if len(got) != 2 || got[0] != "Here" {
		t.Errorf("Available = %v", got)
	}
}

func TestTeamNames_SortedCaseInsensitive(t *testing.T) {
	s := NewState()
	s.EnsureTeam("zeta")
	s.EnsureTeam("Alpha")
	s.EnsureTeam("beta")

	got := s.TeamNames()
	want := []string{"Alpha", "beta", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TeamNames = %v, want %v", got, want)
		}
	}
}

func TestEnsureTeam_Idempotent(t *testing.T) {
	s := NewState()
	a := s.EnsureTeam("Same")
	a.Spent = 10
	b := s.EnsureTeam("Same")
	if b.Spent != 10 {
		t.Error("EnsureTeam created a fresh team for an existing name")
	}
}
