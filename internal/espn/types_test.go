package espn

import "testing"

func TestPlayer_StatLineSelection(t *testing.T) {
	p := Player{
		Stats: []StatLine{
			{SeasonID: 2024, StatSourceID: 0, StatSplitTypeID: 0, AppliedTotal: 250.5, AppliedAverage: 14.7},
			{SeasonID: 2024, StatSourceID: 0, StatSplitTypeID: 1, AppliedTotal: 18.0}, // weekly split, must not match
			{SeasonID: 2025, StatSourceID: 1, StatSplitTypeID: 0, AppliedTotal: 231.2},
		},
	}

	sl := p.SeasonTotals(2024)
	if sl == nil || sl.AppliedTotal != 250.5 {
		t.Fatalf("SeasonTotals(2024) = %+v, want applied total 250.5", sl)
	}
	if p.SeasonTotals(2023) != nil {
		t.Error("SeasonTotals(2023) should be nil")
	}
	if got := p.ProjectedTotal(2025); got != 231.2 {
		t.Errorf("ProjectedTotal(2025) = %v, want 231.2", got)
	}
	if got := p.ProjectedTotal(2024); got != 0 {
		t.Errorf("ProjectedTotal(2024) = %v, want 0", got)
	}
}

func TestPlayer_PosRank(t *testing.T) {
	p := Player{Ratings: map[string]Rating{"0": {PositionalRanking: 12}}}
	if p.PosRank() != 12 {
		t.Errorf("PosRank = %d, want 12", p.PosRank())
	}
	if (&Player{}).PosRank() != 0 {
		t.Error("PosRank without ratings should be 0")
	}
}

func TestPlayer_NameMaps(t *testing.T) {
	p := Player{DefaultPositionID: 2, ProTeamID: 9}
	if p.Position() != "RB" {
		t.Errorf("Position = %s, want RB", p.Position())
	}
	if p.ProTeam() != "GB" {
		t.Errorf("ProTeam = %s, want GB", p.ProTeam())
	}

	unknown := Player{DefaultPositionID: 77, ProTeamID: 77}
	if unknown.Position() != "UNKNOWN" {
		t.Errorf("unknown position = %s", unknown.Position())
	}
	if unknown.ProTeam() != "None" {
		t.Errorf("unknown pro team = %s", unknown.ProTeam())
	}
}

func TestNamedStats(t *testing.T) {
	got := NamedStats(map[string]float64{
		"3":   4312.0, // passingYards
		"53":  88.0,   // receivingReceptions
		"210": 16.0,   // not in the table, passes through
	})

	if got["passingYards"] != 4312.0 {
		t.Errorf("passingYards = %v", got["passingYards"])
	}
	if got["receivingReceptions"] != 88.0 {
		t.Errorf("receivingReceptions = %v", got["receivingReceptions"])
	}
	if got["210"] != 16.0 {
		t.Errorf("raw id 210 = %v, want pass-through", got["210"])
	}
}
