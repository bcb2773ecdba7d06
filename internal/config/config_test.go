package config

import (
	"strings"
	"testing"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_PrivateLeague(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"LEAGUE_ID": "123456",
		"ESPN_S2":   "s2-token",
		"SWID":      "{ABC-DEF}",
	}))
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.LeagueID != 123456 {
		t.Errorf("LeagueID = %d, want 123456", cfg.LeagueID)
	}
	if !cfg.Private() {
		t.Error("Private() = false, want true")
	}
}

func TestFromEnv_PublicLeagueOmitsCookies(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"LEAGUE_ID": "42"}))
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.Private() {
		t.Error("Private() = true, want false")
	}
}

func TestFromEnv_MissingLeagueID(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"ESPN_S2": "x", "SWID": "y"}))
	if err == nil {
		t.Fatal("want error for missing LEAGUE_ID")
	}
	if !strings.Contains(err.Error(), "LEAGUE_ID") {
		t.Errorf("error should name LEAGUE_ID: %v", err)
	}
}

func TestFromEnv_NonNumericLeagueID(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"LEAGUE_ID": "my-league"}))
	if err == nil {
		t.Fatal("want error for non-numeric LEAGUE_ID")
	}
}

func TestFromEnv_LoneCookieRejected(t *testing.T) {
	for _, m := range []map[string]string{
		{"LEAGUE_ID": "1", "ESPN_S2": "x"},
		{"LEAGUE_ID": "1", "SWID": "y"},
	} {
		if _, err := FromEnv(env(m)); err == nil {
			t.Errorf("want error for lone cookie in %v", m)
		}
	}
}

func TestFromEnv_TrimsWhitespace(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"LEAGUE_ID": " 7 \n"}))
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.LeagueID != 7 {
		t.Errorf("LeagueID = %d, want 7", cfg.LeagueID)
	}
}
