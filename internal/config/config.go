// Package config reads ESPN credentials from the environment. A local .env
// file is loaded first when present, so the collector can run outside of any
// shell profile setup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LeagueID int
	ESPNS2   string
	SWID     string
}

// Private reports whether auth cookies are configured. Public leagues run
// without them.
func (c Config) Private() bool {
	return c.ESPNS2 != ""
}

func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv validates LEAGUE_ID, ESPN_S2 and SWID. LEAGUE_ID is always
// required. The cookies are all-or-nothing: a lone cookie is a
// misconfiguration, not a public league.
func FromEnv(getenv func(string) string) (Config, error) {
	rawID := strings.TrimSpace(getenv("LEAGUE_ID"))
	if rawID == "" {
		return Config{}, fmt.Errorf("LEAGUE_ID is required (set it in the environment or .env)")
	}
	leagueID, err := strconv.Atoi(rawID)
	if err != nil {
		return Config{}, fmt.Errorf("LEAGUE_ID must be an integer, got %q", rawID)
	}

	s2 := strings.TrimSpace(getenv("ESPN_S2"))
	swid := strings.TrimSpace(getenv("SWID"))
	if (s2 == "") != (swid == "") {
		return Config{}, fmt.Errorf("ESPN_S2 and SWID must be set together for private leagues")
	}

	return Config{LeagueID: leagueID, ESPNS2: s2, SWID: swid}, nil
}
