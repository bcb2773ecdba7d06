package espn

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ffauction/internal/config"
	"ffauction/internal/store"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *int) {
	t.Helper()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(store.New(t.TempDir()), config.Config{LeagueID: 99})
	c.BaseURL = srv.URL
	c.Sleep = 0
	return c, &hits
}

func TestLeagueRosters_RequestShape(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons/2024/segments/0/leagues/99" {
			t.Errorf("path = %s", r.URL.Path)
		}
		views := r.URL.Query()["view"]
		if len(views) != 2 || views[0] != "mTeam" || views[1] != "mRoster" {
			t.Errorf("views = %v", views)
		}
		w.Write([]byte(`{"id":99,"teams":[]}`))
	})

	body, err := c.LeagueRosters(2024, false)
	if err != nil {
		t.Fatalf("LeagueRosters error: %v", err)
	}
	if len(body) == 0 {
		t.Error("empty body")
	}
}

func TestFreeAgents_SendsFantasyFilter(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		filter := r.Header.Get("X-Fantasy-Filter")
		if filter == "" {
			t.Error("X-Fantasy-Filter header missing")
		}
		for _, want := range []string{`"FREEAGENT"`, `"WAIVERS"`, `"limit":2000`} {
			if !strings.Contains(filter, want) {
				t.Errorf("filter missing %s: %s", want, filter)
			}
		}
		w.Write([]byte(`{"players":[]}`))
	})

	if _, err := c.FreeAgents(2025, 2000, false); err != nil {
		t.Fatalf("FreeAgents error: %v", err)
	}
}

func TestFetchRaw_SendsAuthCookies(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		s2, err := r.Cookie("espn_s2")
		if err != nil || s2.Value != "secret" {
			t.Errorf("espn_s2 cookie = %v (err %v)", s2, err)
		}
		swid, err := r.Cookie("SWID")
		if err != nil || swid.Value != "{SWID}" {
			t.Errorf("SWID cookie = %v (err %v)", swid, err)
		}
		w.Write([]byte(`{}`))
	})
	c.ESPNS2 = "secret"
	c.SWID = "{SWID}"

	if _, err := c.LeagueRosters(2024, false); err != nil {
		t.Fatalf("LeagueRosters error: %v", err)
	}
}

func TestFetchRaw_NoCookiesForPublicLeague(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if len(r.Cookies()) != 0 {
			t.Errorf("unexpected cookies: %v", r.Cookies())
		}
		w.Write([]byte(`{}`))
	})

	if _, err := c.LeagueRosters(2024, false); err != nil {
		t.Fatalf("LeagueRosters error: %v", err)
	}
}

func TestFetchRaw_CacheHitSkipsNetwork(t *testing.T) {
	c, hits := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":99}`))
	})

	if _, err := c.LeagueRosters(2024, false); err != nil {
		t.Fatalf("first fetch error: %v", err)
	}
	if _, err := c.LeagueRosters(2024, false); err != nil {
		t.Fatalf("cached fetch error: %v", err)
	}
	if *hits != 1 {
		t.Errorf("hits = %d, want 1 (second call served from cache)", *hits)
	}

	if _, err := c.LeagueRosters(2024, true); err != nil {
		t.Fatalf("forced fetch error: %v", err)
	}
	if *hits != 2 {
		t.Errorf("hits = %d, want 2 after force", *hits)
	}
}

func TestFetchRaw_HTTPErrorSurfaced(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not authorized"}`, http.StatusUnauthorized)
	})

	_, err := c.LeagueRosters(2024, false)
	if err == nil {
		t.Fatal("want error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should carry status code: %v", err)
	}
}
