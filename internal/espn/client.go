package espn

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ffauction/internal/config"
	"ffauction/internal/store"
)

type Client struct {
	HTTP      *http.Client
	Store     *store.Store
	BaseURL   string
	UserAgent string
	Sleep     time.Duration

	LeagueID int
	ESPNS2   string
	SWID     string

	UseCache    bool
	PrettyWrite bool
}

func NewClient(st *store.Store, cfg config.Config) *Client {
	return &Client{
		HTTP:        &http.Client{Timeout: 30 * time.Second},
		Store:       st,
		BaseURL:     "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl",
		UserAgent:   "ffauction/1.0",
		Sleep:       250 * time.Millisecond,
		LeagueID:    cfg.LeagueID,
		ESPNS2:      cfg.ESPNS2,
		SWID:        cfg.SWID,
		UseCache:    true,
		PrettyWrite: true,
	}
}

// FetchRaw downloads urlPath with the given query (and optional
// X-Fantasy-Filter header) and caches the body at relPath. Returns raw bytes
// from cache or network.
func (c *Client) FetchRaw(urlPath string, query url.Values, filter string, relPath string, force bool) ([]byte, error) {
	if !force && c.UseCache && c.Store.Exists(relPath) {
		return c.Store.ReadRaw(relPath)
	}

	if c.Sleep > 0 {
		time.Sleep(c.Sleep)
	}

	u := c.BaseURL + urlPath
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if filter != "" {
		req.Header.Set("X-Fantasy-Filter", filter)
	}
	if c.ESPNS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.ESPNS2})
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.SWID})
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", urlPath, resp.StatusCode, string(body))
	}

	if err := c.Store.WriteRaw(relPath, body, c.PrettyWrite); err != nil {
		return nil, err
	}
	return body, nil
}
