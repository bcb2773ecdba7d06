package espn

import (
	"fmt"
	"net/url"
)

// /seasons/{year}/segments/0/leagues/{league_id}?view=mTeam&view=mRoster
func (c *Client) LeagueRosters(year int, force bool) ([]byte, error) {
	q := url.Values{}
	q.Add("view", "mTeam")
	q.Add("view", "mRoster")
	return c.FetchRaw(
		fmt.Sprintf("/seasons/%d/segments/0/leagues/%d", year, c.LeagueID),
		q,
		"",
		fmt.Sprintf("raw/%d/league.json", year),
		force,
	)
}

// /seasons/{year}/segments/0/leagues/{league_id}?view=kona_player_info
// The free-agent pool comes back through the kona view; the fantasy filter
// header picks status and pool size. ESPN carries fewer than 1500 relevant
// players, so a large size pulls everyone.
func (c *Client) FreeAgents(year int, size int, force bool) ([]byte, error) {
	q := url.Values{}
	q.Add("view", "kona_player_info")
	filter := fmt.Sprintf(
		`{"players":{"filterStatus":{"value":["FREEAGENT","WAIVERS"]},"limit":%d,"sortPercOwned":{"sortAsc":false,"sortPriority":1}}}`,
		size,
	)
	return c.FetchRaw(
		fmt.Sprintf("/seasons/%d/segments/0/leagues/%d", year, c.LeagueID),
		q,
		filter,
		fmt.Sprintf("raw/%d/free_agents.json", year),
		force,
	)
}
