package yahoo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const YahooURL = "https://fantasysports.yahooapis.com"

// Client talks to the yahoo fantasy API. Every call needs an authenticated
// *http.Client built from the integration's OAuth token; the caller owns
// token refresh and passes the client in.
type Client struct {
	url string
}

func New() (*Client, error) {
	return &Client{url: YahooURL}, nil
}

func NewForTest(url string) *Client {
	return &Client{url: url}
}

// GetUserTeams returns the logged-in user's teams for the current NFL game
// context.
func (c *Client) GetUserTeams(httpClient *http.Client) ([]Team, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/users;use_login=1/games;game_keys=nfl/teams?format=json")
	if err != nil {
		return nil, err
	}

	teams := make([]Team, 0, 4)
	for _, user := range fieldArray(content, "users") {
		uf := flattenFields(user)
		inner := flattenFields(uf["user"])
		for _, game := range fieldArray(inner, "games") {
			gf := flattenFields(game)
			ginner := flattenFields(gf["game"])
			for _, entry := range fieldArray(ginner, "teams") {
				ef := flattenFields(entry)
				t, err := parseTeam(ef["team"])
				if err != nil {
					continue
				}
				teams = append(teams, t)
			}
		}
	}

	if len(teams) == 0 {
		return nil, errors.New("no teams found for user")
	}
	return teams, nil
}

// GetMatchup returns the week's pairing for teamKey. The response must carry
// exactly two teams, one of them teamKey; anything else is an error and the
// team contributes nothing for the week.
func (c *Client) GetMatchup(httpClient *http.Client, teamKey string, week int) (*Matchup, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/team/%s/matchups;weeks=%d?format=json", teamKey, week)
	if err != nil {
		return nil, err
	}

	team := flattenFields(content["team"])
	matchups := fieldArray(team, "matchups")
	if len(matchups) == 0 {
		return nil, errors.New("no matchup found for week")
	}

	mf := flattenFields(matchups[0])
	inner := flattenFields(mf["matchup"])
	entries := fieldArray(inner, "teams")
	if len(entries) != 2 {
		return nil, fmt.Errorf("expected 2 teams in matchup, got %d", len(entries))
	}

	sides := make([]MatchupTeam, 0, 2)
	for _, entry := range entries {
		ef := flattenFields(entry)
		mt, err := parseMatchupTeam(ef["team"])
		if err != nil {
			return nil, fmt.Errorf("invalid team in matchup: %w", err)
		}
		sides = append(sides, mt)
	}

	switch teamKey {
	case sides[0].Key:
		return &Matchup{Self: sides[0], Opponent: sides[1]}, nil
	case sides[1].Key:
		return &Matchup{Self: sides[1], Opponent: sides[0]}, nil
	default:
		return nil, fmt.Errorf("team %s is not part of its own matchup", teamKey)
	}
}

// GetRoster returns the players on teamKey's roster, with bench status taken
// from the selected position.
func (c *Client) GetRoster(httpClient *http.Client, teamKey string) ([]RosterPlayer, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/team/%s/roster/players?format=json", teamKey)
	if err != nil {
		return nil, err
	}

	players, err := c.parseRosterPlayers(content)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, errors.New("team roster not found")
	}
	return players, nil
}

// GetPlayerScores returns the fantasy point total per player key for the
// given week. It is a separate call from the roster because yahoo only
// reports stats on the stats sub-resource.
func (c *Client) GetPlayerScores(httpClient *http.Client, teamKey string, week int) (map[string]float64, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/team/%s/roster;week=%d/players/stats?format=json", teamKey, week)
	if err != nil {
		return nil, err
	}

	team := flattenFields(content["team"])
	roster := flattenFields(team["roster"])

	scores := make(map[string]float64)
	for _, entry := range fieldArray(roster, "players") {
		ef := flattenFields(entry)
		pf := flattenFields(ef["player"])
		key := fieldString(pf, "player_key")
		if key == "" {
			continue
		}
		if points := fieldObject(pf, "player_points"); points != nil {
			scores[key] = flexFloat(points["total"])
		}
	}
	return scores, nil
}

func (c *Client) parseRosterPlayers(content map[string]json.RawMessage) ([]RosterPlayer, error) {
	team := flattenFields(content["team"])
	roster := flattenFields(team["roster"])

	players := make([]RosterPlayer, 0, 15)
	for _, entry := range fieldArray(roster, "players") {
		ef := flattenFields(entry)
		p, err := parsePlayer(ef["player"])
		if err != nil {
			continue
		}
		players = append(players, p)
	}
	return players, nil
}

func (c *Client) yahooRequest(httpClient *http.Client, path string, args ...any) (map[string]json.RawMessage, error) {
	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, p), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating yahoo http request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending yahoo http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from yahoo: %d", resp.StatusCode)
	}

	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("error parsing response from yahoo: %w", err)
	}

	content := fieldObject(envelope, "fantasy_content")
	if content == nil {
		return nil, errors.New("yahoo response has no fantasy_content")
	}
	return content, nil
}
