package nflcom

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
)

const NFLURL = "https://fantasy.nfl.com"

type Client interface {
	// GetTeamPage fetches and parses a public team page.
	GetTeamPage(leagueID, teamID string) (*TeamPage, error)
	// GetStandings fetches the league home page and scrapes the standings.
	GetStandings(leagueID string) ([]StandingsTeam, error)
	// FindTeam resolves a team name against the league standings. An exact
	// normalized match wins; otherwise the first normalized substring match.
	// No match is an error, never a guess.
	FindTeam(leagueID, teamName string) (*StandingsTeam, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: NFLURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

func (c *client) GetTeamPage(leagueID, teamID string) (*TeamPage, error) {
	resp, err := c.get("/football/%s/team/%s", leagueID, teamID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return parseTeamPage(resp.Body, leagueID)
}

func (c *client) GetStandings(leagueID string) ([]StandingsTeam, error) {
	resp, err := c.get("/football/%s/", leagueID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return parseStandings(resp.Body)
}

func (c *client) FindTeam(leagueID, teamName string) (*StandingsTeam, error) {
	teams, err := c.GetStandings(leagueID)
	if err != nil {
		return nil, err
	}

	want := model.NormalizeName(teamName)
	for i := range teams {
		if model.NormalizeName(teams[i].Name) == want {
			return &teams[i], nil
		}
	}
	for i := range teams {
		if strings.Contains(model.NormalizeName(teams[i].Name), want) {
			return &teams[i], nil
		}
	}
	return nil, fmt.Errorf("no team matching '%s' in league %s", teamName, leagueID)
}

func (c *client) get(path string, args ...any) (*http.Response, error) {
	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, p), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating nfl.com http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending nfl.com http request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code from nfl.com: %d", resp.StatusCode)
	}
	return resp, nil
}
