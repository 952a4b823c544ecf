package sleeper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/alex-monroe/fantasy-pulse-sub000/cache"
	"github.com/alex-monroe/fantasy-pulse-sub000/model"
)

const SleeperURL = "https://api.sleeper.app"

// playersCacheKey names the cached copy of the bulk player directory. The
// directory covers every NFL player and only changes day to day, so it is
// fetched at most once per day per process.
const playersCacheKey = "sleeper-players"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrNoLeaguesFound  = errors.New("no leagues found")
	ErrNoMatchupsFound = errors.New("no matchups found")
)

type Client interface {
	// GetState returns the current NFL week and season.
	GetState() (*State, error)
	// LoadPlayers fetches the bulk player directory, serving from the
	// day-scoped cache when possible.
	LoadPlayers() (*Directory, error)
	// GetUserID resolves a Sleeper username to a user id.
	GetUserID(username string) (string, error)
	GetLeaguesForUser(userID, season string) ([]model.League, error)
	GetRosters(leagueID string) ([]Roster, error)
	GetMatchups(leagueID string, week int) ([]Matchup, error)
	GetLeagueUsers(leagueID string) ([]LeagueUser, error)
}

type client struct {
	url         string
	httpClient  *http.Client
	playerCache *cache.Cache
}

func New(playerCache *cache.Cache) (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		playerCache: playerCache,
	}
	return c, nil
}

func NewForTest(url string, playerCache *cache.Cache) Client {
	return &client{
		url:         url,
		httpClient:  http.DefaultClient,
		playerCache: playerCache,
	}
}

func (c *client) GetState() (*State, error) {
	var state State
	if err := c.sleeperRequest(&state, "/v1/state/nfl"); err != nil {
		return nil, err
	}
	if state.Week == 0 {
		return nil, errors.New("sleeper state has no current week")
	}
	return &state, nil
}

func (c *client) LoadPlayers() (*Directory, error) {
	raw, found := c.cachedPlayers()
	if !found {
		var err error
		raw, err = c.fetchPlayers()
		if err != nil {
			return nil, err
		}
	}

	var parsed map[string]sleeperPlayer
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing players from sleeper: %w", err)
	}

	d := newDirectory(len(parsed))
	for _, p := range parsed {
		if p.name() == "" {
			continue
		}
		d.add(p.toPlayer())
	}
	return d, nil
}

func (c *client) cachedPlayers() ([]byte, bool) {
	if c.playerCache == nil {
		return nil, false
	}
	return c.playerCache.Get(playersCacheKey)
}

func (c *client) fetchPlayers() ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/v1/players/nfl", c.url), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from sleeper: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading players response: %w", err)
	}

	if c.playerCache != nil {
		if err := c.playerCache.Put(playersCacheKey, raw); err != nil {
			// A cache failure only costs a refetch tomorrow.
			log.Printf("error caching sleeper players: %v", err)
		}
	}
	return raw, nil
}

func (c *client) GetUserID(username string) (string, error) {
	var user *sleeperUser
	if err := c.sleeperRequest(&user, "/v1/user/%s", username); err != nil {
		return "", err
	}
	// Sleeper returns 200 with a "null" body for unknown users.
	if user == nil || user.UserID == "" {
		return "", ErrUserNotFound
	}
	return user.UserID, nil
}

func (c *client) GetLeaguesForUser(userID, season string) ([]model.League, error) {
	var parsed []sleeperLeague
	if err := c.sleeperRequest(&parsed, "/v1/user/%s/leagues/nfl/%s", userID, season); err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return nil, ErrNoLeaguesFound
	}

	leagues := make([]model.League, 0, len(parsed))
	for _, l := range parsed {
		leagues = append(leagues, l.toLeague())
	}
	return leagues, nil
}

func (c *client) GetRosters(leagueID string) ([]Roster, error) {
	var rosters []Roster
	if err := c.sleeperRequest(&rosters, "/v1/league/%s/rosters", leagueID); err != nil {
		return nil, err
	}
	return rosters, nil
}

func (c *client) GetMatchups(leagueID string, week int) ([]Matchup, error) {
	var matchups []Matchup
	if err := c.sleeperRequest(&matchups, "/v1/league/%s/matchups/%d", leagueID, week); err != nil {
		return nil, err
	}
	if len(matchups) == 0 {
		return nil, ErrNoMatchupsFound
	}
	return matchups, nil
}

func (c *client) GetLeagueUsers(leagueID string) ([]LeagueUser, error) {
	var users []LeagueUser
	if err := c.sleeperRequest(&users, "/v1/league/%s/users", leagueID); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *client) sleeperRequest(res any, path string, args ...any) error {
	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, p), nil)
	if err != nil {
		return fmt.Errorf("error creating sleeper http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending sleeper http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from sleeper: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
