package mocksleeper

import (
	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/alex-monroe/fantasy-pulse-sub000/sleeper"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetState() (*sleeper.State, error) {
	args := c.Called()

	var s *sleeper.State
	if args.Get(0) != nil {
		s = args.Get(0).(*sleeper.State)
	}
	return s, args.Error(1)
}

func (c *Client) LoadPlayers() (*sleeper.Directory, error) {
	args := c.Called()

	var d *sleeper.Directory
	if args.Get(0) != nil {
		d = args.Get(0).(*sleeper.Directory)
	}
	return d, args.Error(1)
}

func (c *Client) GetUserID(username string) (string, error) {
	args := c.Called(username)
	return args.String(0), args.Error(1)
}

func (c *Client) GetLeaguesForUser(userID, season string) ([]model.League, error) {
	args := c.Called(userID, season)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}
	return res, args.Error(1)
}

func (c *Client) GetRosters(leagueID string) ([]sleeper.Roster, error) {
	args := c.Called(leagueID)

	var res []sleeper.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.Roster)
	}
	return res, args.Error(1)
}

func (c *Client) GetMatchups(leagueID string, week int) ([]sleeper.Matchup, error) {
	args := c.Called(leagueID, week)

	var res []sleeper.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.Matchup)
	}
	return res, args.Error(1)
}

func (c *Client) GetLeagueUsers(leagueID string) ([]sleeper.LeagueUser, error) {
	args := c.Called(leagueID)

	var res []sleeper.LeagueUser
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.LeagueUser)
	}
	return res, args.Error(1)
}
