package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/alex-monroe/fantasy-pulse-sub000/platforms/yahoo"
	"github.com/alex-monroe/fantasy-pulse-sub000/sleeper"
)

var (
	// Team keys look like 449.l.51234.t.4, the league key is the part
	// before ".t".
	leagueKeyRegex = regexp.MustCompile(`^(?P<league>\d+\.l\.\d+)\.t\.\d+$`)
)

type yahooProvider struct {
	c *controller
}

func (p *yahooProvider) connect(ctx context.Context, i *model.Integration, req ConnectRequest) error {
	token, err := p.c.oauthToken(req.State)
	if err != nil {
		return err
	}

	httpClient := p.c.yahooConfig.Client(ctx, token)
	teams, err := p.c.yahoo.GetUserTeams(httpClient)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		return errors.New("the yahoo account has no fantasy teams")
	}

	i.ExternalUserID = teams[0].Key
	i.AccessToken = token.AccessToken
	i.RefreshToken = token.RefreshToken
	i.TokenExpiry = token.Expiry
	return nil
}

func (p *yahooProvider) getLeagues(ctx context.Context, i *model.Integration) ([]model.League, error) {
	httpClient, err := p.httpClient(ctx, i)
	if err != nil {
		return nil, err
	}

	teams, err := p.c.yahoo.GetUserTeams(httpClient)
	if err != nil {
		return nil, err
	}

	leagues := make([]model.League, 0, len(teams))
	for _, t := range teams {
		key, err := leagueKey(t.Key)
		if err != nil {
			log.Printf("skipping yahoo team: %v", err)
			continue
		}
		leagues = append(leagues, model.League{
			ExternalID: key,
			Name:       t.Name,
			Status:     "in_season",
		})
	}
	return leagues, nil
}

// getTeams builds a team per yahoo fantasy team. The calls for a single team
// are strictly sequential, each needs the output of the one before it, but a
// failure on one team does not stop the others.
func (p *yahooProvider) getTeams(ctx context.Context, i *model.Integration, week int, players *sleeper.Directory) ([]model.Team, error) {
	httpClient, err := p.httpClient(ctx, i)
	if err != nil {
		return nil, err
	}

	teams, err := p.c.yahoo.GetUserTeams(httpClient)
	if err != nil {
		return nil, err
	}

	result := make([]model.Team, 0, len(teams))
	for _, t := range teams {
		built, err := p.buildTeam(httpClient, t, week, players)
		if err != nil {
			log.Printf("skipping yahoo team %s: %v", t.Key, err)
			continue
		}
		result = append(result, *built)
	}
	return result, nil
}

func (p *yahooProvider) buildTeam(httpClient *http.Client, t yahoo.Team, week int, players *sleeper.Directory) (*model.Team, error) {
	m, err := p.c.yahoo.GetMatchup(httpClient, t.Key, week)
	if err != nil {
		return nil, err
	}

	self, err := p.buildSide(httpClient, t.Key, week, players)
	if err != nil {
		return nil, err
	}
	opponent, err := p.buildSide(httpClient, m.Opponent.Key, week, players)
	if err != nil {
		// The matchup header already carries the opponent's name and
		// score, so a roster failure on their side only costs us their
		// player list.
		log.Printf("error building opponent %s: %v", m.Opponent.Key, err)
		opponent = []model.Player{}
	}

	return &model.Team{
		ID:      t.Key,
		Name:    nameOrDefault(t.Name, defaultTeamName),
		Players: self,
		Score:   m.Self.Points,
		Opponent: model.Opponent{
			Name:    nameOrDefault(m.Opponent.Name, defaultOpponentName),
			Score:   m.Opponent.Points,
			Players: opponent,
		},
	}, nil
}

// buildSide fetches one team's roster and joins the week's scores onto it.
// A score fetch failure is logged and that side's players default to 0.
func (p *yahooProvider) buildSide(httpClient *http.Client, teamKey string, week int, players *sleeper.Directory) ([]model.Player, error) {
	roster, err := p.c.yahoo.GetRoster(httpClient, teamKey)
	if err != nil {
		return nil, err
	}

	scores, err := p.c.yahoo.GetPlayerScores(httpClient, teamKey, week)
	if err != nil {
		log.Printf("error loading scores for yahoo team %s: %v", teamKey, err)
		scores = nil
	}

	result := make([]model.Player, 0, len(roster))
	for _, rp := range roster {
		player := model.Player{
			ID:         rp.Key,
			Name:       rp.Name,
			Position:   model.ParsePosition(rp.Position),
			Team:       model.ParseTeam(rp.Team),
			Score:      scores[rp.Key],
			Bench:      rp.Bench,
			ImageURL:   rp.Headshot,
			GameStatus: model.StatusPregame,
		}
		// Prefer the canonical headshot so the same player looks the
		// same no matter which provider they came from.
		if url, ok := players.ImageURL(rp.Name); ok {
			player.ImageURL = url
		}
		result = append(result, player)
	}
	return result, nil
}

func (p *yahooProvider) httpClient(ctx context.Context, i *model.Integration) (*http.Client, error) {
	token, err := p.c.GetToken(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	return p.c.yahooConfig.Client(ctx, token), nil
}

func leagueKey(teamKey string) (string, error) {
	m := leagueKeyRegex.FindStringSubmatch(teamKey)
	if m == nil {
		return "", fmt.Errorf("team key does not match the expected shape: '%s'", teamKey)
	}
	return m[leagueKeyRegex.SubexpIndex("league")], nil
}
