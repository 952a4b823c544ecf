package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/alex-monroe/fantasy-pulse-sub000/platforms/nflcom"
	"github.com/alex-monroe/fantasy-pulse-sub000/sleeper"
)

type nflProvider struct {
	c *controller
}

func (p *nflProvider) connect(ctx context.Context, i *model.Integration, req ConnectRequest) error {
	if req.TeamURL != "" {
		leagueID, teamID, err := nflcom.ParseTeamURL(req.TeamURL)
		if err != nil {
			return err
		}
		// The page fetch doubles as verification that the team exists.
		if _, err := p.c.nflcom.GetTeamPage(leagueID, teamID); err != nil {
			return err
		}
		i.ExternalUserID = nflRef(leagueID, teamID)
		return nil
	}

	if req.LeagueURL == "" || req.TeamName == "" {
		return errors.New("a team URL, or a league URL and team name, is required")
	}

	leagueID, err := nflcom.ParseLeagueURL(req.LeagueURL)
	if err != nil {
		return err
	}

	team, err := p.c.nflcom.FindTeam(leagueID, req.TeamName)
	if err != nil {
		return err
	}

	i.ExternalUserID = nflRef(leagueID, team.ID)
	return nil
}

func (p *nflProvider) getLeagues(ctx context.Context, i *model.Integration) ([]model.League, error) {
	leagueID, teamID, err := splitNFLRef(i.ExternalUserID)
	if err != nil {
		return nil, err
	}

	page, err := p.c.nflcom.GetTeamPage(leagueID, teamID)
	if err != nil {
		return nil, err
	}

	standings, err := p.c.nflcom.GetStandings(leagueID)
	if err != nil {
		return nil, err
	}

	return []model.League{{
		ExternalID:  leagueID,
		Name:        page.LeagueName,
		RosterCount: len(standings),
		Status:      "in_season",
	}}, nil
}

// getTeams scrapes the public team page. The page only exposes the matchup
// header, team and opponent names with scores, so the player lists are
// always empty for this provider.
func (p *nflProvider) getTeams(ctx context.Context, i *model.Integration, week int, players *sleeper.Directory) ([]model.Team, error) {
	leagueID, teamID, err := splitNFLRef(i.ExternalUserID)
	if err != nil {
		return nil, err
	}

	page, err := p.c.nflcom.GetTeamPage(leagueID, teamID)
	if err != nil {
		return nil, err
	}
	if page.Matchup == nil {
		// No matchup this week, the integration contributes nothing.
		return []model.Team{}, nil
	}

	return []model.Team{{
		ID:      fmt.Sprintf("nfl-%s-%s", leagueID, teamID),
		Name:    nameOrDefault(page.TeamName, defaultTeamName),
		Players: []model.Player{},
		Score:   page.Matchup.TeamScore,
		Opponent: model.Opponent{
			Name:    nameOrDefault(page.Matchup.OpponentName, defaultOpponentName),
			Score:   page.Matchup.OpponentScore,
			Players: []model.Player{},
		},
	}}, nil
}

// An nfl.com team is identified by the league and team id pair, stored
// together as the integration's external id.
func nflRef(leagueID, teamID string) string {
	return fmt.Sprintf("%s/%s", leagueID, teamID)
}

func splitNFLRef(ref string) (leagueID, teamID string, err error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("'%s' is not a valid league/team reference", ref)
	}
	return parts[0], parts[1], nil
}
