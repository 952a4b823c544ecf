package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/alex-monroe/fantasy-pulse-sub000/sleeper"
)

const (
	defaultTeamName     = "My Team"
	defaultOpponentName = "Opponent"
)

type sleeperProvider struct {
	c *controller
}

func (p *sleeperProvider) connect(ctx context.Context, i *model.Integration, req ConnectRequest) error {
	if req.Username == "" {
		return errors.New("a sleeper username is required")
	}

	userID, err := p.c.sleeper.GetUserID(req.Username)
	if err != nil {
		return err
	}

	i.ExternalUserID = userID
	return nil
}

func (p *sleeperProvider) getLeagues(ctx context.Context, i *model.Integration) ([]model.League, error) {
	state, err := p.c.sleeper.GetState()
	if err != nil {
		return nil, err
	}
	return p.c.sleeper.GetLeaguesForUser(i.ExternalUserID, state.Season)
}

func (p *sleeperProvider) getTeams(ctx context.Context, i *model.Integration, week int, players *sleeper.Directory) ([]model.Team, error) {
	leagues, err := p.leagues(ctx, i)
	if err != nil {
		return nil, err
	}

	teams := make([]model.Team, 0, len(leagues))
	for _, l := range leagues {
		t, err := p.buildTeam(i, l, week, players)
		if err != nil {
			// One league failing says nothing about the others.
			log.Printf("skipping sleeper league %s: %v", l.ExternalID, err)
			continue
		}
		teams = append(teams, *t)
	}
	return teams, nil
}

// leagues returns the integration's synced leagues, falling back to a live
// fetch when nothing has been synced yet.
func (p *sleeperProvider) leagues(ctx context.Context, i *model.Integration) ([]model.League, error) {
	leagues, err := p.c.db.GetLeagues(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	if len(leagues) > 0 {
		return leagues, nil
	}

	leagues, err = p.getLeagues(ctx, i)
	if err != nil {
		return nil, err
	}
	if err := p.c.db.UpsertLeagues(ctx, i.ID, leagues); err != nil {
		log.Printf("error saving sleeper leagues for integration %s: %v", i.ID, err)
	}
	return leagues, nil
}

// buildTeam assembles the user's team and current opponent for one league.
// A league where the user has no roster or no matchup this week contributes
// no team.
func (p *sleeperProvider) buildTeam(i *model.Integration, l model.League, week int, players *sleeper.Directory) (*model.Team, error) {
	rosters, err := p.c.sleeper.GetRosters(l.ExternalID)
	if err != nil {
		return nil, err
	}

	var userRoster *sleeper.Roster
	for x := range rosters {
		if rosters[x].OwnerID == i.ExternalUserID {
			userRoster = &rosters[x]
			break
		}
	}
	if userRoster == nil {
		return nil, fmt.Errorf("user %s has no roster", i.ExternalUserID)
	}

	matchups, err := p.c.sleeper.GetMatchups(l.ExternalID, week)
	if err != nil {
		return nil, err
	}

	var userMatchup, oppMatchup *sleeper.Matchup
	for x := range matchups {
		if matchups[x].RosterID == userRoster.RosterID {
			userMatchup = &matchups[x]
			break
		}
	}
	if userMatchup == nil {
		return nil, fmt.Errorf("no matchup found for week %d", week)
	}

	for x := range matchups {
		if matchups[x].MatchupID == userMatchup.MatchupID && matchups[x].RosterID != userRoster.RosterID {
			oppMatchup = &matchups[x]
			break
		}
	}
	if oppMatchup == nil {
		return nil, fmt.Errorf("no opponent found for week %d", week)
	}

	var oppRoster *sleeper.Roster
	for x := range rosters {
		if rosters[x].RosterID == oppMatchup.RosterID {
			oppRoster = &rosters[x]
			break
		}
	}

	names := p.teamNames(l.ExternalID)

	team := &model.Team{
		ID:      fmt.Sprintf("sleeper-%s-%d", l.ExternalID, userRoster.RosterID),
		Name:    nameOrDefault(names[userRoster.OwnerID], defaultTeamName),
		Players: buildSleeperPlayers(userRoster, userMatchup, players),
		Score:   userMatchup.Points,
		Opponent: model.Opponent{
			Name:    defaultOpponentName,
			Score:   oppMatchup.Points,
			Players: buildSleeperPlayers(oppRoster, oppMatchup, players),
		},
	}
	if oppRoster != nil {
		team.Opponent.Name = nameOrDefault(names[oppRoster.OwnerID], defaultOpponentName)
	}
	return team, nil
}

// teamNames maps owner ids to display names for a league. Name lookups are
// cosmetic, so a failure here just means default names.
func (p *sleeperProvider) teamNames(leagueID string) map[string]string {
	users, err := p.c.sleeper.GetLeagueUsers(leagueID)
	if err != nil {
		log.Printf("error loading users for sleeper league %s: %v", leagueID, err)
		return nil
	}

	names := make(map[string]string, len(users))
	for x := range users {
		names[users[x].UserID] = users[x].TeamName()
	}
	return names
}

func buildSleeperPlayers(r *sleeper.Roster, m *sleeper.Matchup, players *sleeper.Directory) []model.Player {
	if r == nil {
		return []model.Player{}
	}

	result := make([]model.Player, 0, len(r.Players))
	for _, id := range r.Players {
		p, ok := players.Player(id)
		if !ok {
			// Not in the directory, keep the id so the roster stays
			// complete on screen.
			p = model.Player{
				ID:         id,
				Name:       id,
				Position:   model.POS_UNKNOWN,
				Team:       model.ParseTeam(""),
				GameStatus: model.StatusPregame,
			}
		}

		p.Score = m.PlayersPoints[id]
		p.Bench = !slices.Contains(r.Starters, id)
		result = append(result, p)
	}
	return result
}

func nameOrDefault(name, def string) string {
	if name == "" {
		return def
	}
	return name
}
