package controller

import (
	"slices"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
)

// matchupEntry tallies one player's involvements across every matchup. The
// user and opponent lists hold the names of the user's teams whose matchup
// the player appears in, in first-encounter order.
type matchupEntry struct {
	player   model.Player
	user     []string
	opponent []string
}

func (c *controller) ProcessMatchups(teams []model.Team) *model.MatchupGroups {
	entries := make(map[string]*matchupEntry)
	order := make([]string, 0)

	record := func(p model.Player, teamName string, opposing bool) {
		key := p.NormalizedName()
		e, ok := entries[key]
		if !ok {
			e = &matchupEntry{player: p}
			entries[key] = e
			order = append(order, key)
		}
		if opposing {
			e.opponent = append(e.opponent, teamName)
		} else {
			e.user = append(e.user, teamName)
		}
	}

	for _, t := range teams {
		for _, p := range t.Players {
			record(p, t.Name, false)
		}
		for _, p := range t.Opponent.Players {
			record(p, t.Name, true)
		}
	}

	groups := &model.MatchupGroups{
		FantasyHeroes: make([]model.GroupedPlayer, 0),
		PublicEnemies: make([]model.GroupedPlayer, 0),
		DoubleAgents:  make([]model.GroupedPlayer, 0),
	}
	for _, key := range order {
		e := entries[key]
		g := model.GroupedPlayer{
			Player:           e.player,
			UserMatchups:     e.user,
			OpponentMatchups: e.opponent,
		}

		// A player on both sides is always a double agent, whatever the
		// counts. Single involvements on one side only are not notable
		// and land in no bucket.
		switch {
		case len(e.user) >= 1 && len(e.opponent) >= 1:
			groups.DoubleAgents = append(groups.DoubleAgents, g)
		case len(e.user) >= 2:
			groups.FantasyHeroes = append(groups.FantasyHeroes, g)
		case len(e.opponent) >= 2:
			groups.PublicEnemies = append(groups.PublicEnemies, g)
		}
	}

	sortGroup(groups.FantasyHeroes)
	sortGroup(groups.PublicEnemies)
	sortGroup(groups.DoubleAgents)
	return groups
}

// sortGroup orders a bucket for display: bench players last, then by
// descending score, stable otherwise.
func sortGroup(g []model.GroupedPlayer) {
	slices.SortStableFunc(g, func(a, b model.GroupedPlayer) int {
		if a.Player.Bench != b.Player.Bench {
			if a.Player.Bench {
				return 1
			}
			return -1
		}
		switch {
		case a.Player.Score > b.Player.Score:
			return -1
		case a.Player.Score < b.Player.Score:
			return 1
		default:
			return 0
		}
	})
}
