package controller

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/alex-monroe/fantasy-pulse-sub000/sleeper"
)

func (c *controller) GetTeams(ctx context.Context, userID string) ([]model.Team, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	integrations, err := c.db.GetIntegrations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading integrations: %w", err)
	}

	state, err := c.sleeper.GetState()
	if err != nil {
		return nil, fmt.Errorf("error resolving the current week: %w", err)
	}

	players := c.loadPlayerDirectory()

	// Integrations have no data dependencies on each other, so build them
	// concurrently. Results are collected by index to keep the output in
	// integration order regardless of which provider answers first.
	results := make([][]model.Team, len(integrations))
	var wg sync.WaitGroup
	for x := range integrations {
		wg.Add(1)
		go func(x int) {
			defer wg.Done()

			i := &integrations[x]
			teams, err := getProvider(i.Provider, c).getTeams(ctx, i, state.Week, players)
			if err != nil {
				log.Printf("%s integration %s contributed no teams: %v", i.Provider, i.ID, err)
				return
			}
			results[x] = teams
		}(x)
	}
	wg.Wait()

	teams := make([]model.Team, 0, len(integrations))
	for _, r := range results {
		teams = append(teams, r...)
	}
	return teams, nil
}

// loadPlayerDirectory fetches the bulk player directory once per refresh
// cycle. The directory is only used to enrich players with canonical identity
// and imagery, so a load failure degrades the refresh instead of failing it.
func (c *controller) loadPlayerDirectory() *sleeper.Directory {
	players, err := c.sleeper.LoadPlayers()
	if err != nil {
		log.Printf("error loading the player directory: %v", err)
		return sleeper.NewDirectory(nil)
	}
	return players
}
