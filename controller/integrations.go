package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
)

func (c *controller) Connect(ctx context.Context, userID string, provider model.Provider, req ConnectRequest) (*model.Integration, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	i := &model.Integration{
		UserID:   userID,
		Provider: provider,
	}
	if err := getProvider(provider, c).connect(ctx, i, req); err != nil {
		return nil, fmt.Errorf("error connecting %s account: %w", provider, err)
	}

	if err := c.db.AddIntegration(ctx, i); err != nil {
		return nil, err
	}

	// Discover leagues right away so the first refresh has something to
	// work with. A sync failure here is not fatal, the integration is
	// already connected and the next sync can pick the leagues up.
	if err := c.syncLeagues(ctx, i); err != nil {
		log.Printf("error syncing leagues for new %s integration %s: %v", provider, i.ID, err)
	}

	return i, nil
}

func (c *controller) RemoveIntegration(ctx context.Context, userID, integrationID string) error {
	if _, err := c.getOwnedIntegration(ctx, userID, integrationID); err != nil {
		return err
	}
	// Associated leagues are removed by the store's cascade.
	return c.db.DeleteIntegration(ctx, integrationID)
}

func (c *controller) GetIntegrations(ctx context.Context, userID string) ([]model.Integration, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}
	return c.db.GetIntegrations(ctx, userID)
}

func (c *controller) GetLeagues(ctx context.Context, userID, integrationID string) ([]model.League, error) {
	if _, err := c.getOwnedIntegration(ctx, userID, integrationID); err != nil {
		return nil, err
	}
	return c.db.GetLeagues(ctx, integrationID)
}

func (c *controller) SyncData(ctx context.Context, userID, integrationID string) error {
	i, err := c.getOwnedIntegration(ctx, userID, integrationID)
	if err != nil {
		return err
	}
	return c.syncLeagues(ctx, i)
}

func (c *controller) syncLeagues(ctx context.Context, i *model.Integration) error {
	leagues, err := getProvider(i.Provider, c).getLeagues(ctx, i)
	if err != nil {
		return fmt.Errorf("error listing leagues from %s: %w", i.Provider, err)
	}

	if err := c.db.UpsertLeagues(ctx, i.ID, leagues); err != nil {
		return fmt.Errorf("error saving leagues: %w", err)
	}
	return nil
}

// getOwnedIntegration loads an integration and verifies that it belongs to
// the given user. Another user's integration looks like a missing one.
func (c *controller) getOwnedIntegration(ctx context.Context, userID, integrationID string) (*model.Integration, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	i, err := c.db.GetIntegration(ctx, integrationID)
	if err != nil {
		return nil, err
	}
	if i.UserID != userID {
		return nil, fmt.Errorf("integration %s does not belong to the current user", integrationID)
	}
	return i, nil
}
