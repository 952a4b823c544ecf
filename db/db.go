package db

import (
	"context"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"golang.org/x/oauth2"
)

type DB interface {
	// GetIntegrations lists a user's provider integrations, oldest first.
	GetIntegrations(ctx context.Context, userID string) ([]model.Integration, error)
	GetIntegration(ctx context.Context, id string) (*model.Integration, error)
	AddIntegration(ctx context.Context, i *model.Integration) error
	// DeleteIntegration removes an integration. The store cascades the
	// delete to the integration's leagues.
	DeleteIntegration(ctx context.Context, id string) error

	SaveToken(ctx context.Context, integrationID string, t *oauth2.Token) error
	GetToken(ctx context.Context, integrationID string) (*oauth2.Token, error)

	// UpsertLeagues saves leagues discovered from a provider, keyed by
	// (integration, external id). Leagues are never created any other way.
	UpsertLeagues(ctx context.Context, integrationID string, leagues []model.League) error
	GetLeagues(ctx context.Context, integrationID string) ([]model.League, error)
}
