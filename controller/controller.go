package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alex-monroe/fantasy-pulse-sub000/db"
	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/alex-monroe/fantasy-pulse-sub000/platforms/nflcom"
	"github.com/alex-monroe/fantasy-pulse-sub000/platforms/yahoo"
	"github.com/alex-monroe/fantasy-pulse-sub000/sleeper"
	"github.com/itbasis/go-clock"
	"golang.org/x/oauth2"
)

var ErrNotLoggedIn = errors.New("not logged in")

// C encapsulates business logic without worrying about any web layers
type C interface {
	// GetTeams builds the full set of teams for a user across every
	// connected provider. Per-provider failures degrade to an empty
	// contribution; only a missing user or an unreadable integration
	// list fails the whole call.
	GetTeams(ctx context.Context, userID string) ([]model.Team, error)
	// ProcessMatchups classifies the players from a set of teams into the
	// three cross-matchup buckets.
	ProcessMatchups(teams []model.Team) *model.MatchupGroups

	Connect(ctx context.Context, userID string, provider model.Provider, req ConnectRequest) (*model.Integration, error)
	RemoveIntegration(ctx context.Context, userID, integrationID string) error
	GetIntegrations(ctx context.Context, userID string) ([]model.Integration, error)
	GetLeagues(ctx context.Context, userID, integrationID string) ([]model.League, error)
	// SyncData refreshes the persisted league list for one integration
	// from its provider.
	SyncData(ctx context.Context, userID, integrationID string) error

	OAuthStart() (string, error)
	OAuthExchange(ctx context.Context, state, code string) error
}

// ConnectRequest carries the provider-specific inputs for connecting a new
// integration. Sleeper needs a username, yahoo the state from a completed
// OAuth exchange, and nfl.com either a team page URL or a league URL plus
// the team's display name.
type ConnectRequest struct {
	Username  string
	State     string
	TeamURL   string
	LeagueURL string
	TeamName  string
}

type controller struct {
	clock       clock.Clock
	db          db.DB
	sleeper     sleeper.Client
	yahoo       *yahoo.Client
	nflcom      nflcom.Client
	yahooConfig *oauth2.Config

	mu          sync.Mutex
	oauthStates map[string]*oauthState
}

func New(clock clock.Clock, db db.DB, sleeper sleeper.Client, yahoo *yahoo.Client, nflcom nflcom.Client, yahooConfig *oauth2.Config) (C, error) {
	c := &controller{
		clock:       clock,
		db:          db,
		sleeper:     sleeper,
		yahoo:       yahoo,
		nflcom:      nflcom,
		yahooConfig: yahooConfig,
		oauthStates: make(map[string]*oauthState),
	}
	return c, nil
}

// When we need to make calls that are specific to a provider, grab a provider
// implementation and it will do it. This is internal to the controller
// package. Adding a provider means adding a model.Provider constant and one
// implementation here, never a conditional chain at the call sites.
type provider interface {
	// connect fills in the provider-native identity fields on a new
	// integration, verifying the account against the provider.
	connect(ctx context.Context, i *model.Integration, req ConnectRequest) error
	// getLeagues lists the integration's leagues live from the provider.
	getLeagues(ctx context.Context, i *model.Integration) ([]model.League, error)
	// getTeams builds the integration's teams for the given week. The
	// player directory is the canonical identity space for cross-provider
	// name matching.
	getTeams(ctx context.Context, i *model.Integration, week int, players *sleeper.Directory) ([]model.Team, error)
}

func getProvider(p model.Provider, c *controller) provider {
	switch p {
	case model.ProviderSleeper:
		return &sleeperProvider{c}
	case model.ProviderYahoo:
		return &yahooProvider{c}
	case model.ProviderNFL:
		return &nflProvider{c}
	default:
		return &nilProvider{err: fmt.Errorf("%s is not a supported provider", p)}
	}
}

// nilProvider exists so that we can always return a provider and simplify the
// usage. It eliminates the need for an extra error check.
type nilProvider struct {
	err error
}

func (p *nilProvider) connect(ctx context.Context, i *model.Integration, req ConnectRequest) error {
	return p.err
}

func (p *nilProvider) getLeagues(ctx context.Context, i *model.Integration) ([]model.League, error) {
	return nil, p.err
}

func (p *nilProvider) getTeams(ctx context.Context, i *model.Integration, week int, players *sleeper.Directory) ([]model.Team, error) {
	return nil, p.err
}
