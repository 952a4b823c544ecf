package mockcontroller

import (
	"context"

	"github.com/alex-monroe/fantasy-pulse-sub000/controller"
	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetTeams(ctx context.Context, userID string) ([]model.Team, error) {
	args := c.Called(ctx, userID)

	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	return teams, args.Error(1)
}

func (c *C) ProcessMatchups(teams []model.Team) *model.MatchupGroups {
	args := c.Called(teams)

	var groups *model.MatchupGroups
	if args.Get(0) != nil {
		groups = args.Get(0).(*model.MatchupGroups)
	}
	return groups
}

func (c *C) Connect(ctx context.Context, userID string, provider model.Provider, req controller.ConnectRequest) (*model.Integration, error) {
	args := c.Called(ctx, userID, provider, req)

	var i *model.Integration
	if args.Get(0) != nil {
		i = args.Get(0).(*model.Integration)
	}
	return i, args.Error(1)
}

func (c *C) RemoveIntegration(ctx context.Context, userID, integrationID string) error {
	args := c.Called(ctx, userID, integrationID)
	return args.Error(0)
}

func (c *C) GetIntegrations(ctx context.Context, userID string) ([]model.Integration, error) {
	args := c.Called(ctx, userID)

	var res []model.Integration
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Integration)
	}
	return res, args.Error(1)
}

func (c *C) GetLeagues(ctx context.Context, userID, integrationID string) ([]model.League, error) {
	args := c.Called(ctx, userID, integrationID)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}
	return res, args.Error(1)
}

func (c *C) SyncData(ctx context.Context, userID, integrationID string) error {
	args := c.Called(ctx, userID, integrationID)
	return args.Error(0)
}

func (c *C) OAuthStart() (string, error) {
	args := c.Called()
	return args.String(0), args.Error(1)
}

func (c *C) OAuthExchange(ctx context.Context, state, code string) error {
	args := c.Called(ctx, state, code)
	return args.Error(0)
}
