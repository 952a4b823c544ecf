package mockdb

import (
	"context"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetIntegrations(ctx context.Context, userID string) ([]model.Integration, error) {
	args := db.Called(ctx, userID)

	var r []model.Integration
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Integration)
	}
	return r, args.Error(1)
}

func (db *DB) GetIntegration(ctx context.Context, id string) (*model.Integration, error) {
	args := db.Called(ctx, id)

	var i *model.Integration
	if args.Get(0) != nil {
		i = args.Get(0).(*model.Integration)
	}
	return i, args.Error(1)
}

func (db *DB) AddIntegration(ctx context.Context, i *model.Integration) error {
	args := db.Called(ctx, i)
	return args.Error(0)
}

func (db *DB) DeleteIntegration(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) SaveToken(ctx context.Context, integrationID string, t *oauth2.Token) error {
	args := db.Called(ctx, integrationID, t)
	return args.Error(0)
}

func (db *DB) GetToken(ctx context.Context, integrationID string) (*oauth2.Token, error) {
	args := db.Called(ctx, integrationID)

	var t *oauth2.Token
	if args.Get(0) != nil {
		t = args.Get(0).(*oauth2.Token)
	}
	return t, args.Error(1)
}

func (db *DB) UpsertLeagues(ctx context.Context, integrationID string, leagues []model.League) error {
	args := db.Called(ctx, integrationID, leagues)
	return args.Error(0)
}

func (db *DB) GetLeagues(ctx context.Context, integrationID string) ([]model.League, error) {
	args := db.Called(ctx, integrationID)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}
