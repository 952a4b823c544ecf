package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alex-monroe/fantasy-pulse-sub000/containers"
	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/itbasis/go-clock"
	"golang.org/x/oauth2"
)

var (
	// A test global db instance to use for all of the tests instead of setting up a new one each time.
	testDB DB

	// a counter to generate new user ids for each test. To help keep them separated.
	idCtr = int32(0)
)

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	clock := clock.New()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	var err error
	testDB, err = New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		os.Exit(-1)
	}

	code := m.Run()
	container.Shutdown()
	os.Exit(code)
}

func TestDB_integrationSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	userID := nextUserID()

	i := &model.Integration{
		UserID:         userID,
		Provider:       model.ProviderSleeper,
		ExternalUserID: "12345678",
	}
	err := testDB.AddIntegration(ctx, i)
	assertFatalf(t, err == nil, "error saving integration: %v", err)
	assertTrue(t, "generated id", i.ID != "")
	assertTrue(t, "created set", !i.Created.IsZero())

	res, err := testDB.GetIntegration(ctx, i.ID)
	assertFatalf(t, err == nil, "error loading integration: %v", err)

	assertEquals(t, "ID", i.ID, res.ID)
	assertEquals(t, "UserID", userID, res.UserID)
	assertEquals(t, "Provider", model.ProviderSleeper, res.Provider)
	assertEquals(t, "ExternalUserID", "12345678", res.ExternalUserID)
	assertEquals(t, "AccessToken", "", res.AccessToken)
	assertEquals(t, "RefreshToken", "", res.RefreshToken)
	assertTrue(t, "TokenExpiry zero", res.TokenExpiry.IsZero())

	// Lookup an integration that doesn't exist.
	res2, err := testDB.GetIntegration(ctx, "24df0b86-1967-4e0c-bd78-96b876a383a7")
	assertFatalf(t, err != nil, "should have had an error loading missing integration")
	assertEquals(t, "error type", true, errors.Is(err, ErrIntegrationNotFound))
	if res2 != nil {
		t.Errorf("expected res2 to be nil, but was %v", res2)
	}
}

func TestDB_getIntegrationsOrdersByCreated(t *testing.T) {
	ctx := context.Background()
	userID := nextUserID()

	providers := []model.Provider{model.ProviderSleeper, model.ProviderYahoo, model.ProviderNFL}
	for _, p := range providers {
		i := &model.Integration{
			UserID:         userID,
			Provider:       p,
			ExternalUserID: fmt.Sprintf("ext-%s", p),
		}
		if err := testDB.AddIntegration(ctx, i); err != nil {
			t.Fatalf("error saving %s integration: %v", p, err)
		}
	}

	results, err := testDB.GetIntegrations(ctx, userID)
	assertFatalf(t, err == nil, "error loading integrations: %v", err)
	assertFatalf(t, len(results) == 3, "expected 3 integrations, got %d", len(results))
	for x, p := range providers {
		assertEquals(t, fmt.Sprintf("results[%d].Provider", x), p, results[x].Provider)
	}

	// A user with no integrations gets an empty slice, not an error.
	empty, err := testDB.GetIntegrations(ctx, nextUserID())
	assertFatalf(t, err == nil, "error loading empty integrations: %v", err)
	assertEquals(t, "len(empty)", 0, len(empty))
}

func TestDB_saveAndGetToken(t *testing.T) {
	ctx := context.Background()

	i := &model.Integration{
		UserID:         nextUserID(),
		Provider:       model.ProviderYahoo,
		ExternalUserID: "yahoo-user",
	}
	err := testDB.AddIntegration(ctx, i)
	assertFatalf(t, err == nil, "error saving integration: %v", err)

	// No token saved yet.
	_, err = testDB.GetToken(ctx, i.ID)
	assertEquals(t, "missing token error", true, errors.Is(err, ErrTokenNotFound))

	expiry := time.Date(2024, 10, 6, 18, 30, 0, 0, time.UTC)
	tok := &oauth2.Token{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		Expiry:       expiry,
	}
	err = testDB.SaveToken(ctx, i.ID, tok)
	assertFatalf(t, err == nil, "error saving token: %v", err)

	res, err := testDB.GetToken(ctx, i.ID)
	assertFatalf(t, err == nil, "error loading token: %v", err)
	assertEquals(t, "AccessToken", "access-1", res.AccessToken)
	assertEquals(t, "RefreshToken", "refresh-1", res.RefreshToken)
	assertEquals(t, "Expiry", expiry, res.Expiry.UTC())

	// A refresh overwrites the previous token.
	tok2 := &oauth2.Token{
		AccessToken:  "access-2",
		RefreshToken: "refresh-2",
		Expiry:       expiry.Add(time.Hour),
	}
	err = testDB.SaveToken(ctx, i.ID, tok2)
	assertFatalf(t, err == nil, "error refreshing token: %v", err)

	res2, err := testDB.GetToken(ctx, i.ID)
	assertFatalf(t, err == nil, "error loading refreshed token: %v", err)
	assertEquals(t, "AccessToken", "access-2", res2.AccessToken)
	assertEquals(t, "Expiry", expiry.Add(time.Hour), res2.Expiry.UTC())

	// Saving a token against an unknown integration is an error.
	err = testDB.SaveToken(ctx, "5f2c1c02-98f5-41ed-a2b3-6ad57c0a1d2e", tok)
	assertEquals(t, "unknown integration", true, errors.Is(err, ErrIntegrationNotFound))
}

func TestDB_leagues(t *testing.T) {
	ctx := context.Background()

	i := &model.Integration{
		UserID:         nextUserID(),
		Provider:       model.ProviderSleeper,
		ExternalUserID: "12345678",
	}
	err := testDB.AddIntegration(ctx, i)
	assertFatalf(t, err == nil, "error saving integration: %v", err)

	leagues := []model.League{
		{ExternalID: "924039165950484480", Name: "Footclan & Friends Dynasty", Season: "2024", RosterCount: 12, Status: "in_season"},
		{ExternalID: "98765", Name: "The Megalabowl", Season: "2024", RosterCount: 10, Status: "in_season"},
	}
	err = testDB.UpsertLeagues(ctx, i.ID, leagues)
	assertFatalf(t, err == nil, "error upserting leagues: %v", err)

	res, err := testDB.GetLeagues(ctx, i.ID)
	assertFatalf(t, err == nil, "error loading leagues: %v", err)
	assertFatalf(t, len(res) == 2, "expected 2 leagues, got %d", len(res))
	assertEquals(t, "res[0].Name", "Footclan & Friends Dynasty", res[0].Name)
	assertEquals(t, "res[1].Name", "The Megalabowl", res[1].Name)
	assertEquals(t, "res[0].IntegrationID", i.ID, res[0].IntegrationID)

	// Syncing again updates in place instead of duplicating.
	leagues[0].Name = "Footclan Dynasty"
	leagues[0].Status = "complete"
	err = testDB.UpsertLeagues(ctx, i.ID, leagues)
	assertFatalf(t, err == nil, "error re-upserting leagues: %v", err)

	res2, err := testDB.GetLeagues(ctx, i.ID)
	assertFatalf(t, err == nil, "error loading leagues after sync: %v", err)
	assertFatalf(t, len(res2) == 2, "expected 2 leagues after sync, got %d", len(res2))
	assertEquals(t, "res2[0].Name", "Footclan Dynasty", res2[0].Name)
	assertEquals(t, "res2[0].Status", "complete", res2[0].Status)
	assertEquals(t, "res2[0].ID", res[0].ID, res2[0].ID)
}

func TestDB_deleteIntegrationCascades(t *testing.T) {
	ctx := context.Background()

	i := &model.Integration{
		UserID:         nextUserID(),
		Provider:       model.ProviderNFL,
		ExternalUserID: "12345",
	}
	err := testDB.AddIntegration(ctx, i)
	assertFatalf(t, err == nil, "error saving integration: %v", err)

	leagues := []model.League{
		{ExternalID: "12345", Name: "Main Street League", Season: "2024", RosterCount: 10, Status: "in_season"},
	}
	err = testDB.UpsertLeagues(ctx, i.ID, leagues)
	assertFatalf(t, err == nil, "error upserting leagues: %v", err)

	err = testDB.DeleteIntegration(ctx, i.ID)
	assertFatalf(t, err == nil, "error deleting integration: %v", err)

	_, err = testDB.GetIntegration(ctx, i.ID)
	assertEquals(t, "integration gone", true, errors.Is(err, ErrIntegrationNotFound))

	res, err := testDB.GetLeagues(ctx, i.ID)
	assertFatalf(t, err == nil, "error loading leagues after delete: %v", err)
	assertEquals(t, "len(res)", 0, len(res))

	// Deleting again is an error.
	err = testDB.DeleteIntegration(ctx, i.ID)
	assertEquals(t, "double delete", true, errors.Is(err, ErrIntegrationNotFound))
}

func nextUserID() string {
	return fmt.Sprintf("user-%d", atomic.AddInt32(&idCtr, 1))
}

func assertFatalf(t *testing.T, c bool, f string, args ...any) {
	if !c {
		t.Fatalf(f, args...)
	}
}

func assertEquals(t *testing.T, field string, expected, actual any) {
	if expected != actual {
		t.Errorf("%s - expected: '%v', got: '%v'", field, expected, actual)
	}
}

func assertTrue(t *testing.T, field string, cond bool) {
	if !cond {
		t.Errorf("%s - expected to be true but it was false", field)
	}
}
