package controller

import (
	"fmt"
	"os"
	"testing"

	"github.com/alex-monroe/fantasy-pulse-sub000/cache"
	"github.com/alex-monroe/fantasy-pulse-sub000/db"
	"github.com/alex-monroe/fantasy-pulse-sub000/platforms/nflcom"
	"github.com/alex-monroe/fantasy-pulse-sub000/platforms/yahoo"
	"github.com/alex-monroe/fantasy-pulse-sub000/sleeper"
	"github.com/alex-monroe/fantasy-pulse-sub000/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()
	code := m.Run()
	os.Exit(code)
}

// controllerForTest wires a controller against the fake provider servers and
// the shared test database.
func controllerForTest(t *testing.T) (C, *testutils.TestController) {
	return controllerWithDB(t, testDB.DB)
}

func controllerWithDB(t *testing.T, d db.DB) (C, *testutils.TestController) {
	t.Helper()

	testCtrl := testutils.NewTestController()

	playerCache := cache.New(testCtrl.Clock, newMemStorage())
	sleeperClient := sleeper.NewForTest(testCtrl.SleeperURL(), playerCache)
	yahooClient := yahoo.NewForTest(testCtrl.YahooURL())
	nflClient := nflcom.NewForTest(testCtrl.NFLURL())

	ctrl, err := New(testCtrl.Clock, d, sleeperClient, yahooClient, nflClient, testCtrl.YahooConfig)
	if err != nil {
		testCtrl.Close()
		t.Fatalf("error creating controller: %v", err)
	}
	return ctrl, testCtrl
}

// memStorage backs the player cache in tests so nothing touches the disk.
type memStorage struct {
	data map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string][]byte)}
}

func (s *memStorage) Read(key string) ([]byte, error) {
	b, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("no entry for %s", key)
	}
	return b, nil
}

func (s *memStorage) Write(key string, data []byte) error {
	s.data[key] = data
	return nil
}

func (s *memStorage) Remove(key string) error {
	delete(s.data, key)
	return nil
}
