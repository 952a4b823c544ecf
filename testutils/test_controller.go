package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/itbasis/go-clock"
	"golang.org/x/oauth2"
)

// TestController bundles everything a controller needs in tests: fake
// provider servers, a fake OAuth token endpoint, and a mock clock pinned to
// the current wall time so token expiry math behaves.
type TestController struct {
	Clock       *clock.Mock
	YahooConfig *oauth2.Config
	FakeYahoo   *FakeYahooServer
	fakeSleeper *FakeSleeperServer
	fakeNFL     *FakeNFLServer
	fakeOAuth   *httptest.Server
}

func NewTestController() *TestController {
	fakeOAuthServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"access_token": "access_token",
			"refresh_token": "refresh_token",
			"token_type": "bearer",
			"expires_in": 3600
		}`))
	}))

	fakeYahooConfig := &oauth2.Config{
		ClientID:     "fakeClientID",
		ClientSecret: "fakeClientSecret",
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/auth", fakeOAuthServer.URL),
			TokenURL: fmt.Sprintf("%s/token", fakeOAuthServer.URL),
		},
		RedirectURL: fmt.Sprintf("%s/redirect", fakeOAuthServer.URL),
	}

	mock := clock.NewMock()
	mock.Set(time.Now())

	return &TestController{
		Clock:       mock,
		YahooConfig: fakeYahooConfig,
		FakeYahoo:   NewFakeYahooServer(),
		fakeSleeper: NewFakeSleeperServer(),
		fakeNFL:     NewFakeNFLServer(),
		fakeOAuth:   fakeOAuthServer,
	}
}

func (c *TestController) Close() {
	c.fakeSleeper.Close()
	c.FakeYahoo.Close()
	c.fakeNFL.Close()
	c.fakeOAuth.Close()
}

func (c *TestController) SleeperURL() string {
	return c.fakeSleeper.URL()
}

func (c *TestController) YahooURL() string {
	return c.FakeYahoo.URL()
}

func (c *TestController) NFLURL() string {
	return c.fakeNFL.URL()
}
