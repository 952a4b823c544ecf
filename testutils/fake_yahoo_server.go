package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Well-known keys served by the fake yahoo server.
const (
	YahooTeamKey         = "449.l.51234.t.4"
	YahooOpponentTeamKey = "449.l.51234.t.7"
	YahooSecondTeamKey   = "449.l.98765.t.2"
)

//go:embed yahoodata
var yahoodata embed.FS

type FakeYahooServer struct {
	s *httptest.Server

	// FailScores makes the roster stats endpoint return a 500 so tests can
	// exercise the score-fetch-failed path.
	FailScores bool
}

func NewFakeYahooServer() *FakeYahooServer {
	f := &FakeYahooServer{}

	r := chi.NewRouter()
	r.Route("/fantasy/v2", func(r chi.Router) {
		r.Get("/users;use_login=1/games;game_keys=nfl/teams", f.userTeamsHandler)
		// The matrix-parameter segments (roster;week=4) are opaque to chi, so
		// they are matched inside the handler.
		r.Get("/team/{teamKey}/matchups;weeks={week}", f.matchupsHandler)
		r.Get("/team/{teamKey}/roster/players", f.rosterHandler)
		r.Get("/team/{teamKey}/{rosterSegment}/players/stats", f.statsHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeYahooServer) Close() {
	f.s.Close()
}

func (f *FakeYahooServer) URL() string {
	return f.s.URL
}

func (f *FakeYahooServer) userTeamsHandler(w http.ResponseWriter, r *http.Request) {
	serveYahooFile(w, "user_teams.json")
}

func (f *FakeYahooServer) matchupsHandler(w http.ResponseWriter, r *http.Request) {
	teamKey := chi.URLParam(r, "teamKey")
	week := chi.URLParam(r, "week")
	if teamKey == YahooTeamKey && week == "4" {
		serveYahooFile(w, "matchups.json")
		return
	}
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"fantasy_content": {}}`))
}

func (f *FakeYahooServer) rosterHandler(w http.ResponseWriter, r *http.Request) {
	teamKey := chi.URLParam(r, "teamKey")
	if teamKey == YahooTeamKey {
		serveYahooFile(w, "roster.json")
		return
	}
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"fantasy_content": {}}`))
}

func (f *FakeYahooServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	if f.FailScores {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	teamKey := chi.URLParam(r, "teamKey")
	rosterSegment := chi.URLParam(r, "rosterSegment")
	if teamKey == YahooTeamKey && strings.HasPrefix(rosterSegment, "roster;week=") {
		serveYahooFile(w, "roster_stats.json")
		return
	}
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"fantasy_content": {}}`))
}

func serveYahooFile(w http.ResponseWriter, name string) {
	b, err := yahoodata.ReadFile(fmt.Sprintf("yahoodata/%s", name))
	if err != nil {
		log.Printf("error reading yahoodata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
