package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// Well-known ids served by the fake nfl.com server.
const (
	NFLLeagueID = "12345"
	NFLTeamID   = "7"
)

//go:embed nflcomdata
var nflcomdata embed.FS

type FakeNFLServer struct {
	s *httptest.Server
}

func NewFakeNFLServer() *FakeNFLServer {
	r := chi.NewRouter()
	r.Route("/football/{leagueID}", func(r chi.Router) {
		r.Get("/", standingsPageHandler)
		r.Get("/team/{teamID}", teamPageHandler)
	})

	return &FakeNFLServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeNFLServer) Close() {
	f.s.Close()
}

func (f *FakeNFLServer) URL() string {
	return f.s.URL
}

func standingsPageHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == NFLLeagueID {
		serveNFLFile(w, "standings.html")
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func teamPageHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == NFLLeagueID && chi.URLParam(r, "teamID") == NFLTeamID {
		serveNFLFile(w, "team_page.html")
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func serveNFLFile(w http.ResponseWriter, name string) {
	b, err := nflcomdata.ReadFile(fmt.Sprintf("nflcomdata/%s", name))
	if err != nil {
		log.Printf("error reading nflcomdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
