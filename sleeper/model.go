package sleeper

import (
	"fmt"
	"strings"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
)

const headshotURLFormat = "https://sleepercdn.com/content/nfl/players/%s.jpg"

// State is the current NFL state as reported by Sleeper. Week is the scoring
// period used to select matchups for every provider in a refresh cycle.
type State struct {
	Week   int    `json:"week"`
	Season string `json:"season"`
}

// Roster is a single team's roster within a league. Players holds every
// rostered player id; Starters holds the subset in the active lineup.
type Roster struct {
	OwnerID  string   `json:"owner_id"`
	RosterID int      `json:"roster_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

// Matchup is one roster's side of a weekly pairing. Two rosters share a
// MatchupID when they play each other.
type Matchup struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int                `json:"matchup_id"`
	Points        float64            `json:"points"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

// LeagueUser is a league member as returned by the users endpoint. The
// preferred team name lives under metadata; DisplayName is the fallback.
type LeagueUser struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

// TeamName returns the user's chosen team name, preferring the explicit
// metadata value over the bare display name. Returns "" if neither is set.
func (u *LeagueUser) TeamName() string {
	if u.Metadata != nil && u.Metadata.TeamName != "" {
		return u.Metadata.TeamName
	}
	return u.DisplayName
}

type sleeperUser struct {
	UserID string `json:"user_id"`
}

type sleeperLeague struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	TotalRosters int    `json:"total_rosters"`
	Status       string `json:"status"`
}

func (l *sleeperLeague) toLeague() model.League {
	return model.League{
		ExternalID:  l.LeagueID,
		Name:        l.Name,
		Season:      l.Season,
		RosterCount: l.TotalRosters,
		Status:      l.Status,
	}
}

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

func (p *sleeperPlayer) name() string {
	if p.FullName != "" {
		return p.FullName
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
}

func (p *sleeperPlayer) toPlayer() model.Player {
	return model.Player{
		ID:         p.ID,
		Name:       p.name(),
		Position:   model.ParsePosition(p.Position),
		Team:       model.ParseTeam(p.Team),
		ImageURL:   fmt.Sprintf(headshotURLFormat, p.ID),
		GameStatus: model.StatusPregame,
	}
}

// Directory is the bulk player directory keyed both by Sleeper player id and
// by normalized full name. It is the canonical identity space for matching
// players across providers: other providers look their players up here by
// lowercased full name to recover the Sleeper id and headshot. Two distinct
// players sharing a full name collide; the last one loaded wins.
type Directory struct {
	players map[string]model.Player
	byName  map[string]string
}

// NewDirectory builds a directory from an explicit player list. Production
// code gets directories from Client.LoadPlayers; this is for wiring fixed
// players into tests.
func NewDirectory(players []model.Player) *Directory {
	d := newDirectory(len(players))
	for _, p := range players {
		d.add(p)
	}
	return d
}

func newDirectory(size int) *Directory {
	return &Directory{
		players: make(map[string]model.Player, size),
		byName:  make(map[string]string, size),
	}
}

func (d *Directory) add(p model.Player) {
	d.players[p.ID] = p
	d.byName[model.NormalizeName(p.Name)] = p.ID
}

// Player looks up a player by Sleeper id.
func (d *Directory) Player(id string) (model.Player, bool) {
	p, ok := d.players[id]
	return p, ok
}

// ImageURL looks up the canonical headshot for a player by full name.
func (d *Directory) ImageURL(name string) (string, bool) {
	id, ok := d.byName[model.NormalizeName(name)]
	if !ok {
		return "", false
	}
	return d.players[id].ImageURL, true
}

func (d *Directory) Len() int {
	return len(d.players)
}
