package model

import (
	"fmt"
	"strings"
)

// GameStatus describes where a player's real-world game currently stands.
// These are placeholders until a live-score feed is wired up; every provider
// currently reports StatusPregame.
type GameStatus string

const (
	StatusPregame    GameStatus = "pregame"
	StatusPossession GameStatus = "possession"
	StatusSidelines  GameStatus = "sidelines"
	StatusFinal      GameStatus = "final"
)

// GameDetail is the per-player live-game strip shown under a player row.
// All three fields are empty until live data exists.
type GameDetail struct {
	Score         string `json:"score"`
	TimeRemaining string `json:"timeRemaining"`
	FieldPosition string `json:"fieldPosition"`
}

// Player is a single rostered player as displayed on the dashboard. A Player
// is built fresh on every refresh and never mutated after construction.
type Player struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Position   Position   `json:"position"`
	Team       *NFLTeam   `json:"team"`
	Score      float64    `json:"score"`
	Bench      bool       `json:"bench"`
	ImageURL   string     `json:"imageUrl"`
	GameStatus GameStatus `json:"gameStatus"`
	GameDetail GameDetail `json:"gameDetail"`
}

// NormalizedName returns the key used to match a player across providers:
// the full name lowercased with internal whitespace collapsed. Two distinct
// real players with the same full name collide under this key. That is a
// documented limitation of name-based matching, not something to paper over.
func (p *Player) NormalizedName() string {
	return NormalizeName(p.Name)
}

func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s - %s)", p.Name, p.Position, p.Team)
}
