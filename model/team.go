package model

// Team is one of the user's fantasy teams together with its current matchup,
// normalized across providers. A Team is an immutable snapshot: every refresh
// cycle produces a new set of Teams rather than mutating the old ones.
type Team struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Players  []Player `json:"players"`
	Score    float64  `json:"score"`
	Opponent Opponent `json:"opponent"`
}

// Opponent is the other side of a Team's current matchup.
type Opponent struct {
	Name    string   `json:"name"`
	Score   float64  `json:"score"`
	Players []Player `json:"players"`
}
