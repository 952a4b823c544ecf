package model

// GroupedPlayer is a player plus the matchups they are involved in across all
// of the user's teams. UserMatchups lists the names of the user's teams that
// roster the player; OpponentMatchups lists the user's teams whose current
// opponent rosters the player. Both lists are in first-encounter order.
// GroupedPlayers are derived on every categorization pass and never persisted.
type GroupedPlayer struct {
	Player           Player   `json:"player"`
	UserMatchups     []string `json:"userMatchups"`
	OpponentMatchups []string `json:"opponentMatchups"`
}

// MatchupGroups holds the three categorizer buckets. The field names are the
// presentation-facing ones: fantasy heroes appear only on the user's teams
// (at least twice), public enemies only on opposing teams (at least twice),
// and double agents on both sides at once.
type MatchupGroups struct {
	FantasyHeroes []GroupedPlayer `json:"fantasyHeroes"`
	PublicEnemies []GroupedPlayer `json:"publicEnemies"`
	DoubleAgents  []GroupedPlayer `json:"doubleAgents"`
}
