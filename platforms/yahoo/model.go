package yahoo

import (
	"encoding/json"
	"errors"
)

// Team is one of the authenticated user's fantasy teams.
type Team struct {
	Key     string
	Name    string
	LogoURL string
}

// MatchupTeam is one side of a weekly matchup.
type MatchupTeam struct {
	Key    string
	Name   string
	Points float64
}

// Matchup is the week's pairing from the point of view of the subject team.
type Matchup struct {
	Self     MatchupTeam
	Opponent MatchupTeam
}

// RosterPlayer is a player as yahoo reports them on a roster. Bench is true
// when the selected position for the week is "BN" (or the IR slot).
type RosterPlayer struct {
	Key      string
	Name     string
	Position string
	Team     string
	Headshot string
	Bench    bool
}

var errMissingKey = errors.New("entity has no key")

// parseTeam collects a tagged team entity into a Team.
func parseTeam(raw json.RawMessage) (Team, error) {
	fields := flattenFields(raw)
	t := Team{
		Key:  fieldString(fields, "team_key"),
		Name: fieldString(fields, "name"),
	}
	if t.Key == "" {
		return Team{}, errMissingKey
	}

	// team_logos is an array of {"team_logo": {"url": ...}} wrappers.
	for _, logo := range fieldArray(fields, "team_logos") {
		inner := flattenFields(logo)
		obj := fieldObject(inner, "team_logo")
		if url := fieldString(obj, "url"); url != "" {
			t.LogoURL = url
			break
		}
	}
	return t, nil
}

// parseMatchupTeam collects a tagged team entity plus its point total.
func parseMatchupTeam(raw json.RawMessage) (MatchupTeam, error) {
	fields := flattenFields(raw)
	t := MatchupTeam{
		Key:  fieldString(fields, "team_key"),
		Name: fieldString(fields, "name"),
	}
	if t.Key == "" {
		return MatchupTeam{}, errMissingKey
	}
	if points := fieldObject(fields, "team_points"); points != nil {
		t.Points = flexFloat(points["total"])
	}
	return t, nil
}

// parsePlayer collects a tagged player entity into a RosterPlayer.
func parsePlayer(raw json.RawMessage) (RosterPlayer, error) {
	fields := flattenFields(raw)
	p := RosterPlayer{
		Key:      fieldString(fields, "player_key"),
		Position: fieldString(fields, "display_position"),
		Team:     fieldString(fields, "editorial_team_abbr"),
	}
	if p.Key == "" {
		return RosterPlayer{}, errMissingKey
	}

	if name := fieldObject(fields, "name"); name != nil {
		var full string
		if raw, found := name["full"]; found {
			_ = json.Unmarshal(raw, &full)
		}
		p.Name = full
	}
	if headshot := fieldObject(fields, "headshot"); headshot != nil {
		var url string
		if raw, found := headshot["url"]; found {
			_ = json.Unmarshal(raw, &url)
		}
		p.Headshot = url
	}

	sel := flattenFields(fields["selected_position"])
	switch fieldString(sel, "position") {
	case "BN", "IR":
		p.Bench = true
	}
	return p, nil
}
