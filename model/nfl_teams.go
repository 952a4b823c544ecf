package model

import (
	"fmt"
	"strings"
)

// NFLTeam is a real-world NFL franchise. Providers report teams under a mix
// of abbreviations and display names, so lookup goes through a single map of
// lowercased aliases. Unknown values parse to TEAM_FA (free agent).
type NFLTeam struct {
	abbr    string
	loc     string
	mascot  string
	aliases []string // alternate abbreviations, e.g. SF for SFO
}

func (t *NFLTeam) String() string {
	return t.abbr
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.abbr
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

func (t *NFLTeam) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.abbr)), nil
}

func (t *NFLTeam) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	*t = *ParseTeam(s)
	return nil
}

var (
	TEAM_FA = &NFLTeam{abbr: "FA", aliases: []string{"FA*"}}

	// NFC
	TEAM_ARI = &NFLTeam{abbr: "ARI", loc: "Arizona", mascot: "Cardinals"}
	TEAM_ATL = &NFLTeam{abbr: "ATL", loc: "Atlanta", mascot: "Falcons"}
	TEAM_CAR = &NFLTeam{abbr: "CAR", loc: "Carolina", mascot: "Panthers"}
	TEAM_CHI = &NFLTeam{abbr: "CHI", loc: "Chicago", mascot: "Bears"}
	TEAM_DAL = &NFLTeam{abbr: "DAL", loc: "Dallas", mascot: "Cowboys"}
	TEAM_DET = &NFLTeam{abbr: "DET", loc: "Detroit", mascot: "Lions"}
	TEAM_GBP = &NFLTeam{abbr: "GBP", loc: "Green Bay", mascot: "Packers", aliases: []string{"GB"}}
	TEAM_LAR = &NFLTeam{abbr: "LAR", loc: "Los Angeles", mascot: "Rams"}
	TEAM_MIN = &NFLTeam{abbr: "MIN", loc: "Minnesota", mascot: "Vikings"}
	TEAM_NOS = &NFLTeam{abbr: "NOS", loc: "New Orleans", mascot: "Saints", aliases: []string{"NO"}}
	TEAM_NYG = &NFLTeam{abbr: "NYG", loc: "New York", mascot: "Giants"}
	TEAM_PHI = &NFLTeam{abbr: "PHI", loc: "Philadelphia", mascot: "Eagles"}
	TEAM_SFO = &NFLTeam{abbr: "SFO", loc: "San Francisco", mascot: "49ers", aliases: []string{"SF"}}
	TEAM_SEA = &NFLTeam{abbr: "SEA", loc: "Seattle", mascot: "Seahawks"}
	TEAM_TBB = &NFLTeam{abbr: "TBB", loc: "Tampa Bay", mascot: "Buccaneers", aliases: []string{"TB"}}
	TEAM_WAS = &NFLTeam{abbr: "WAS", loc: "Washington", mascot: "Commanders"}

	// AFC
	TEAM_BAL = &NFLTeam{abbr: "BAL", loc: "Baltimore", mascot: "Ravens"}
	TEAM_BUF = &NFLTeam{abbr: "BUF", loc: "Buffalo", mascot: "Bills"}
	TEAM_CIN = &NFLTeam{abbr: "CIN", loc: "Cincinnati", mascot: "Bengals"}
	TEAM_CLE = &NFLTeam{abbr: "CLE", loc: "Cleveland", mascot: "Browns"}
	TEAM_DEN = &NFLTeam{abbr: "DEN", loc: "Denver", mascot: "Broncos"}
	TEAM_HOU = &NFLTeam{abbr: "HOU", loc: "Houston", mascot: "Texans"}
	TEAM_IND = &NFLTeam{abbr: "IND", loc: "Indianapolis", mascot: "Colts"}
	TEAM_JAC = &NFLTeam{abbr: "JAC", loc: "Jacksonville", mascot: "Jaguars", aliases: []string{"JAX"}}
	TEAM_KCC = &NFLTeam{abbr: "KCC", loc: "Kansas City", mascot: "Chiefs", aliases: []string{"KC"}}
	TEAM_LVR = &NFLTeam{abbr: "LVR", loc: "Las Vegas", mascot: "Raiders", aliases: []string{"LV"}}
	TEAM_LAC = &NFLTeam{abbr: "LAC", loc: "Los Angeles", mascot: "Chargers"}
	TEAM_MIA = &NFLTeam{abbr: "MIA", loc: "Miami", mascot: "Dolphins"}
	TEAM_NEP = &NFLTeam{abbr: "NEP", loc: "New England", mascot: "Patriots", aliases: []string{"NE"}}
	TEAM_NYJ = &NFLTeam{abbr: "NYJ", loc: "New York", mascot: "Jets"}
	TEAM_PIT = &NFLTeam{abbr: "PIT", loc: "Pittsburgh", mascot: "Steelers"}
	TEAM_TEN = &NFLTeam{abbr: "TEN", loc: "Tennessee", mascot: "Titans"}

	teamMap = buildTeamMap()
)

func ParseTeam(name string) *NFLTeam {
	t := teamMap[strings.ToLower(strings.TrimSpace(name))]
	if t == nil {
		return TEAM_FA
	}
	return t
}

func buildTeamMap() map[string]*NFLTeam {
	teams := []*NFLTeam{
		// NFC
		TEAM_ARI, TEAM_ATL, TEAM_CAR, TEAM_CHI, TEAM_DAL, TEAM_DET, TEAM_GBP, TEAM_LAR,
		TEAM_MIN, TEAM_NOS, TEAM_NYG, TEAM_PHI, TEAM_SFO, TEAM_SEA, TEAM_TBB, TEAM_WAS,
		// AFC
		TEAM_BAL, TEAM_BUF, TEAM_CIN, TEAM_CLE, TEAM_DEN, TEAM_HOU, TEAM_IND, TEAM_JAC,
		TEAM_KCC, TEAM_LVR, TEAM_LAC, TEAM_MIA, TEAM_NEP, TEAM_NYJ, TEAM_PIT, TEAM_TEN,
		// Other
		TEAM_FA,
	}

	m := make(map[string]*NFLTeam)
	for _, t := range teams {
		m[strings.ToLower(t.abbr)] = t

		if t.mascot != "" {
			m[strings.ToLower(t.mascot)] = t
			m[strings.ToLower(t.Friendly())] = t
		}

		for _, a := range t.aliases {
			m[strings.ToLower(a)] = t
		}
	}
	return m
}
