package model

import (
	"encoding/json"
	"testing"
)

func TestParseTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected *NFLTeam
	}{
		{input: "FA", expected: TEAM_FA},
		{input: "FA*", expected: TEAM_FA},

		// NFC
		{input: "ARI", expected: TEAM_ARI},
		{input: "CAR", expected: TEAM_CAR},
		{input: "DAL", expected: TEAM_DAL},
		{input: "GBP", expected: TEAM_GBP},
		{input: "MIN", expected: TEAM_MIN},
		{input: "PHI", expected: TEAM_PHI},
		{input: "SEA", expected: TEAM_SEA},
		{input: "WAS", expected: TEAM_WAS},

		// AFC
		{input: "BAL", expected: TEAM_BAL},
		{input: "CIN", expected: TEAM_CIN},
		{input: "HOU", expected: TEAM_HOU},
		{input: "JAC", expected: TEAM_JAC},
		{input: "KCC", expected: TEAM_KCC},
		{input: "MIA", expected: TEAM_MIA},
		{input: "NYJ", expected: TEAM_NYJ},
		{input: "TEN", expected: TEAM_TEN},

		// Alternate abbreviations
		{input: "gb", expected: TEAM_GBP},
		{input: "jax", expected: TEAM_JAC},
		{input: "kc", expected: TEAM_KCC},
		{input: "lv", expected: TEAM_LVR},
		{input: "ne", expected: TEAM_NEP},
		{input: "no", expected: TEAM_NOS},
		{input: "sf", expected: TEAM_SFO},
		{input: "tb", expected: TEAM_TBB},

		// Mascots and full names
		{input: "Seahawks", expected: TEAM_SEA},
		{input: "Saints", expected: TEAM_NOS},
		{input: "49ers", expected: TEAM_SFO},
		{input: "Kansas City Chiefs", expected: TEAM_KCC},
		{input: "green bay packers", expected: TEAM_GBP},

		// Whitespace
		{input: " SEA ", expected: TEAM_SEA},

		// Unknown
		{input: "", expected: TEAM_FA},
		{input: "Puyallup", expected: TEAM_FA},
	}

	for _, tc := range tests {
		a := ParseTeam(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestFriendly(t *testing.T) {
	tests := []struct {
		t    *NFLTeam
		want string
	}{
		{t: TEAM_SEA, want: "Seattle Seahawks"},
		{t: TEAM_FA, want: "FA"},
	}

	for _, tc := range tests {
		got := tc.t.Friendly()
		if tc.want != got {
			t.Errorf("expected: '%s', got: '%s'", tc.want, got)
		}
	}
}

func TestNFLTeamJSON(t *testing.T) {
	b, err := json.Marshal(TEAM_KCC)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"KCC"` {
		t.Errorf("expected: '\"KCC\"', got: '%s'", b)
	}

	var parsed NFLTeam
	if err := json.Unmarshal([]byte(`"KC"`), &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if parsed.String() != "KCC" {
		t.Errorf("expected: 'KCC', got: '%s'", parsed.String())
	}
}
