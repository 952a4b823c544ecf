package nflcom

import (
	"strings"
	"testing"
)

const subjectHomePage = `
<html><body>
  <a href="/football/99/">Quiet League</a>
  <h1 class="team-name">Home Heroes</h1>
  <section>
    <h3>Week 2 Matchup</h3>
    <a class="game-link" href="#">
      <div class="team"><span class="team-name">Home Heroes<em class="score">54.2</em></span></div>
      <div class="team"><span class="team-name">Road Warriors<em class="score">61.9</em></span></div>
    </a>
  </section>
</body></html>`

const noMatchupPage = `
<html><body>
  <h1 class="team-name">Quiet Team</h1>
  <span class="league-name">Fallback League</span>
</body></html>`

func TestParseTeamPage_subjectAway(t *testing.T) {
	// Markup order is home-then-away; the subject is listed as the away side
	// so the scores flip.
	page := `
<html><body>
  <a href='/football/12345/'>Main Street League</a>
  <h1 class='team-name'>The Witchcraft</h1>
  <section>
    <h2>Week 4 Matchup</h2>
    <a class="game-link" href="#">
      <div class="team"><span class="team-name">Bench Warmers<em class="score">88.1</em></span></div>
      <div class="team"><span class="team-name">the witchcraft<em class="score">101.2</em></span></div>
    </a>
  </section>
</body></html>`

	p, err := parseTeamPage(strings.NewReader(page), "12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.TeamName != "The Witchcraft" {
		t.Errorf("expected team name 'The Witchcraft', got '%s'", p.TeamName)
	}
	if p.LeagueName != "Main Street League" {
		t.Errorf("expected league name 'Main Street League', got '%s'", p.LeagueName)
	}
	if p.Matchup == nil {
		t.Fatal("expected a matchup")
	}
	if p.Matchup.Week != 4 {
		t.Errorf("expected week 4, got %d", p.Matchup.Week)
	}
	if p.Matchup.OpponentName != "Bench Warmers" {
		t.Errorf("expected opponent 'Bench Warmers', got '%s'", p.Matchup.OpponentName)
	}
	if p.Matchup.TeamScore != 101.2 {
		t.Errorf("expected team score 101.2, got %f", p.Matchup.TeamScore)
	}
	if p.Matchup.OpponentScore != 88.1 {
		t.Errorf("expected opponent score 88.1, got %f", p.Matchup.OpponentScore)
	}
}

func TestParseTeamPage_subjectHome(t *testing.T) {
	p, err := parseTeamPage(strings.NewReader(subjectHomePage), "99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.LeagueName != "Quiet League" {
		t.Errorf("expected league name 'Quiet League', got '%s'", p.LeagueName)
	}
	if p.Matchup == nil {
		t.Fatal("expected a matchup")
	}
	if p.Matchup.OpponentName != "Road Warriors" {
		t.Errorf("expected opponent 'Road Warriors', got '%s'", p.Matchup.OpponentName)
	}
	if p.Matchup.TeamScore != 54.2 {
		t.Errorf("expected team score 54.2, got %f", p.Matchup.TeamScore)
	}
	if p.Matchup.OpponentScore != 61.9 {
		t.Errorf("expected opponent score 61.9, got %f", p.Matchup.OpponentScore)
	}
}

func TestParseTeamPage_noMatchup(t *testing.T) {
	p, err := parseTeamPage(strings.NewReader(noMatchupPage), "12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.TeamName != "Quiet Team" {
		t.Errorf("expected team name 'Quiet Team', got '%s'", p.TeamName)
	}
	// No league anchor on the page, so the fallback selector is used.
	if p.LeagueName != "Fallback League" {
		t.Errorf("expected league name 'Fallback League', got '%s'", p.LeagueName)
	}
	if p.Matchup != nil {
		t.Errorf("expected no matchup, got %+v", p.Matchup)
	}
}

func TestParseTeamPage_badScore(t *testing.T) {
	page := `
<html><body>
  <h1 class="team-name">The Witchcraft</h1>
  <section>
    <h2>Week 4 Matchup</h2>
    <a class="game-link" href="#">
      <div class="team"><span class="team-name">Bench Warmers<em class="score">--</em></span></div>
      <div class="team"><span class="team-name">The Witchcraft<em class="score">101.2</em></span></div>
    </a>
  </section>
</body></html>`

	p, err := parseTeamPage(strings.NewReader(page), "12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Matchup == nil {
		t.Fatal("expected a matchup")
	}
	if p.Matchup.OpponentScore != 0 {
		t.Errorf("unparseable score should default to 0, got %f", p.Matchup.OpponentScore)
	}
	if p.Matchup.OpponentName != "Bench Warmers" {
		t.Errorf("expected opponent 'Bench Warmers', got '%s'", p.Matchup.OpponentName)
	}
}

func TestParseStandings(t *testing.T) {
	page := `
<html><body>
  <section>
    <h2>League Standings</h2>
    <a href="/football/12345/team/7">The Witchcraft</a>
    <a href="/football/12345/team/2">Bench Warmers</a>
    <a href="/football/12345/team/7">the witchcraft </a>
    <a href="/football/12345/settings">Settings</a>
  </section>
</body></html>`

	teams, err := parseStandings(strings.NewReader(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The two casings of "The Witchcraft" dedupe to a single entry and the
	// settings link is not a team.
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d: %v", len(teams), teams)
	}
	if teams[0].ID != "7" || teams[0].Name != "The Witchcraft" {
		t.Errorf("unexpected first team: %+v", teams[0])
	}
	if teams[1].ID != "2" || teams[1].Name != "Bench Warmers" {
		t.Errorf("unexpected second team: %+v", teams[1])
	}
}

func TestParseStandings_tableFallback(t *testing.T) {
	page := `
<html><body>
  <h2>Some Other Section</h2>
  <table>
    <tr><th>Rank</th><th>Team</th></tr>
    <tr><td>1</td><td><a href="/football/12345/team/7">The Witchcraft</a></td></tr>
    <tr><td>2</td><td><a href="/football/12345/team/2">Bench Warmers</a></td></tr>
  </table>
</body></html>`

	teams, err := parseStandings(strings.NewReader(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
}

func TestParseStandings_noStandings(t *testing.T) {
	page := `<html><body><h2>Nothing Here</h2></body></html>`

	if _, err := parseStandings(strings.NewReader(page)); err == nil {
		t.Fatal("expected an error when no standings exist")
	}
}
