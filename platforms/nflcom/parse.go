package nflcom

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/alex-monroe/fantasy-pulse-sub000/model"
)

var (
	weekHeadingRegex = regexp.MustCompile(`(?i)week\s+(\d+)\s+matchup`)
	teamHrefRegex    = regexp.MustCompile(`/team/(\d+)/?$`)
)

// TeamPage is everything scraped off a single team page. Matchup is nil when
// the page carries no weekly matchup widget (offseason, bye week).
type TeamPage struct {
	TeamName   string
	LeagueName string
	Matchup    *PageMatchup
}

// PageMatchup is the weekly matchup widget from the subject team's point of
// view: TeamScore belongs to the subject, OpponentScore to the other side.
type PageMatchup struct {
	Week          int
	OpponentName  string
	TeamScore     float64
	OpponentScore float64
}

// StandingsTeam is one row of a league standings scrape.
type StandingsTeam struct {
	ID   string
	Name string
}

// parseTeamPage extracts the team name, league name, and (when present) the
// weekly matchup from team page markup.
func parseTeamPage(r io.Reader, leagueID string) (*TeamPage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing team page markup: %w", err)
	}

	page := &TeamPage{
		TeamName:   strings.TrimSpace(doc.Find(".team-name").First().Text()),
		LeagueName: findLeagueName(doc, leagueID),
	}
	if page.TeamName == "" {
		return nil, errors.New("team page has no team name")
	}

	page.Matchup = findMatchup(doc, page.TeamName)
	return page, nil
}

// findLeagueName prefers the anchor pointing exactly at the league home page
// over the bare fallback selector, because the fallback also matches
// navigation chrome on some page variants.
func findLeagueName(doc *goquery.Document, leagueID string) string {
	leagueHref := fmt.Sprintf("/football/%s/", leagueID)

	var name string
	doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if href == leagueHref || href == strings.TrimSuffix(leagueHref, "/") {
			name = strings.TrimSpace(a.Text())
			return name == "" // keep looking if the anchor is empty
		}
		return true
	})
	if name != "" {
		return name
	}

	return strings.TrimSpace(doc.Find(".league-name").First().Text())
}

// findMatchup locates a "Week N Matchup" heading and reads the game link in
// the same section. Markup order is always home team then away team; if the
// away side's name equals the subject's name (case-insensitively) the subject
// is the away team and the scores flip.
func findMatchup(doc *goquery.Document, subjectName string) *PageMatchup {
	var matchup *PageMatchup

	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		m := weekHeadingRegex.FindStringSubmatch(h.Text())
		if m == nil {
			return true
		}
		week, err := strconv.Atoi(m[1])
		if err != nil {
			return true
		}

		game := h.Parent().Find(".game-link").First()
		if game.Length() == 0 {
			return true
		}

		sides := game.Find(".team")
		if sides.Length() != 2 {
			return true
		}

		homeName, homeScore := teamNameAndScore(sides.Eq(0))
		awayName, awayScore := teamNameAndScore(sides.Eq(1))

		matchup = &PageMatchup{Week: week}
		if strings.EqualFold(awayName, subjectName) {
			matchup.OpponentName = homeName
			matchup.TeamScore = awayScore
			matchup.OpponentScore = homeScore
		} else {
			matchup.OpponentName = awayName
			matchup.TeamScore = homeScore
			matchup.OpponentScore = awayScore
		}
		return false
	})

	return matchup
}

// teamNameAndScore pulls a side's name and score out of one matchup element.
// The score lives inside the same element as the name, so the score text is
// stripped out of the combined text before trimming.
func teamNameAndScore(side *goquery.Selection) (string, float64) {
	nameEl := side.Find(".team-name").First()
	scoreEl := side.Find(".score").First()

	scoreText := strings.TrimSpace(scoreEl.Text())
	name := strings.TrimSpace(strings.Replace(nameEl.Text(), scoreText, "", 1))

	score, err := strconv.ParseFloat(scoreText, 64)
	if err != nil {
		score = 0
	}
	return name, score
}

// parseStandings extracts all team name/id pairs from a league standings
// page. It prefers a section labeled "standings"; when no such section
// exists it falls back to scanning any table whose header row has a "Team"
// column. Entries are deduplicated by normalized name.
func parseStandings(r io.Reader) ([]StandingsTeam, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing standings markup: %w", err)
	}

	scope := standingsScope(doc)
	if scope == nil {
		return nil, errors.New("no standings section or team table found")
	}

	seen := make(map[string]bool)
	teams := make([]StandingsTeam, 0, 12)
	scope.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		m := teamHrefRegex.FindStringSubmatch(href)
		if m == nil {
			return
		}

		name := strings.TrimSpace(a.Text())
		if name == "" {
			return
		}
		key := model.NormalizeName(name)
		if seen[key] {
			return
		}
		seen[key] = true

		teams = append(teams, StandingsTeam{ID: m[1], Name: name})
	})

	if len(teams) == 0 {
		return nil, errors.New("standings has no teams")
	}
	return teams, nil
}

// standingsScope finds the part of the document to scan for team links: the
// section under a heading containing "standings", or the first table with a
// "Team" header column.
func standingsScope(doc *goquery.Document) *goquery.Selection {
	var scope *goquery.Selection

	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(h.Text()), "standings") {
			scope = h.Parent()
			return false
		}
		return true
	})
	if scope != nil {
		return scope
	}

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := false
		table.Find("th").Each(func(_ int, th *goquery.Selection) {
			if strings.EqualFold(strings.TrimSpace(th.Text()), "team") {
				header = true
			}
		})
		if header {
			scope = table
			return false
		}
		return true
	})
	return scope
}
