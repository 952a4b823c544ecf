package nflcom

import (
	"fmt"
	"net/url"
	"regexp"
)

const nflHost = "fantasy.nfl.com"

var (
	leaguePathRegex = regexp.MustCompile(`^/football/(?P<league>\d+)/?$`)
	teamPathRegex   = regexp.MustCompile(`^/football/(?P<league>\d+)/team/(?P<team>\d+)/?$`)
)

// InvalidURLError reports a URL that is not an NFL.com fantasy league or team
// page. Validation happens before any network call.
type InvalidURLError struct {
	URL    string
	Reason string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid nfl.com url '%s': %s", e.URL, e.Reason)
}

// ParseLeagueURL extracts the league id from a league page URL, e.g.
// https://fantasy.nfl.com/football/12345/.
func ParseLeagueURL(raw string) (string, error) {
	u, err := parseHost(raw)
	if err != nil {
		return "", err
	}

	m := leaguePathRegex.FindStringSubmatch(u.Path)
	if m == nil {
		return "", &InvalidURLError{URL: raw, Reason: "not a league page path"}
	}
	return m[leaguePathRegex.SubexpIndex("league")], nil
}

// ParseTeamURL extracts the league and team ids from a team page URL, e.g.
// https://fantasy.nfl.com/football/12345/team/7.
func ParseTeamURL(raw string) (leagueID, teamID string, err error) {
	u, err := parseHost(raw)
	if err != nil {
		return "", "", err
	}

	m := teamPathRegex.FindStringSubmatch(u.Path)
	if m == nil {
		return "", "", &InvalidURLError{URL: raw, Reason: "not a team page path"}
	}
	return m[teamPathRegex.SubexpIndex("league")], m[teamPathRegex.SubexpIndex("team")], nil
}

func parseHost(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &InvalidURLError{URL: raw, Reason: "not a parseable url"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &InvalidURLError{URL: raw, Reason: "not an http(s) url"}
	}
	if u.Hostname() != nflHost && u.Hostname() != "www."+nflHost {
		return nil, &InvalidURLError{URL: raw, Reason: "not an nfl.com fantasy host"}
	}
	return u, nil
}
