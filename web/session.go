package web

import "net/http"

// Sessions resolves the current user for a request. Authentication itself is
// handled by an external identity service; the dashboard only consumes its
// result. An empty user id means nobody is logged in.
type Sessions interface {
	CurrentUser(r *http.Request) string
}

// CookieSessions reads the user id that the identity service places in a
// cookie after login.
type CookieSessions struct {
	CookieName string
}

func (s *CookieSessions) CurrentUser(r *http.Request) string {
	c, err := r.Cookie(s.CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
