package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/oauth2"
)

// refreshSkew is how close to expiry a token may get before it is refreshed.
// Refreshing slightly early keeps a token from expiring mid-pipeline.
const refreshSkew = 60 * time.Second

// oauthState tracks one in-flight OAuth authorization. States are short
// lived, they only need to survive the redirect round trip.
type oauthState struct {
	expiry time.Time
	token  *oauth2.Token
}

func (c *controller) OAuthStart() (string, error) {
	if c.yahooConfig == nil {
		return "", errors.New("yahoo oauth client is not configured")
	}

	state := generateRandomState()
	url := c.yahooConfig.AuthCodeURL(state)

	c.mu.Lock()
	c.oauthStates[state] = &oauthState{
		expiry: c.clock.Now().Add(5 * time.Minute),
	}
	c.mu.Unlock()

	return url, nil
}

func (c *controller) OAuthExchange(ctx context.Context, state, code string) error {
	s, err := c.getOAuthState(state)
	if err != nil {
		return err
	}

	if c.yahooConfig == nil {
		return errors.New("yahoo oauth client is not configured")
	}

	token, err := c.yahooConfig.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("error exchanging code: %w", err)
	}

	s.token = token
	return nil
}

// oauthToken returns the token captured by a completed exchange for the
// given state.
func (c *controller) oauthToken(state string) (*oauth2.Token, error) {
	s, err := c.getOAuthState(state)
	if err != nil {
		return nil, err
	}
	if s.token == nil {
		return nil, errors.New("oauth exchange has not completed")
	}
	return s.token, nil
}

func (c *controller) getOAuthState(state string) (*oauthState, error) {
	c.mu.Lock()
	s, ok := c.oauthStates[state]
	c.mu.Unlock()

	if !ok || c.clock.Now().After(s.expiry) {
		return nil, errors.New("state parameter is not valid")
	}
	return s, nil
}

// GetToken loads an integration's saved token, refreshing and persisting it
// first when it is within refreshSkew of expiring.
func (c *controller) GetToken(ctx context.Context, integrationID string) (*oauth2.Token, error) {
	t, err := c.db.GetToken(ctx, integrationID)
	if err != nil {
		return nil, err
	}

	// We must manually refresh the token in order to be able to save it
	// back. If we just use yahooConfig.Client(ctx, t) then it will refresh
	// the token in the background, but never give us access to it.
	if t.Expiry.Before(c.clock.Now().Add(refreshSkew)) {
		log.Printf("refreshing token for integration: %s", integrationID)
		tknSrc := c.yahooConfig.TokenSource(ctx, t)

		t, err = tknSrc.Token()
		if err != nil {
			return nil, fmt.Errorf("error refreshing token for integration %s: %w", integrationID, err)
		}

		if err := c.db.SaveToken(ctx, integrationID, t); err != nil {
			return nil, fmt.Errorf("error saving refreshed token for integration %s: %w", integrationID, err)
		}
	}

	return t, nil
}

func generateRandomState() string {
	var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	b := make([]rune, 15)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
