package model

import (
	"fmt"
	"time"
)

// Provider identifies one of the supported fantasy platforms. The set is
// closed: adding a platform means adding a constant here and a provider
// implementation in the controller registry.
type Provider string

const (
	ProviderSleeper Provider = "sleeper"
	ProviderYahoo   Provider = "yahoo"
	ProviderNFL     Provider = "nfl"
)

func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderSleeper, ProviderYahoo, ProviderNFL:
		return Provider(s), nil
	default:
		return "", fmt.Errorf("'%s' is not a supported provider", s)
	}
}

// Integration links a dashboard user to one account on an external provider.
// Only Yahoo integrations carry OAuth tokens; the other providers leave the
// token fields empty.
type Integration struct {
	ID             string
	UserID         string
	Provider       Provider
	ExternalUserID string
	AccessToken    string
	RefreshToken   string
	TokenExpiry    time.Time
	Created        time.Time
}

// League is a fantasy league discovered through an integration. Leagues are
// upserted during sync and removed when their integration is disconnected.
type League struct {
	ID            int32
	IntegrationID string
	ExternalID    string
	Name          string
	Season        string
	RosterCount   int
	Status        string
}
