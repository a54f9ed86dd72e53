package github

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/folio/internal/core/domain"
)

const (
	// DefaultAPIURL is the public REST API base.
	DefaultAPIURL = "https://api.github.com/"

	// DefaultRawURL is the public raw content base.
	DefaultRawURL = "https://raw.githubusercontent.com/"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second
)

// Config holds the settings of a Client.
type Config struct {
	// Token is an optional access token.
	Token string

	// APIURL is the REST API base URL.
	APIURL string

	// RawURL is the raw content base URL.
	RawURL string

	// Timeout bounds every request.
	Timeout time.Duration

	// RequestsPerSecond throttles REST API calls. Non-positive disables throttling.
	RequestsPerSecond float64
}

// ConfigFromSettings maps application settings onto a client Config,
// filling blanks with the public GitHub defaults.
func ConfigFromSettings(s domain.GitHubSettings) Config {
	cfg := Config{
		Token:             s.Token,
		APIURL:            s.APIURL,
		RawURL:            s.RawURL,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.RawURL == "" {
		cfg.RawURL = DefaultRawURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

// Quota returns the hourly REST quota expected for this configuration.
func (c Config) Quota() int {
	if c.Token != "" {
		return AuthenticatedRateLimit
	}
	return UnauthenticatedRateLimit
}

// parseBaseURL parses a base URL and guarantees a trailing slash,
// which go-github requires and raw URL joining relies on.
func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	return u, nil
}
