package domain

import "time"

// Settings holds the runtime configuration of folio.
type Settings struct {
	Server     ServerSettings
	GitHub     GitHubSettings
	Collection CollectionSettings
}

// ServerSettings configures the HTTP content API.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string
}

// GitHubSettings configures access to the remote content repositories.
type GitHubSettings struct {
	// Token is an optional access token. Empty means unauthenticated access.
	Token string

	// APIURL is the REST API base URL.
	APIURL string

	// RawURL is the raw file content base URL.
	RawURL string

	// Timeout bounds every outbound request.
	Timeout time.Duration

	// RequestsPerSecond throttles REST API calls.
	RequestsPerSecond float64
}

// CollectionSettings configures collection assembly.
type CollectionSettings struct {
	// MaxConcurrency bounds in-flight document fetches. 0 means unbounded.
	MaxConcurrency int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{
			Addr: ":8080",
		},
		GitHub: GitHubSettings{
			APIURL:            "https://api.github.com/",
			RawURL:            "https://raw.githubusercontent.com/",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 2,
		},
		Collection: CollectionSettings{
			MaxConcurrency: 0,
		},
	}
}
