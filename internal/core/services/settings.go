package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyServerAddr     = "server.addr"
	keyGitHubToken    = "github.token"
	keyGitHubAPIURL   = "github.api_url"
	keyGitHubRawURL   = "github.raw_url"
	keyGitHubTimeout  = "github.timeout_seconds"
	keyGitHubRPS      = "github.requests_per_second"
	keyMaxConcurrency = "collection.max_concurrency"
	envGitHubToken    = "GITHUB_TOKEN"
)

// settingKind is the value type stored under a key.
type settingKind int

const (
	kindString settingKind = iota
	kindURL
	kindPositiveInt
	kindNonNegativeInt
	kindPositiveFloat
)

// settingKeys lists every settable key in display order.
var settingKeys = []struct {
	key  string
	kind settingKind
}{
	{keyServerAddr, kindString},
	{keyGitHubToken, kindString},
	{keyGitHubAPIURL, kindURL},
	{keyGitHubRawURL, kindURL},
	{keyGitHubTimeout, kindPositiveInt},
	{keyGitHubRPS, kindPositiveFloat},
	{keyMaxConcurrency, kindNonNegativeInt},
}

// SettingsService reads application settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get returns the current settings with defaults for anything unset.
// GITHUB_TOKEN, when set, takes precedence over the stored token.
func (s *SettingsService) Get() domain.Settings {
	defaults := domain.DefaultSettings()

	token := s.configStore.GetString(keyGitHubToken)
	if env := s.getenv(envGitHubToken); env != "" {
		token = env
	}

	return domain.Settings{
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
		GitHub: domain.GitHubSettings{
			Token:             token,
			APIURL:            s.getString(keyGitHubAPIURL, defaults.GitHub.APIURL),
			RawURL:            s.getString(keyGitHubRawURL, defaults.GitHub.RawURL),
			Timeout:           s.getSeconds(keyGitHubTimeout, defaults.GitHub.Timeout),
			RequestsPerSecond: s.getFloat(keyGitHubRPS, defaults.GitHub.RequestsPerSecond),
		},
		Collection: domain.CollectionSettings{
			MaxConcurrency: s.getInt(keyMaxConcurrency, defaults.Collection.MaxConcurrency),
		},
	}
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	for _, k := range settingKeys {
		if k.key != key {
			continue
		}
		parsed, err := parseSetting(k.kind, value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
		}
		if err := s.configStore.Set(key, parsed); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
		return nil
	}

	return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	secs := s.configStore.GetInt(key)
	if secs <= 0 {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func parseSetting(kind settingKind, value string) (any, error) {
	switch kind {
	case kindURL:
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return nil, fmt.Errorf("%q is not an http(s) URL", value)
		}
		if !strings.HasSuffix(value, "/") {
			value += "/"
		}
		return value, nil
	case kindPositiveInt, kindNonNegativeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", value)
		}
		if n < 0 || (n == 0 && kind == kindPositiveInt) {
			return nil, fmt.Errorf("%d is out of range", n)
		}
		return n, nil
	case kindPositiveFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", value)
		}
		if f <= 0 {
			return nil, fmt.Errorf("%v is out of range", f)
		}
		return f, nil
	default:
		return value, nil
	}
}
