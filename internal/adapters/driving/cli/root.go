// Package cli provides the folio command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

var (
	verbose    bool
	configPath string
)

// Services holds the driving ports the commands run against.
type Services struct {
	Content  driving.ContentService
	Settings driving.SettingsService
	Renderer DocumentRenderer
}

// DocumentRenderer writes a parsed document back to markdown with front matter.
type DocumentRenderer interface {
	Render(doc domain.ParsedDocument) ([]byte, error)
}

// Bootstrap builds the services from the config file at path.
// An empty path selects the default location.
type Bootstrap func(path string) (Services, error)

var (
	contentService  driving.ContentService
	settingsService driving.SettingsService
	renderer        DocumentRenderer
	bootstrap       Bootstrap
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Content backend for the portfolio site",
	Long: `folio resolves the site's blog posts, CTF write-ups and tool reviews from
their GitHub repositories and serves them over HTTP, MCP or the command line.

Documents are markdown files with an optional front-matter block. Slugs are
the file names without the .md extension.`,
	SilenceUsage: true,
}

func init() {
	// Assigned here; referencing initServices in the literal would be an initialization cycle.
	rootCmd.PersistentPreRunE = initServices
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.folio/config.toml)")
}

// SetServices injects the services directly, bypassing bootstrap.
func SetServices(s Services) {
	contentService = s.Content
	settingsService = s.Settings
	renderer = s.Renderer
}

// SetBootstrap registers the function that builds services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command.
func Execute(ctx context.Context, v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.ExecuteContext(ctx)
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if contentService != nil || bootstrap == nil || !needsServices(cmd) {
		return nil
	}

	s, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	SetServices(s)
	return nil
}

// needsServices reports whether cmd touches content or settings.
func needsServices(cmd *cobra.Command) bool {
	return cmd != versionCmd && cmd != rootCmd
}

func requireContent() error {
	if contentService == nil {
		return errors.New("content service not configured")
	}
	return nil
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}
