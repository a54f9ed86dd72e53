package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change folio settings stored in ~/.folio/config.toml.

GITHUB_TOKEN, when set, overrides github.token.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save it to the config file.

Keys:
  server.addr                  listen address of "folio serve"
  github.token                 access token (raises the API rate limit)
  github.api_url               REST API base URL
  github.raw_url               raw content base URL
  github.timeout_seconds       per-request timeout
  github.requests_per_second   API request rate
  collection.max_concurrency   in-flight fetches per collection (0 = unbounded)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireSettings(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), settingsService.Path())
		return err
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings := settingsService.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Server]")
	fmt.Fprintf(out, "  Address: %s\n", settings.Server.Addr)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[GitHub]")
	if settings.GitHub.Token != "" {
		fmt.Fprintf(out, "  Token: %s\n", maskToken(settings.GitHub.Token))
	} else {
		fmt.Fprintln(out, "  Token: (not set, unauthenticated rate limit applies)")
	}
	fmt.Fprintf(out, "  API URL: %s\n", settings.GitHub.APIURL)
	fmt.Fprintf(out, "  Raw URL: %s\n", settings.GitHub.RawURL)
	fmt.Fprintf(out, "  Timeout: %s\n", settings.GitHub.Timeout)
	fmt.Fprintf(out, "  Requests/second: %g\n", settings.GitHub.RequestsPerSecond)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Collection]")
	if settings.Collection.MaxConcurrency > 0 {
		fmt.Fprintf(out, "  Max concurrency: %d\n", settings.Collection.MaxConcurrency)
	} else {
		fmt.Fprintln(out, "  Max concurrency: unbounded")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Content]")
	for _, ct := range domain.AllContentTypes() {
		repo, _ := domain.RepositoryFor(ct)
		fmt.Fprintf(out, "  %s: %s\n", ct, repo)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
