package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/adapters/driving/web"
	"github.com/custodia-labs/folio/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the content API server",
	Long: `Start the HTTP content API.

Routes:
  GET /health
  GET /content/{type}/slugs
  GET /content/{type}/{slug}
  GET /content/{type}?q=&tag=&difficulty=&category=

The listen address defaults to server.addr from the config file (":8080").`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := requireContent(); err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" && settingsService != nil {
		addr = settingsService.Get().Server.Addr
	}

	logger.SetTimestamps(true)
	defer logger.SetTimestamps(false)

	server := web.NewServer(addr, contentService)
	return server.Run(cmd.Context())
}
