// Command folio serves the portfolio site's content from GitHub.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/folio/internal/adapters/driven/config/file"
	"github.com/custodia-labs/folio/internal/adapters/driving/cli"
	"github.com/custodia-labs/folio/internal/connectors/github"
	"github.com/custodia-labs/folio/internal/core/services"
	"github.com/custodia-labs/folio/internal/normalisers/markdown"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetBootstrap(func(path string) (cli.Services, error) {
		return bootstrap(ctx, path)
	})

	if err := cli.Execute(ctx, version); err != nil {
		stop()
		os.Exit(1)
	}
}

func bootstrap(ctx context.Context, path string) (cli.Services, error) {
	store, err := file.NewConfigStore(path)
	if err != nil {
		return cli.Services{}, err
	}
	settingsService := services.NewSettingsService(store)
	settings := settingsService.Get()

	client, err := github.NewClient(ctx, github.ConfigFromSettings(settings.GitHub))
	if err != nil {
		return cli.Services{}, fmt.Errorf("github client: %w", err)
	}

	parser := markdown.New()
	lister := services.NewLister(client)
	fetcher := services.NewFetcher(client, parser)
	assembler := services.NewAssembler(lister, fetcher, settings.Collection.MaxConcurrency)

	return cli.Services{
		Content:  services.NewContentService(lister, fetcher, assembler),
		Settings: settingsService,
		Renderer: parser,
	}, nil
}
