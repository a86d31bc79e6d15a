// Command scoop exports recent Granola meetings as markdown files.
package main

import (
	"context"
	"os"
	"os/signal"

	cachefile "github.com/custodia-labs/granola-scoop/internal/adapters/driven/cache/file"
	configfile "github.com/custodia-labs/granola-scoop/internal/adapters/driven/config/file"
	notesfile "github.com/custodia-labs/granola-scoop/internal/adapters/driven/notes/file"
	"github.com/custodia-labs/granola-scoop/internal/adapters/driving/cli"
	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driving"
	"github.com/custodia-labs/granola-scoop/internal/core/services"
	"github.com/custodia-labs/granola-scoop/internal/normalisers/granola"
	"github.com/custodia-labs/granola-scoop/internal/renderers/markdown"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)

	cli.SetConfigOpener(func(dir string) (driven.ConfigStore, error) {
		return configfile.NewConfigStore(dir)
	})

	cli.SetServiceBuilder(func(settings domain.Settings) (driving.ExportService, error) {
		return services.NewExportService(
			cachefile.NewCacheReader(settings.CachePath),
			notesfile.NewNoteWriter(settings.OutputDir),
			granola.New(),
			markdown.New(),
		), nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
