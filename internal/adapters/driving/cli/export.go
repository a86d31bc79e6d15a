package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driving"
	"github.com/custodia-labs/granola-scoop/internal/logger"
)

func runExport(cmd *cobra.Command, _ []string) error {
	if serviceBuilder == nil {
		return errors.New("export service not configured")
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger.Section("Settings")
	logger.Debug("Cache: %s", settings.CachePath)
	logger.Debug("Output: %s", settings.OutputDir)
	logger.Debug("Days: %d, limit: %d", settings.Days, flagLimit)

	svc, err := serviceBuilder(settings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := domain.ExportOptions{Days: settings.Days, Limit: flagLimit}

	if flagList {
		return listMeetings(ctx, cmd, svc, opts)
	}
	return exportMeetings(ctx, cmd, svc, opts)
}

func listMeetings(ctx context.Context, cmd *cobra.Command, svc driving.ExportService, opts domain.ExportOptions) error {
	meetings, err := svc.List(ctx, opts)
	if err != nil {
		return err
	}

	if len(meetings) == 0 {
		cmd.Printf("No meetings found in the last %d days.\n", opts.Days)
		return nil
	}

	cmd.Printf("Found %d meetings in the last %d days:\n\n", len(meetings), opts.Days)
	for _, m := range meetings {
		cmd.Printf("  %s: %s\n", m.Date(), m.Title)
	}
	return nil
}

func exportMeetings(ctx context.Context, cmd *cobra.Command, svc driving.ExportService, opts domain.ExportOptions) error {
	progress := &driving.ExportProgress{
		OnStart: func(total int) {
			cmd.Printf("Extracting %d meetings to %s\n\n", total, svc.OutputDir())
		},
		OnWrite: func(f domain.ExportedFile) {
			cmd.Printf("  %s\n", filepath.Base(f.Path))
		},
	}

	files, err := svc.Export(ctx, opts, progress)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		cmd.Printf("No meetings found in the last %d days.\n", opts.Days)
		return nil
	}

	cmd.Printf("\nExported %d meetings.\n", len(files))
	return nil
}
