// Package cli provides the cobra command tree for scoop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driving"
	"github.com/custodia-labs/granola-scoop/internal/core/services"
	"github.com/custodia-labs/granola-scoop/internal/logger"
)

// ServiceBuilder constructs the export service for resolved settings.
type ServiceBuilder func(settings domain.Settings) (driving.ExportService, error)

// ConfigOpener opens the config store in dir.
type ConfigOpener func(dir string) (driven.ConfigStore, error)

var (
	version = "dev"

	serviceBuilder ServiceBuilder
	configOpener   ConfigOpener
	homeDir        = os.UserHomeDir
)

var (
	flagDays    int
	flagLimit   int
	flagList    bool
	flagCache   string
	flagOutput  string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scoop",
	Short: "Export recent Granola meetings as markdown",
	Long: `scoop reads the local Granola cache and writes one markdown file per
meeting created in the lookback window. Each file holds the meeting's
attendees, notes, AI summary and speaker-grouped transcript.

Existing files with the same name are overwritten.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExport,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&flagDays, "days", domain.DefaultDays, "Look back this many days")
	flags.IntVar(&flagLimit, "limit", 0, "Export at most this many meetings (0 = no limit)")
	flags.BoolVar(&flagList, "list", false, "List matching meetings without writing files")
	flags.StringVar(&flagCache, "cache", "", "Path to the Granola cache file")
	flags.StringVar(&flagOutput, "output", "", "Directory to write markdown files to")
	flags.StringVar(&flagConfig, "config", "", "Config directory (default ~/.granola-scoop)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print diagnostic logs to stderr")

	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	}
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceBuilder sets how the export service is built once settings are resolved.
func SetServiceBuilder(b ServiceBuilder) {
	serviceBuilder = b
}

// SetConfigOpener sets how the config store is opened.
// Without one, built-in defaults and flags are used.
func SetConfigOpener(o ConfigOpener) {
	configOpener = o
}

// Execute runs the root command and reports any error on stderr.
// Cancelling ctx stops an export between notes.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func reportError(w io.Writer, err error) {
	if errors.Is(err, domain.ErrCacheDecode) {
		fmt.Fprintf(w, "Error parsing Granola cache: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// resolveSettings layers flags over the config file over built-in defaults.
// Flags only win when they were set on the command line.
func resolveSettings(cmd *cobra.Command) (domain.Settings, error) {
	home, err := homeDir()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("resolve home directory: %w", err)
	}

	dir := flagConfig
	if dir == "" {
		dir = domain.DefaultConfigDir(home)
	}

	var store driven.ConfigStore
	if configOpener != nil {
		store, err = configOpener(dir)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("load config: %w", err)
		}
		logger.Debug("Config: %s", store.Path())
	}

	settings := services.ResolveSettings(store, home)

	flags := cmd.Flags()
	if flags.Changed("days") {
		settings.Days = flagDays
	}
	if flags.Changed("cache") {
		settings.CachePath = flagCache
	}
	if flags.Changed("output") {
		settings.OutputDir = flagOutput
	}

	return settings, nil
}
