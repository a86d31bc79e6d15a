package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	cachefile "github.com/custodia-labs/granola-scoop/internal/adapters/driven/cache/file"
	notesfile "github.com/custodia-labs/granola-scoop/internal/adapters/driven/notes/file"
	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driving"
	"github.com/custodia-labs/granola-scoop/internal/core/services"
	"github.com/custodia-labs/granola-scoop/internal/normalisers/granola"
	"github.com/custodia-labs/granola-scoop/internal/renderers/markdown"
)

// buildFileService wires the on-disk adapters the way cmd/scoop does.
func buildFileService(settings domain.Settings) (driving.ExportService, error) {
	return services.NewExportService(
		cachefile.NewCacheReader(settings.CachePath),
		notesfile.NewNoteWriter(settings.OutputDir),
		granola.New(),
		markdown.New(),
	), nil
}

func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
}

// setupCLI points the command at a temporary home directory and restores
// the package state when the test ends.
func setupCLI(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	oldHome, oldBuilder, oldOpener := homeDir, serviceBuilder, configOpener
	homeDir = func() (string, error) { return home, nil }
	serviceBuilder = buildFileService
	configOpener = nil
	resetFlags()

	t.Cleanup(func() {
		homeDir, serviceBuilder, configOpener = oldHome, oldBuilder, oldOpener
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(os.Stdout)
		rootCmd.SetErr(nil)
		resetFlags()
	})

	return home
}

func run(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := Execute(context.Background())
	return buf.String(), err
}

// writeCache writes a double-encoded Granola cache holding docs and
// transcripts to path.
func writeCache(t *testing.T, path string, docs, transcripts map[string]any) {
	t.Helper()

	inner, err := json.Marshal(map[string]any{
		"state": map[string]any{
			"documents":   docs,
			"transcripts": transcripts,
		},
	})
	require.NoError(t, err)
	outer, err := json.Marshal(map[string]string{"cache": string(inner)})
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, outer, 0o644))
}
