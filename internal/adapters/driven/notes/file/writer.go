// Package file writes rendered meeting notes to a directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
	"github.com/custodia-labs/granola-scoop/internal/logger"
)

// Ensure NoteWriter implements the interface.
var _ driven.NoteWriter = (*NoteWriter)(nil)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// NoteWriter writes notes as flat files in one directory.
// Existing files are overwritten, so repeated exports are idempotent.
type NoteWriter struct {
	dir string
}

// NewNoteWriter creates a writer for dir.
func NewNoteWriter(dir string) *NoteWriter {
	return &NoteWriter{dir: dir}
}

// Dir returns the output directory.
func (w *NoteWriter) Dir() string {
	return w.dir
}

// EnsureDir creates the output directory and any missing parents.
func (w *NoteWriter) EnsureDir(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Write stores content as name inside the output directory.
func (w *NoteWriter) Write(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: note name %q", domain.ErrInvalidInput, name)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return "", fmt.Errorf("failed to write note: %w", err)
	}

	logger.Debug("wrote %d bytes to %s", len(content), path)
	return path, nil
}
