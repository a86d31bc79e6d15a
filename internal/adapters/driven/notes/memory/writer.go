// Package memory provides an in-memory NoteWriter.
package memory

import (
	"context"
	"path"
	"sync"

	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
)

// Ensure NoteWriter implements the interface.
var _ driven.NoteWriter = (*NoteWriter)(nil)

// NoteWriter keeps written notes in memory.
type NoteWriter struct {
	mu         sync.RWMutex
	dir        string
	dirCreated bool
	notes      map[string][]byte
	order      []string
}

// NewNoteWriter creates an in-memory writer reporting dir as its location.
func NewNoteWriter(dir string) *NoteWriter {
	return &NoteWriter{
		dir:   dir,
		notes: make(map[string][]byte),
	}
}

// Dir returns the configured directory.
func (w *NoteWriter) Dir() string {
	return w.dir
}

// EnsureDir records that the directory was requested.
func (w *NoteWriter) EnsureDir(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dirCreated = true
	return nil
}

// Write stores a copy of content under name.
func (w *NoteWriter) Write(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.notes[name] = append([]byte(nil), content...)
	w.order = append(w.order, name)
	return path.Join(w.dir, name), nil
}

// DirCreated reports whether EnsureDir was called.
func (w *NoteWriter) DirCreated() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dirCreated
}

// Note returns the content stored under name.
func (w *NoteWriter) Note(name string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	content, ok := w.notes[name]
	return string(content), ok
}

// Names returns note names in write order, including repeated writes.
func (w *NoteWriter) Names() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]string(nil), w.order...)
}

// Count returns the number of distinct notes stored.
func (w *NoteWriter) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.notes)
}
