package driven

import "context"

// NoteWriter persists rendered meeting notes.
type NoteWriter interface {
	// EnsureDir creates the destination if it does not exist.
	EnsureDir(ctx context.Context) error

	// Write stores content under name, replacing any existing note with
	// the same name. Returns the full path written.
	Write(ctx context.Context, name string, content []byte) (string, error)

	// Dir returns the destination directory.
	Dir() string
}
