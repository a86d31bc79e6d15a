package driven

import "github.com/custodia-labs/granola-scoop/internal/core/domain"

// Renderer formats a normalised meeting note for output.
type Renderer interface {
	// Render returns the file content for a note.
	Render(note *domain.MeetingNote) string

	// Extension returns the file extension including the dot, e.g. ".md".
	Extension() string
}
