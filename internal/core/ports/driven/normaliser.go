package driven

import (
	"time"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
)

// Normaliser resolves loosely-typed cache documents into canonical values.
// Every method is total: malformed input produces a default, never an error.
type Normaliser interface {
	// ParseDate parses a cache timestamp. Returns false when the value
	// is empty or cannot be parsed.
	ParseDate(value string) (time.Time, bool)

	// Slugify converts a title into a filename-safe slug.
	Slugify(title string) string

	// Normalise builds the renderable note for a document and its transcript.
	Normalise(doc *domain.Document, transcript []domain.TranscriptSegment) *domain.MeetingNote
}
