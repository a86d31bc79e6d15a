// Package granola normalises documents from the Granola meeting-notes cache.
package granola

import (
	"time"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Granola cache documents.
type Normaliser struct{}

// New creates a new Granola normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// ParseDate parses a cache timestamp.
func (n *Normaliser) ParseDate(value string) (time.Time, bool) {
	return ParseDate(value)
}

// Slugify converts a title into a filename-safe slug.
func (n *Normaliser) Slugify(title string) string {
	return Slugify(title)
}

// Normalise builds the renderable note for a document and its transcript.
func (n *Normaliser) Normalise(doc *domain.Document, transcript []domain.TranscriptSegment) *domain.MeetingNote {
	if doc == nil {
		doc = &domain.Document{}
	}

	raw := doc.CreatedAtRaw()
	note := &domain.MeetingNote{
		Title:        doc.Title.Text(),
		RawCreatedAt: raw,
		Attendees:    Attendees(doc),
		Notes:        Notes(doc),
		Summary:      Overview(doc),
		Transcript:   FormatTranscript(transcript),
	}
	if created, ok := ParseDate(raw); ok {
		note.CreatedAt = &created
	}
	return note
}
