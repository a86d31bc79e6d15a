// Package markdown renders meeting notes as standalone markdown documents.
package markdown

import (
	"strings"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// DisplayDateLayout formats the meeting date, e.g. "March 04, 2024 at 09:30 AM".
const DisplayDateLayout = "January 02, 2006 at 03:04 PM"

// Renderer writes the fixed note layout:
//
//	# <title>
//
//	**Date:** <date>
//	**Attendees:** <names>
//
//	## Notes / ## Summary / ## Transcript
//
// Sections with no content are omitted.
type Renderer struct{}

// New creates a new markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

// Extension returns ".md".
func (r *Renderer) Extension() string {
	return ".md"
}

// Render formats a note as markdown.
func (r *Renderer) Render(note *domain.MeetingNote) string {
	if note == nil {
		note = &domain.MeetingNote{}
	}

	title := note.Title
	if title == "" {
		title = domain.DefaultMeetingTitle
	}

	lines := []string{
		"# " + title,
		"",
		"**Date:** " + displayDate(note),
	}
	if len(note.Attendees) > 0 {
		lines = append(lines, "**Attendees:** "+strings.Join(note.Attendees, ", "))
	}
	lines = append(lines, "")

	lines = appendSection(lines, "Notes", note.Notes)
	lines = appendSection(lines, "Summary", note.Summary)
	lines = appendSection(lines, "Transcript", note.Transcript)

	return strings.Join(lines, "\n")
}

// displayDate returns the formatted creation time, or the stored value
// verbatim when it could not be parsed.
func displayDate(note *domain.MeetingNote) string {
	if note.CreatedAt == nil {
		return note.RawCreatedAt
	}
	return note.CreatedAt.Format(DisplayDateLayout)
}

func appendSection(lines []string, heading, body string) []string {
	if body == "" {
		return lines
	}
	return append(lines, "## "+heading, "", body, "")
}
