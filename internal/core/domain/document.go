package domain

import "time"

// Document type and title defaults.
const (
	// DocumentTypeMeeting is the only document type that is exported.
	DocumentTypeMeeting = "meeting"

	// DefaultTitle is used for listings and filenames when a title is missing.
	DefaultTitle = "Untitled"

	// DefaultMeetingTitle is used as the heading of a rendered note.
	DefaultMeetingTitle = "Untitled Meeting"
)

// DateLayout is the day-resolution layout used in listings and filenames.
const DateLayout = "2006-01-02"

// Document represents one meeting record in the Granola cache.
// Every field except ID is optional and may hold an unexpected shape,
// so values are kept as Fields and resolved when read.
type Document struct {
	// ID is the key the document is stored under in the cache.
	// It is authoritative over any id field inside the record.
	ID string `json:"-"`

	// Position is the document's index within the cache's documents
	// object. Meetings created at the same instant keep this order.
	Position int `json:"-"`

	// Title is the meeting title.
	Title Field `json:"title"`

	// CreatedAt is an ISO-8601 timestamp string.
	CreatedAt Field `json:"created_at"`

	// DeletedAt is set once the user deletes the document.
	DeletedAt Field `json:"deleted_at"`

	// Type is absent for meetings created by older app versions.
	Type Field `json:"type"`

	// NotesMarkdown is preferred over NotesPlain when both are present.
	NotesMarkdown Field `json:"notes_markdown"`
	NotesPlain    Field `json:"notes_plain"`

	// Overview is a string, an object with a content member, or absent.
	Overview Field `json:"overview"`

	// GoogleCalendarEvent is the linked calendar event, if any.
	GoogleCalendarEvent Field `json:"google_calendar_event"`

	// People is either an object holding an attendees list, or a list
	// of names and person objects.
	People Field `json:"people"`
}

// TitleOr returns the title, or fallback when it is missing or empty.
func (d *Document) TitleOr(fallback string) string {
	if title := d.Title.Text(); title != "" {
		return title
	}
	return fallback
}

// IsDeleted reports whether deleted_at carries a value.
func (d *Document) IsDeleted() bool {
	return d.DeletedAt.Truthy()
}

// IsMeeting reports whether the document is a meeting.
// A missing or empty type counts as a meeting.
func (d *Document) IsMeeting() bool {
	if !d.Type.Truthy() {
		return true
	}
	t, ok := d.Type.AsString()
	return ok && t == DocumentTypeMeeting
}

// CreatedAtRaw returns created_at as stored, or "" if it is not a string.
func (d *Document) CreatedAtRaw() string {
	return d.CreatedAt.Text()
}

// Transcript speaker labels.
const (
	// SourceSystem is the source Granola records for system audio.
	SourceSystem = "system"

	// SystemSpeaker is how SourceSystem is displayed.
	SystemSpeaker = "Speaker"

	// UnknownSpeaker is used when a segment has no source.
	UnknownSpeaker = "Unknown"
)

// TranscriptSegment is one chunk of speech-to-text output for a document.
// Segments are kept in playback order.
type TranscriptSegment struct {
	Text   string
	Source string
}

// CacheState is the decoded working state of the Granola cache.
type CacheState struct {
	// Documents maps document ID to document.
	Documents map[string]*Document

	// Transcripts maps document ID to its ordered transcript.
	Transcripts map[string][]TranscriptSegment
}

// NewCacheState returns an empty cache state.
func NewCacheState() *CacheState {
	return &CacheState{
		Documents:   make(map[string]*Document),
		Transcripts: make(map[string][]TranscriptSegment),
	}
}

// Meeting is a document selected for export.
type Meeting struct {
	ID        string
	Title     string
	CreatedAt time.Time
	Document  *Document
}

// Date returns the creation day as YYYY-MM-DD.
func (m Meeting) Date() string {
	return m.CreatedAt.Format(DateLayout)
}

// MeetingNote is the normalised form of a document, ready to render.
type MeetingNote struct {
	// Title is the raw title; renderers apply their own default.
	Title string

	// CreatedAt is nil when created_at could not be parsed.
	CreatedAt *time.Time

	// RawCreatedAt is created_at as stored.
	RawCreatedAt string

	Attendees  []string
	Notes      string
	Summary    string
	Transcript string
}

// ExportedFile records one markdown file written by an export.
type ExportedFile struct {
	Title string
	Date  string
	Path  string
}
