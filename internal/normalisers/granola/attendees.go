package granola

import (
	"encoding/json"
	"strings"

	"google.golang.org/api/calendar/v3"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
)

// nameList collects names in order of first appearance.
type nameList struct {
	names []string
	seen  map[string]struct{}
}

func (l *nameList) add(name string) {
	if name == "" {
		return
	}
	if _, ok := l.seen[name]; ok {
		return
	}
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	l.seen[name] = struct{}{}
	l.names = append(l.names, name)
}

// Attendees returns the unique attendee names of a document.
// Calendar event attendees come first, followed by the people field,
// which Granola writes either as an object holding an attendees list
// or as a list of names and person objects.
func Attendees(doc *domain.Document) []string {
	var list nameList

	for _, name := range calendarAttendees(doc.GoogleCalendarEvent) {
		list.add(name)
	}

	switch doc.People.Kind() {
	case domain.KindObject:
		people, _ := doc.People.AsObject()
		entries, _ := people["attendees"].AsArray()
		for _, entry := range entries {
			person, ok := entry.AsObject()
			if !ok {
				continue
			}
			name := person["name"].Text()
			if name == "" {
				name = person["displayName"].Text()
			}
			list.add(name)
		}
	case domain.KindArray:
		entries, _ := doc.People.AsArray()
		for _, entry := range entries {
			switch entry.Kind() {
			case domain.KindObject:
				person, _ := entry.AsObject()
				list.add(person["name"].Text())
			case domain.KindString:
				list.add(entry.Text())
			}
		}
	}

	return list.names
}

// calendarAttendees reads the attendees of a Google Calendar event.
// The display name is preferred, then the local part of the email.
func calendarAttendees(event domain.Field) []string {
	members, ok := event.AsObject()
	if !ok {
		return nil
	}
	entries, ok := members["attendees"].AsArray()
	if !ok {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Kind() != domain.KindObject {
			continue
		}
		if name := attendeeName(entry); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func attendeeName(entry domain.Field) string {
	var attendee calendar.EventAttendee
	if err := json.Unmarshal(entry, &attendee); err != nil {
		// An unrelated member had an unexpected type; read the two we need.
		members, _ := entry.AsObject()
		attendee.DisplayName = members["displayName"].Text()
		attendee.Email = members["email"].Text()
	}

	if attendee.DisplayName != "" {
		return attendee.DisplayName
	}
	local, _, _ := strings.Cut(attendee.Email, "@")
	return local
}
