package granola

import "github.com/custodia-labs/granola-scoop/internal/core/domain"

// Notes returns the markdown notes, falling back to the plain-text notes.
func Notes(doc *domain.Document) string {
	if notes := doc.NotesMarkdown.Text(); notes != "" {
		return notes
	}
	return doc.NotesPlain.Text()
}

// Overview returns the AI summary. Granola stores it either as a string
// or as an object with a content member.
func Overview(doc *domain.Document) string {
	switch doc.Overview.Kind() {
	case domain.KindString:
		return doc.Overview.Text()
	case domain.KindObject:
		members, _ := doc.Overview.AsObject()
		return members["content"].Text()
	default:
		return ""
	}
}
