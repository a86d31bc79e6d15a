// Package normalisers provides implementations of the Normaliser interface.
// A normaliser knows the document shapes one source application writes
// and resolves them into the canonical domain.MeetingNote.
//
// Normalisers never fail: missing or mistyped fields resolve to defaults.
package normalisers
