// Package renderers provides implementations of the Renderer interface.
// A renderer turns a normalised domain.MeetingNote into file content.
package renderers
