// Package domain defines the core entities for scoop.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A meeting record as stored in the Granola cache
//   - Field: A loosely-typed cache value with explicit shape matching
//   - TranscriptSegment: One utterance of speech-to-text output
//   - Meeting: A selected document with its parsed creation time
//   - MeetingNote: The canonical, normalised form handed to renderers
//   - ExportedFile: A record of one written markdown file
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
