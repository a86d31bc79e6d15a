// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CacheReader: Loads the Granola cache into a CacheState
//   - Normaliser: Resolves loosely-typed document fields into a MeetingNote
//   - Renderer: Turns a MeetingNote into file content
//   - NoteWriter: Persists rendered notes
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, normaliser, or renderer package
package driven
