package domain

import "errors"

// Domain errors represent failures the CLI reports to the user.
// Everything else in the pipeline is absorbed by tolerant defaults.
var (
	// ErrCacheNotFound indicates the Granola cache file does not exist.
	ErrCacheNotFound = errors.New("Granola cache not found")

	// ErrCacheDecode indicates either encoding layer of the cache is malformed.
	ErrCacheDecode = errors.New("cache decode failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required component was not wired.
	ErrNotConfigured = errors.New("not configured")
)
