// Package file provides file-based configuration storage using TOML.
//
// The config file lives at ~/.granola-scoop/config.toml by default:
//
//	[paths]
//	cache = "~/Library/Application Support/Granola/cache-v3.json"
//	output = "~/notes/meetings"
//
//	[defaults]
//	days = 14
//
// Nested tables are flattened to dot-notation keys ("paths.cache").
// A missing file is not an error; every key simply reads as unset.
package file
