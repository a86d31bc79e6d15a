package domain

import "path/filepath"

// Configuration keys, in dot notation as flattened from config.toml.
const (
	SettingCachePath   = "paths.cache"
	SettingOutputDir   = "paths.output"
	SettingDefaultDays = "defaults.days"
)

// Settings holds the resolved locations and defaults for one run.
type Settings struct {
	// CachePath is the Granola cache file.
	CachePath string

	// OutputDir receives one markdown file per exported meeting.
	OutputDir string

	// Days is the lookback window used when --days is not given.
	Days int
}

// DefaultCachePath returns the Granola cache location under home.
func DefaultCachePath(home string) string {
	return filepath.Join(home, "Library", "Application Support", "Granola", "cache-v3.json")
}

// DefaultConfigDir returns the scoop config directory under home.
func DefaultConfigDir(home string) string {
	return filepath.Join(home, ".granola-scoop")
}

// DefaultOutputDir returns the default export directory under home.
func DefaultOutputDir(home string) string {
	return filepath.Join(DefaultConfigDir(home), "output")
}

// DefaultSettings returns the built-in settings for a home directory.
func DefaultSettings(home string) Settings {
	return Settings{
		CachePath: DefaultCachePath(home),
		OutputDir: DefaultOutputDir(home),
		Days:      DefaultDays,
	}
}
