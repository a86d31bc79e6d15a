package services

import (
	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
)

// ResolveSettings applies configured values over the built-in defaults
// for home. Empty strings and non-positive day counts are ignored.
func ResolveSettings(store driven.ConfigStore, home string) domain.Settings {
	settings := domain.DefaultSettings(home)
	if store == nil {
		return settings
	}

	if cache := store.GetString(domain.SettingCachePath); cache != "" {
		settings.CachePath = cache
	}
	if output := store.GetString(domain.SettingOutputDir); output != "" {
		settings.OutputDir = output
	}
	if days := store.GetInt(domain.SettingDefaultDays); days > 0 {
		settings.Days = days
	}

	return settings
}
