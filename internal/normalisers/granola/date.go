package granola

import (
	"strings"
	"time"
)

// dateLayouts are tried in order once the zone marker and fractional
// seconds have been removed.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 timestamp as written by Granola.
// A trailing "Z" is read as UTC and fractional seconds are discarded.
// Other zone offsets are not interpreted and fail to parse.
// The result is in UTC.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	value = strings.ReplaceAll(value, "Z", "+00:00")
	if before, _, found := strings.Cut(value, "."); found {
		value = before
	}
	value = strings.ReplaceAll(value, "+00:00", "")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
