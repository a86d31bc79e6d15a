package granola

import (
	"regexp"
	"strings"
)

const (
	maxSlugLength = 50
	untitledSlug  = "untitled"
)

// slugSpace is the whitespace class: ASCII whitespace including \v,
// the information separators, NEL and the Unicode separators.
const slugSpace = `\s\v\x1c-\x1f\x{85}\p{Z}`

// Word characters are letters, numbers and underscore. Combining marks
// are not, so decomposed accents are dropped.
var (
	slugDisallowed = regexp.MustCompile(`[^\p{L}\p{N}_` + slugSpace + `-]`)
	slugSeparators = regexp.MustCompile(`[` + slugSpace + `_-]+`)
)

// Slugify converts a title into a lowercase, hyphenated, filename-safe slug
// of at most 50 characters. Titles with nothing usable yield "untitled".
func Slugify(title string) string {
	if title == "" {
		return untitledSlug
	}

	slug := strings.ToLower(title)
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	if runes := []rune(slug); len(runes) > maxSlugLength {
		slug = string(runes[:maxSlugLength])
	}
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return untitledSlug
	}
	return slug
}
