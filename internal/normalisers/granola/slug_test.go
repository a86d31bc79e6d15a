package granola

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Team Sync: Q3 Planning!!", "team-sync-q3-planning"},
		{"1:1 with Sam", "11-with-sam"},
		{"", "untitled"},
		{"Already-hyphenated_title", "already-hyphenated-title"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"multiple   spaces -- and __ mixes", "multiple-spaces-and-mixes"},
		{"Café Résumé Review", "café-résumé-review"},
		{"Cafe\u0301 Review", "cafe-review"},
		{"Tab\tand\vvertical", "tab-and-vertical"},
		{"Record\x1eSeparated\u0085Line", "record-separated-line"},
		{"Non\u00a0breaking\u2028space", "non-breaking-space"},
		{"!!!", "untitled"},
		{"---", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	title := strings.Repeat("abcde ", 20)

	slug := Slugify(title)

	assert.LessOrEqual(t, len([]rune(slug)), 50)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.True(t, strings.HasPrefix(slug, "abcde-abcde-"))
}

func TestSlugify_TruncatesBeforeTrim(t *testing.T) {
	// The 50th character is a separator, which is trimmed after truncation.
	title := strings.Repeat("a", 49) + " tail"

	assert.Equal(t, strings.Repeat("a", 49), Slugify(title))
}

func TestSlugify_CountsRunes(t *testing.T) {
	title := strings.Repeat("é", 60)

	assert.Equal(t, strings.Repeat("é", 50), Slugify(title))
}
