package granola

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
)

func TestFormatTranscript(t *testing.T) {
	tests := []struct {
		name     string
		segments []domain.TranscriptSegment
		want     string
	}{
		{
			name:     "nil",
			segments: nil,
			want:     "",
		},
		{
			name: "merges consecutive speaker",
			segments: []domain.TranscriptSegment{
				{Source: "A", Text: "hi"},
				{Source: "A", Text: "there"},
			},
			want: "**A:** hi there",
		},
		{
			name: "system speaker starts new block",
			segments: []domain.TranscriptSegment{
				{Source: "A", Text: "hi"},
				{Source: "A", Text: "there"},
				{Source: "system", Text: "ok"},
			},
			want: "**A:** hi there\n\n**Speaker:** ok",
		},
		{
			name: "skips blank segments without splitting a run",
			segments: []domain.TranscriptSegment{
				{Source: "microphone", Text: "one"},
				{Source: "system", Text: "   "},
				{Source: "microphone", Text: " two "},
			},
			want: "**microphone:** one two",
		},
		{
			name: "alternating speakers",
			segments: []domain.TranscriptSegment{
				{Source: "A", Text: "1"},
				{Source: "B", Text: "2"},
				{Source: "A", Text: "3"},
			},
			want: "**A:** 1\n\n**B:** 2\n\n**A:** 3",
		},
		{
			name: "only blank segments",
			segments: []domain.TranscriptSegment{
				{Source: "A", Text: ""},
				{Source: "B", Text: "\n\t"},
			},
			want: "",
		},
		{
			name: "unknown speaker",
			segments: []domain.TranscriptSegment{
				{Source: domain.UnknownSpeaker, Text: "who said this"},
			},
			want: "**Unknown:** who said this",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTranscript(tt.segments))
		})
	}
}
