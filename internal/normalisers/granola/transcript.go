package granola

import (
	"strings"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
)

// utterance is one non-empty segment with its display speaker.
type utterance struct {
	speaker string
	text    string
}

// FormatTranscript renders transcript segments as speaker blocks.
// Consecutive segments from the same speaker are joined into one line,
// and each block is separated by a blank line:
//
//	**Alice:** hello there
//
//	**Speaker:** ok
func FormatTranscript(segments []domain.TranscriptSegment) string {
	utterances := make([]utterance, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		utterances = append(utterances, utterance{speaker: displaySpeaker(seg.Source), text: text})
	}

	var blocks []string
	for start := 0; start < len(utterances); {
		end := start + 1
		for end < len(utterances) && utterances[end].speaker == utterances[start].speaker {
			end++
		}
		blocks = append(blocks, formatBlock(utterances[start:end]))
		start = end
	}

	return strings.Join(blocks, "\n\n")
}

// formatBlock joins a run of utterances that share a speaker.
func formatBlock(run []utterance) string {
	texts := make([]string, len(run))
	for i, u := range run {
		texts[i] = u.text
	}
	return "**" + run[0].speaker + ":** " + strings.Join(texts, " ")
}

func displaySpeaker(source string) string {
	if source == domain.SourceSystem {
		return domain.SystemSpeaker
	}
	return source
}
