package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/granola-scoop/internal/adapters/driven/cache/memory"
	notesmemory "github.com/custodia-labs/granola-scoop/internal/adapters/driven/notes/memory"
	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/normalisers/granola"
	"github.com/custodia-labs/granola-scoop/internal/renderers/markdown"
)

// fixedNow is the clock used by service tests.
var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

// stamp formats a time the way Granola writes created_at.
func stamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func daysAgo(d float64) time.Time {
	return fixedNow.Add(-time.Duration(d * float64(24*time.Hour)))
}

// newDoc decodes a document from a JSON object literal.
func newDoc(t *testing.T, id, raw string) *domain.Document {
	t.Helper()
	var doc domain.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	doc.ID = id
	return &doc
}

// meetingDoc builds a plain meeting document created at created.
func meetingDoc(t *testing.T, id, title string, created time.Time) *domain.Document {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"title":      title,
		"created_at": stamp(created),
	})
	require.NoError(t, err)
	return newDoc(t, id, string(raw))
}

// encodeCache wraps an inner state document the way Granola writes it.
func encodeCache(t *testing.T, inner string) []byte {
	t.Helper()
	outer, err := json.Marshal(map[string]string{"cache": inner})
	require.NoError(t, err)
	return outer
}

// newState builds a cache state whose documents appear in argument order.
func newState(docs ...*domain.Document) *domain.CacheState {
	state := domain.NewCacheState()
	for i, d := range docs {
		d.Position = i
		state.Documents[d.ID] = d
	}
	return state
}

func newTestService(state *domain.CacheState) (*ExportService, *notesmemory.NoteWriter) {
	writer := notesmemory.NewNoteWriter("/out")
	svc := NewExportService(
		memory.NewCacheReader(state),
		writer,
		granola.New(),
		markdown.New(),
	).WithClock(clock)
	return svc, writer
}
