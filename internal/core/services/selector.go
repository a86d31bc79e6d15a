package services

import (
	"sort"
	"time"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/logger"
)

// Select filters documents down to the meetings created within the
// lookback window, newest first.
//
// Deleted documents, documents of a type other than "meeting", and
// documents without a parseable created_at are skipped. Meetings created
// at the same instant keep their order in the cache. A negative Days
// selects nothing. A positive Limit truncates the result after sorting.
func (s *ExportService) Select(documents map[string]*domain.Document, opts domain.ExportOptions) []domain.Meeting {
	if s.normaliser == nil {
		return nil
	}

	cutoff := s.now().UTC().Add(-time.Duration(opts.Days) * 24 * time.Hour)

	logger.Section("Selection")
	logger.Debug("Cutoff: %s", cutoff.Format(time.RFC3339))

	type entry struct {
		id  string
		doc *domain.Document
	}
	entries := make([]entry, 0, len(documents))
	for id, doc := range documents {
		if doc != nil {
			entries = append(entries, entry{id: id, doc: doc})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.doc.Position != b.doc.Position {
			return a.doc.Position < b.doc.Position
		}
		return a.id < b.id
	})

	meetings := make([]domain.Meeting, 0, len(entries))
	for _, e := range entries {
		id, doc := e.id, e.doc
		if doc.IsDeleted() {
			logger.Debug("Skipping %s: deleted", id)
			continue
		}
		if !doc.IsMeeting() {
			logger.Debug("Skipping %s: not a meeting", id)
			continue
		}

		created, ok := s.normaliser.ParseDate(doc.CreatedAtRaw())
		if !ok {
			logger.Debug("Skipping %s: unparseable created_at %q", id, doc.CreatedAtRaw())
			continue
		}
		if created.Before(cutoff) {
			continue
		}

		meetings = append(meetings, domain.Meeting{
			ID:        id,
			Title:     doc.TitleOr(domain.DefaultTitle),
			CreatedAt: created,
			Document:  doc,
		})
	}

	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].CreatedAt.After(meetings[j].CreatedAt)
	})

	if opts.Limit > 0 && len(meetings) > opts.Limit {
		meetings = meetings[:opts.Limit]
	}

	logger.Debug("Selected %d of %d documents", len(meetings), len(documents))
	return meetings
}
