package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driving"
	"github.com/custodia-labs/granola-scoop/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService loads the cache, selects recent meetings and writes
// one rendered note per meeting.
type ExportService struct {
	cache      driven.CacheReader
	writer     driven.NoteWriter
	normaliser driven.Normaliser
	renderer   driven.Renderer
	now        func() time.Time
}

// NewExportService creates a new export service.
func NewExportService(
	cache driven.CacheReader,
	writer driven.NoteWriter,
	normaliser driven.Normaliser,
	renderer driven.Renderer,
) *ExportService {
	return &ExportService{
		cache:      cache,
		writer:     writer,
		normaliser: normaliser,
		renderer:   renderer,
		now:        time.Now,
	}
}

// WithClock replaces the clock used to compute the lookback cutoff.
func (s *ExportService) WithClock(now func() time.Time) *ExportService {
	s.now = now
	return s
}

// OutputDir returns where notes are written.
func (s *ExportService) OutputDir() string {
	if s.writer == nil {
		return ""
	}
	return s.writer.Dir()
}

// List returns the meetings that would be exported, newest first.
// Cache errors are reported before invalid options.
func (s *ExportService) List(ctx context.Context, opts domain.ExportOptions) ([]domain.Meeting, error) {
	if s.cache == nil || s.normaliser == nil {
		return nil, fmt.Errorf("export service: %w", domain.ErrNotConfigured)
	}

	state, err := s.cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}
	return s.Select(state.Documents, opts), nil
}

// Export renders and writes one note per selected meeting.
// Notes are named <YYYY-MM-DD>-<slug><ext>; an existing note with the
// same name is replaced.
func (s *ExportService) Export(
	ctx context.Context,
	opts domain.ExportOptions,
	progress *driving.ExportProgress,
) ([]domain.ExportedFile, error) {
	if s.cache == nil || s.writer == nil || s.normaliser == nil || s.renderer == nil {
		return nil, fmt.Errorf("export service: %w", domain.ErrNotConfigured)
	}

	state, err := s.cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	meetings := s.Select(state.Documents, opts)
	if len(meetings) == 0 {
		return []domain.ExportedFile{}, nil
	}

	if progress != nil && progress.OnStart != nil {
		progress.OnStart(len(meetings))
	}

	if err := s.writer.EnsureDir(ctx); err != nil {
		return nil, err
	}

	logger.Section("Export")
	exported := make([]domain.ExportedFile, 0, len(meetings))
	for _, m := range meetings {
		if err := ctx.Err(); err != nil {
			return exported, err
		}

		name := s.noteName(m)
		note := s.normaliser.Normalise(m.Document, state.Transcripts[m.ID])
		content := s.renderer.Render(note)

		path, err := s.writer.Write(ctx, name, []byte(content))
		if err != nil {
			return exported, err
		}

		file := domain.ExportedFile{Title: m.Title, Date: m.Date(), Path: path}
		exported = append(exported, file)
		if progress != nil && progress.OnWrite != nil {
			progress.OnWrite(file)
		}
	}

	logger.Info("Exported %d notes to %s", len(exported), s.writer.Dir())
	return exported, nil
}

func (s *ExportService) noteName(m domain.Meeting) string {
	return m.Date() + "-" + s.normaliser.Slugify(m.Title) + s.renderer.Extension()
}
