package driving

import (
	"context"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
)

// ExportProgress receives events while an export runs. Either hook may be nil.
type ExportProgress struct {
	// OnStart is called once the selection is known, before any write.
	OnStart func(total int)

	// OnWrite is called after each note is written.
	OnWrite func(file domain.ExportedFile)
}

// ExportService selects recent meetings from the cache and exports them.
type ExportService interface {
	// List returns the meetings that would be exported, newest first.
	// Nothing is written.
	List(ctx context.Context, opts domain.ExportOptions) ([]domain.Meeting, error)

	// Export renders and writes one note per selected meeting.
	// When no meeting qualifies, nothing is created and an empty slice is returned.
	Export(ctx context.Context, opts domain.ExportOptions, progress *ExportProgress) ([]domain.ExportedFile, error)

	// OutputDir returns where notes are written.
	OutputDir() string
}
