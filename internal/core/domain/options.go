package domain

// DefaultDays is the default lookback window.
const DefaultDays = 7

// ExportOptions controls which meetings are selected.
type ExportOptions struct {
	// Days is the lookback window. Meetings created before now minus
	// Days are skipped, so a negative window selects nothing.
	Days int

	// Limit caps the number of meetings. Zero means no limit.
	Limit int `validate:"gte=0"`
}

// DefaultExportOptions returns the options used when no flags are given.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{Days: DefaultDays}
}
