package report

import (
	"context"
)

// ReportRepository is the report sink: it persists assembled period reports
// as immutable snapshots and serves them back. The engine treats Save as
// fire-and-forget once the report is assembled.
type ReportRepository interface {
	// Save appends a new snapshot. It never updates an existing one.
	Save(ctx context.Context, rpt PeriodReport) error

	// GetByID retrieves one snapshot. Returns ErrReportNotFound.
	GetByID(ctx context.Context, id string) (PeriodReport, error)

	// GetLatestByPeriod retrieves the most recent snapshot for a period.
	// Returns ErrReportNotFound.
	GetLatestByPeriod(ctx context.Context, month, year int) (PeriodReport, error)

	// HasSnapshot reports whether any snapshot exists for a period.
	HasSnapshot(ctx context.Context, month, year int) (bool, error)
}
