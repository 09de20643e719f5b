package report

import (
	"context"
)

// TukinReportService defines the period report operations.
type TukinReportService interface {
	// Generate computes the deduction report for every active employee in
	// the period, persists it as a new snapshot and returns it. One bad
	// employee input yields a FAILED line, never an aborted batch.
	Generate(ctx context.Context, req GenerateReportRequest) (PeriodReport, error)

	// GenerateEmployeeLine computes one employee's deduction line for a
	// period without persisting anything. Unlike Generate, input problems
	// surface as errors rather than a FAILED line.
	GenerateEmployeeLine(ctx context.Context, employeeID string, month, year int) (DeductionReportLine, error)

	// GetByID retrieves a persisted snapshot by ID.
	GetByID(ctx context.Context, id string) (PeriodReport, error)

	// GetLatestByPeriod retrieves the most recent snapshot for a period.
	GetLatestByPeriod(ctx context.Context, month, year int) (PeriodReport, error)

	// EnsureMonthlySnapshot generates the previous month's snapshot if none
	// exists yet. Used by the cron scheduler after month close.
	EnsureMonthlySnapshot(ctx context.Context) error
}
