package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/simpeg-app/tukin-backend-go/internal/domain/report"
)

type ReportJobs struct {
	reportService report.TukinReportService
}

func NewReportJobs(reportService report.TukinReportService) *ReportJobs {
	return &ReportJobs{
		reportService: reportService,
	}
}

func (j *ReportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("monthly_tukin_snapshot", 1*time.Hour, j.SnapshotPreviousMonth)
}

// SnapshotPreviousMonth persists a deduction report for the month that just
// closed, unless one already exists. The hourly tick is gated to the 01:00
// window so the job runs once per day at most and only does work on days
// where the previous month has no snapshot yet.
func (j *ReportJobs) SnapshotPreviousMonth(ctx context.Context) error {
	if time.Now().UTC().Hour() != 1 {
		return nil
	}

	slog.Info("Cron: Starting monthly tukin snapshot job")

	if err := j.reportService.EnsureMonthlySnapshot(ctx); err != nil {
		return err
	}

	slog.Info("Cron: Monthly tukin snapshot job finished")
	return nil
}
