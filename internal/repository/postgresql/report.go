package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/report"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Save implements report.ReportRepository. Snapshots are append-only: a
// regeneration inserts a new row and the previous one stays untouched.
func (r *reportRepositoryImpl) Save(ctx context.Context, rpt report.PeriodReport) error {
	payload, err := json.Marshal(rpt)
	if err != nil {
		return fmt.Errorf("failed to encode report snapshot: %w", err)
	}

	query := `
		INSERT INTO tukin_report_snapshots (id, period_month, period_year, generated_at, payload)
		VALUES ($1, $2, $3, $4, $5)
	`

	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)
		_, err := q.Exec(ctx, query, rpt.ID, rpt.PeriodMonth, rpt.PeriodYear, rpt.GeneratedAt, payload)
		if err != nil {
			return fmt.Errorf("failed to save report snapshot %s: %w", rpt.ID, err)
		}
		return nil
	})
}

// GetByID implements report.ReportRepository.
func (r *reportRepositoryImpl) GetByID(ctx context.Context, id string) (report.PeriodReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT payload
		FROM tukin_report_snapshots
		WHERE id = $1
	`

	return r.scanSnapshot(q.QueryRow(ctx, query, id))
}

// GetLatestByPeriod implements report.ReportRepository.
func (r *reportRepositoryImpl) GetLatestByPeriod(ctx context.Context, month, year int) (report.PeriodReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT payload
		FROM tukin_report_snapshots
		WHERE period_month = $1 AND period_year = $2
		ORDER BY generated_at DESC
		LIMIT 1
	`

	return r.scanSnapshot(q.QueryRow(ctx, query, month, year))
}

// HasSnapshot implements report.ReportRepository.
func (r *reportRepositoryImpl) HasSnapshot(ctx context.Context, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM tukin_report_snapshots
			WHERE period_month = $1 AND period_year = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check snapshot existence: %w", err)
	}

	return exists, nil
}

func (r *reportRepositoryImpl) scanSnapshot(row pgx.Row) (report.PeriodReport, error) {
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.PeriodReport{}, report.ErrReportNotFound
		}
		return report.PeriodReport{}, fmt.Errorf("failed to read report snapshot: %w", err)
	}

	var rpt report.PeriodReport
	if err := json.Unmarshal(payload, &rpt); err != nil {
		return report.PeriodReport{}, fmt.Errorf("failed to decode report snapshot: %w", err)
	}

	return rpt, nil
}
