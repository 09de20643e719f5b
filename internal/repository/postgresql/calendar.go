package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/calendar"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/database"
)

type calendarRepositoryImpl struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.CalendarRepository {
	return &calendarRepositoryImpl{db: db}
}

// LeaveDates implements calendar.CalendarRepository.
func (r *calendarRepositoryImpl) LeaveDates(ctx context.Context, employeeID string, from, to time.Time) (calendar.DaySet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date
		FROM leave_days
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND approved = TRUE
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave dates for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	return scanDaySet(rows)
}

// HolidayDates implements calendar.CalendarRepository.
func (r *calendarRepositoryImpl) HolidayDates(ctx context.Context, from, to time.Time) (calendar.DaySet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date
		FROM holidays
		WHERE date BETWEEN $1 AND $2
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	defer rows.Close()

	return scanDaySet(rows)
}

func scanDaySet(rows pgx.Rows) (calendar.DaySet, error) {
	set := make(calendar.DaySet)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		set[date.Format("2006-01-02")] = true
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return set, nil
}
