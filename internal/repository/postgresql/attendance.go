package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/simpeg-app/tukin-backend-go/internal/domain/attendance"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepositoryImpl{db: db}
}

// ListByEmployeeRange implements attendance.EventRepository.
func (r *eventRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, time, kind, distance_meters
		FROM attendance_events
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, time
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.Date, &ev.Time, &ev.Kind, &ev.DistanceMeters)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

type shiftPolicyRepositoryImpl struct {
	db *database.DB
}

func NewShiftPolicyRepository(db *database.DB) attendance.ShiftPolicyRepository {
	return &shiftPolicyRepositoryImpl{db: db}
}

// GetRange implements attendance.ShiftPolicyRepository.
func (r *shiftPolicyRepositoryImpl) GetRange(ctx context.Context, employeeID string, from, to time.Time) (map[string]attendance.ShiftPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, expected_arrival, expected_departure, location_mode
		FROM shift_policies
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift policies for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	policies := make(map[string]attendance.ShiftPolicy)
	for rows.Next() {
		var date time.Time
		var policy attendance.ShiftPolicy
		err := rows.Scan(&date, &policy.ExpectedArrival, &policy.ExpectedDeparture, &policy.LocationMode)
		if err != nil {
			return nil, err
		}
		policies[date.Format("2006-01-02")] = policy
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return policies, nil
}
