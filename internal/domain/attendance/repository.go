package attendance

import (
	"context"
	"time"
)

// EventRepository is the attendance event store contract.
type EventRepository interface {
	// ListByEmployeeRange returns all recorded events for an employee within
	// [from, to], ordered by date then time.
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error)
}

// ShiftPolicyRepository resolves expected schedules from the shift store.
type ShiftPolicyRepository interface {
	// GetRange returns the resolvable shift policies for an employee within
	// [from, to], keyed by date in YYYY-MM-DD form. Dates with no policy are
	// simply absent from the map.
	GetRange(ctx context.Context, employeeID string, from, to time.Time) (map[string]ShiftPolicy, error)
}
