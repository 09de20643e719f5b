package attendance

import (
	"time"
)

type EventKind string

const (
	EventArrival   EventKind = "arrival"
	EventDeparture EventKind = "departure"
)

type LocationMode string

const (
	// LocationLocked means the punch must happen at the assigned location
	// (lock-lokasi). The distance check itself belongs to the capture flow.
	LocationLocked   LocationMode = "must-be-at-location"
	LocationAnywhere LocationMode = "anywhere"
)

// Event is one recorded punch. Events are immutable once captured; the
// engine only reads them.
type Event struct {
	ID             string
	EmployeeID     string
	Date           time.Time // working day, truncated to midnight
	Time           time.Time // wall-clock punch time on Date
	Kind           EventKind
	DistanceMeters *float64 // measured distance from the required location, if location-locked
}

// ShiftPolicy is the expected schedule for one employee on one date,
// resolved by the shift store.
type ShiftPolicy struct {
	ExpectedArrival   time.Time
	ExpectedDeparture *time.Time // nil when the shift has no fixed end
	LocationMode      LocationMode
}

// DayStatus is the terminal classification of one working day.
type DayStatus string

const (
	StatusOnTime         DayStatus = "ON_TIME"
	StatusLate           DayStatus = "LATE"
	StatusEarlyDeparture DayStatus = "EARLY_DEPARTURE"
	StatusAbsent         DayStatus = "ABSENT"
)
