package tukin

import (
	"fmt"
	"time"

	"github.com/simpeg-app/tukin-backend-go/internal/domain/attendance"
)

// DayResult is the classification outcome for one working day. It is a pure
// product of the day's events and the shift policy; leave and holiday
// exclusion happens before classification.
type DayResult struct {
	Date            time.Time
	Status          attendance.DayStatus
	MinutesLate     int
	MinutesEarly    int
	OvertimeMinutes int
	CheckIn         *time.Time
	CheckOut        *time.Time
	Policy          *attendance.ShiftPolicy
	MissingPolicy   bool
	Deducted        bool
	Anomalies       []string
}

// ClassifyDay classifies one employee day from its recorded events and the
// resolved shift policy. Passing a nil policy marks the day unclassifiable;
// it must then be excluded from aggregation with a warning.
func ClassifyDay(date time.Time, events []attendance.Event, policy *attendance.ShiftPolicy) DayResult {
	result := DayResult{
		Date:   date,
		Policy: policy,
	}

	if policy == nil {
		result.MissingPolicy = true
		result.Anomalies = append(result.Anomalies, "no shift policy resolvable for this date")
		return result
	}

	var arrival, departure *attendance.Event
	for i := range events {
		ev := events[i]
		switch ev.Kind {
		case attendance.EventArrival:
			// First arrival of the day wins.
			if arrival == nil {
				arrival = &events[i]
			}
		case attendance.EventDeparture:
			// Last departure of the day wins.
			departure = &events[i]
		}
	}

	// A day with no arrival event classifies as absent. Approved leave and
	// holidays never reach this point.
	if arrival == nil {
		result.Status = attendance.StatusAbsent
		return result
	}

	result.CheckIn = &arrival.Time
	if late := minutesBetween(policy.ExpectedArrival, arrival.Time); late > 0 {
		result.MinutesLate = late
	}

	if departure != nil {
		result.CheckOut = &departure.Time

		if departure.Time.Before(arrival.Time) {
			result.Anomalies = append(result.Anomalies, fmt.Sprintf(
				"departure %s recorded before arrival %s",
				departure.Time.Format("15:04"), arrival.Time.Format("15:04")))
		}

		if policy.ExpectedDeparture == nil {
			// Conservative: without an expected departure there is no
			// overtime credit and no early-departure penalty.
			result.Anomalies = append(result.Anomalies, "shift policy has no expected departure time")
		} else {
			expected := *policy.ExpectedDeparture
			if departure.Time.Before(expected) {
				result.MinutesEarly = minutesBetween(departure.Time, expected)
			} else {
				result.OvertimeMinutes = minutesBetween(expected, departure.Time)
			}
		}
	}

	switch {
	case result.MinutesLate > 0:
		result.Status = attendance.StatusLate
	case result.MinutesEarly > 0:
		result.Status = attendance.StatusEarlyDeparture
	default:
		result.Status = attendance.StatusOnTime
	}

	return result
}

// minutesBetween returns the whole minutes from a to b, floored, never
// negative.
func minutesBetween(a, b time.Time) int {
	d := b.Sub(a)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}
