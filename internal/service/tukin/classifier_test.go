package tukin

import (
	"testing"
	"time"

	"github.com/simpeg-app/tukin-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func clock(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func testPolicy() *attendance.ShiftPolicy {
	out := clock(16, 30)
	return &attendance.ShiftPolicy{
		ExpectedArrival:   clock(8, 0),
		ExpectedDeparture: &out,
		LocationMode:      attendance.LocationLocked,
	}
}

func arrival(t time.Time) attendance.Event {
	return attendance.Event{EmployeeID: "emp-1", Date: testDay, Time: t, Kind: attendance.EventArrival}
}

func departure(t time.Time) attendance.Event {
	return attendance.Event{EmployeeID: "emp-1", Date: testDay, Time: t, Kind: attendance.EventDeparture}
}

func TestClassifyDay_OnTime(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{arrival(clock(7, 55)), departure(clock(16, 30))}
	result := ClassifyDay(testDay, events, testPolicy())

	assert.Equal(t, attendance.StatusOnTime, result.Status)
	assert.Equal(t, 0, result.MinutesLate)
	assert.Equal(t, 0, result.MinutesEarly)
	assert.Equal(t, 0, result.OvertimeMinutes)
	assert.Empty(t, result.Anomalies)
}

func TestClassifyDay_ArrivalExactlyOnExpected(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{arrival(clock(8, 0))}
	result := ClassifyDay(testDay, events, testPolicy())

	assert.Equal(t, attendance.StatusOnTime, result.Status)
	assert.Equal(t, 0, result.MinutesLate)
}

func TestClassifyDay_LateMinutesFloored(t *testing.T) {
	t.Parallel()

	// 08:42:30 is 42 minutes 30 seconds late; floor to 42.
	late := time.Date(2025, 6, 2, 8, 42, 30, 0, time.UTC)
	events := []attendance.Event{arrival(late)}
	result := ClassifyDay(testDay, events, testPolicy())

	assert.Equal(t, attendance.StatusLate, result.Status)
	assert.Equal(t, 42, result.MinutesLate)
}

func TestClassifyDay_EarlyDeparture(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{arrival(clock(7, 58)), departure(clock(15, 45))}
	result := ClassifyDay(testDay, events, testPolicy())

	assert.Equal(t, attendance.StatusEarlyDeparture, result.Status)
	assert.Equal(t, 45, result.MinutesEarly)
	assert.Equal(t, 0, result.OvertimeMinutes)
}

func TestClassifyDay_DepartureAtOrAfterExpectedIsNotPenalized(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{arrival(clock(8, 0)), departure(clock(17, 45))}
	result := ClassifyDay(testDay, events, testPolicy())

	assert.Equal(t, attendance.StatusOnTime, result.Status)
	assert.Equal(t, 0, result.MinutesEarly)
	assert.Equal(t, 75, result.OvertimeMinutes)
}

func TestClassifyDay_LateAndEarlyBothRecorded(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{arrival(clock(9, 0)), departure(clock(16, 0))}
	result := ClassifyDay(testDay, events, testPolicy())

	// Dominant status is LATE but both deltas are kept for rule matching.
	assert.Equal(t, attendance.StatusLate, result.Status)
	assert.Equal(t, 60, result.MinutesLate)
	assert.Equal(t, 30, result.MinutesEarly)
}

func TestClassifyDay_NoEventsIsAbsent(t *testing.T) {
	t.Parallel()

	result := ClassifyDay(testDay, nil, testPolicy())

	assert.Equal(t, attendance.StatusAbsent, result.Status)
	assert.Nil(t, result.CheckIn)
	assert.Nil(t, result.CheckOut)
}

func TestClassifyDay_DepartureOnlyIsAbsent(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{departure(clock(16, 30))}
	result := ClassifyDay(testDay, events, testPolicy())

	assert.Equal(t, attendance.StatusAbsent, result.Status)
}

func TestClassifyDay_InconsistentPairFlagged(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{arrival(clock(10, 0)), departure(clock(9, 0))}
	result := ClassifyDay(testDay, events, testPolicy())

	// Day is still classified with best-effort deltas, but flagged.
	require.NotEmpty(t, result.Anomalies)
	assert.Contains(t, result.Anomalies[0], "before arrival")
	assert.Equal(t, attendance.StatusLate, result.Status)
	assert.Equal(t, 120, result.MinutesLate)
}

func TestClassifyDay_MissingPolicy(t *testing.T) {
	t.Parallel()

	events := []attendance.Event{arrival(clock(8, 0))}
	result := ClassifyDay(testDay, events, nil)

	assert.True(t, result.MissingPolicy)
	assert.NotEmpty(t, result.Anomalies)
}

func TestClassifyDay_MissingExpectedDeparture(t *testing.T) {
	t.Parallel()

	policy := &attendance.ShiftPolicy{
		ExpectedArrival: clock(8, 0),
		LocationMode:    attendance.LocationAnywhere,
	}
	events := []attendance.Event{arrival(clock(8, 40)), departure(clock(19, 0))}
	result := ClassifyDay(testDay, events, policy)

	// Conservative: without an expected departure, no overtime credit.
	assert.Equal(t, 0, result.OvertimeMinutes)
	assert.Equal(t, 0, result.MinutesEarly)
	assert.Contains(t, result.Anomalies[0], "no expected departure")
}
