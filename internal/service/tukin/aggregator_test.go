package tukin

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/attendance"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/calendar"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/deduction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures use June 2025: the 1st is a Sunday, the 2nd a Monday.

func juneDate(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func juneClock(day, hour, minute int) time.Time {
	return time.Date(2025, 6, day, hour, minute, 0, 0, time.UTC)
}

func junePolicy(day int) attendance.ShiftPolicy {
	out := juneClock(day, 16, 30)
	return attendance.ShiftPolicy{
		ExpectedArrival:   juneClock(day, 8, 0),
		ExpectedDeparture: &out,
		LocationMode:      attendance.LocationLocked,
	}
}

func testRules() []deduction.Rule {
	return []deduction.Rule{
		{Code: "TL2", Name: "Terlambat 31-90 menit", Percentage: decimal.RequireFromString("1.25"), Category: deduction.CategoryLate, Bracket: deduction.BracketCompensable, Active: true},
		{Code: "TL3", Name: "Terlambat lebih dari 90 menit", Percentage: decimal.RequireFromString("2.5"), Category: deduction.CategoryLate, Bracket: deduction.BracketUncompensable, Active: true},
		{Code: "PSW", Name: "Pulang sebelum waktunya", Percentage: decimal.RequireFromString("1.25"), Category: deduction.CategoryEarlyDeparture, Active: true},
		{Code: "ABS", Name: "Tidak hadir tanpa keterangan", Percentage: decimal.NewFromInt(5), Category: deduction.CategoryAbsence, Active: true},
	}
}

// holidaysExceptJune marks every June 2025 business day a holiday except the
// listed ones, so a test only classifies the days it cares about.
func holidaysExceptJune(keep ...int) calendar.DaySet {
	keepSet := make(map[int]bool, len(keep))
	for _, d := range keep {
		keepSet[d] = true
	}
	set := calendar.DaySet{}
	for d := 1; d <= 30; d++ {
		date := juneDate(d)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		if !keepSet[d] {
			set[date.Format("2006-01-02")] = true
		}
	}
	return set
}

func baseInput(keepDays ...int) AggregateInput {
	policies := make(map[string]attendance.ShiftPolicy)
	for _, d := range keepDays {
		policies[juneDate(d).Format("2006-01-02")] = junePolicy(d)
	}
	return AggregateInput{
		PeriodMonth:  6,
		PeriodYear:   2025,
		Policies:     policies,
		Rules:        testRules(),
		LeaveDates:   calendar.DaySet{},
		HolidayDates: holidaysExceptJune(keepDays...),
		Allowance:    decimal.NewFromInt(1_000_000),
	}
}

func punch(day int, kind attendance.EventKind, hour, minute int) attendance.Event {
	return attendance.Event{
		EmployeeID: "emp-1",
		Date:       juneDate(day),
		Time:       juneClock(day, hour, minute),
		Kind:       kind,
	}
}

func TestAggregate_FullyCompensatedLateHasNoDeduction(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	// 60 minutes late, 60 minutes of overtime: required offset met exactly.
	in.Events = []attendance.Event{
		punch(2, attendance.EventArrival, 9, 0),
		punch(2, attendance.EventDeparture, 17, 30),
	}

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	assert.Empty(t, ledger.Entries)
	assert.True(t, ledger.UncappedPercent.IsZero())
	require.Len(t, ledger.Days, 1)
	assert.False(t, ledger.Days[0].Deducted)
}

func TestAggregate_UncompensatedLateMatchesCompensableRule(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	in.Events = []attendance.Event{
		punch(2, attendance.EventArrival, 9, 0),
		punch(2, attendance.EventDeparture, 16, 30),
	}

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	require.Len(t, ledger.Entries, 1)
	entry := ledger.Entries[0]
	assert.Equal(t, "TL2", entry.Rule.Code)
	assert.Equal(t, 1, entry.Count)
	// 1.25% of 1,000,000
	assert.True(t, entry.Nominal.Equal(decimal.NewFromInt(12_500)), "nominal = %s", entry.Nominal)
	assert.True(t, ledger.UncappedPercent.Equal(decimal.RequireFromString("1.25")))
	assert.True(t, ledger.Days[0].Deducted)
}

func TestAggregate_UncompensableLateIgnoresOvertime(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	// Two hours late; massive overtime must not help.
	in.Events = []attendance.Event{
		punch(2, attendance.EventArrival, 10, 0),
		punch(2, attendance.EventDeparture, 21, 0),
	}

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	require.Len(t, ledger.Entries, 1)
	assert.Equal(t, "TL3", ledger.Entries[0].Rule.Code)
	assert.True(t, ledger.Entries[0].Nominal.Equal(decimal.NewFromInt(25_000)))
}

func TestAggregate_LateAndEarlySameDayTriggerBothRules(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	in.Events = []attendance.Event{
		punch(2, attendance.EventArrival, 9, 45), // 105 late, uncompensable
		punch(2, attendance.EventDeparture, 16, 0),
	}

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	require.Len(t, ledger.Entries, 2)
	// Ordered by rule code.
	assert.Equal(t, "PSW", ledger.Entries[0].Rule.Code)
	assert.Equal(t, "TL3", ledger.Entries[1].Rule.Code)
	assert.True(t, ledger.UncappedPercent.Equal(decimal.RequireFromString("3.75")))
}

func TestAggregate_AbsentWeekday(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	in.Events = nil

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	require.Len(t, ledger.Entries, 1)
	assert.Equal(t, "ABS", ledger.Entries[0].Rule.Code)
	assert.True(t, ledger.Entries[0].Nominal.Equal(decimal.NewFromInt(50_000)))
	assert.Equal(t, attendance.StatusAbsent, ledger.Days[0].Status)
}

func TestAggregate_ApprovedLeaveExcludesDay(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	in.Events = nil
	in.LeaveDates = calendar.DaySet{"2025-06-02": true}

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	assert.Empty(t, ledger.Entries)
	assert.Empty(t, ledger.Days)
}

func TestAggregate_WeekendNeverClassified(t *testing.T) {
	t.Parallel()

	// Keep no business days: every classified day would be a weekend.
	in := baseInput()
	// Saturday punch must be ignored entirely.
	in.Events = []attendance.Event{punch(7, attendance.EventArrival, 8, 0)}

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	assert.Empty(t, ledger.Days)
	assert.Empty(t, ledger.Entries)
}

func TestAggregate_MissingPolicyExcludesDayWithWarning(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	delete(in.Policies, "2025-06-02")
	in.Events = nil

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	assert.Empty(t, ledger.Entries)
	require.Len(t, ledger.Warnings, 1)
	assert.Contains(t, ledger.Warnings[0], "2025-06-02")
	require.Len(t, ledger.Days, 1)
	assert.True(t, ledger.Days[0].MissingPolicy)
	assert.False(t, ledger.Days[0].Deducted)
}

func TestAggregate_NegativeAllowanceRejected(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	in.Allowance = decimal.NewFromInt(-1)

	_, err := Aggregate(in)
	assert.ErrorIs(t, err, deduction.ErrNegativeAllowance)
}

func TestAggregate_MissingAbsenceRuleFailsCatalog(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	in.Events = nil
	var rules []deduction.Rule
	for _, r := range testRules() {
		if r.Category != deduction.CategoryAbsence {
			rules = append(rules, r)
		}
	}
	in.Rules = rules

	_, err := Aggregate(in)
	assert.ErrorIs(t, err, deduction.ErrInvalidRuleCatalog)
}

func TestAggregate_InactiveRulesIgnored(t *testing.T) {
	t.Parallel()

	in := baseInput(2)
	in.Events = nil
	rules := testRules()
	for i := range rules {
		if rules[i].Category == deduction.CategoryAbsence {
			rules[i].Active = false
		}
	}
	in.Rules = rules

	_, err := Aggregate(in)
	assert.ErrorIs(t, err, deduction.ErrInvalidRuleCatalog)
}

func TestAggregate_PerOccurrenceRounding(t *testing.T) {
	t.Parallel()

	in := baseInput(2, 3, 4)
	// Three uncompensated late days at 1.25% of 333.33: each occurrence is
	// rounded on its own (4.166625 -> 4.17), giving 12.51 rather than the
	// 12.50 a single end-of-month rounding would produce.
	in.Allowance = decimal.RequireFromString("333.33")
	in.Events = []attendance.Event{
		punch(2, attendance.EventArrival, 9, 0),
		punch(3, attendance.EventArrival, 9, 0),
		punch(4, attendance.EventArrival, 9, 0),
	}

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	require.Len(t, ledger.Entries, 1)
	entry := ledger.Entries[0]
	assert.Equal(t, 3, entry.Count)
	assert.True(t, entry.Nominal.Equal(decimal.RequireFromString("12.51")), "nominal = %s", entry.Nominal)
}

func TestAggregate_LedgerNominalMatchesPercentWithinRounding(t *testing.T) {
	t.Parallel()

	in := baseInput(2, 3, 4, 5)
	in.Allowance = decimal.RequireFromString("987654.33")
	in.Events = []attendance.Event{
		punch(2, attendance.EventArrival, 9, 0),   // TL2
		punch(3, attendance.EventArrival, 10, 30), // TL3
		// day 4 absent
		punch(5, attendance.EventArrival, 8, 0),
		punch(5, attendance.EventDeparture, 15, 0), // PSW
	}

	ledger, err := Aggregate(in)
	require.NoError(t, err)

	expected := ledger.UncappedPercent.Mul(in.Allowance).Div(decimal.NewFromInt(100))
	drift := ledger.AttendanceNominal.Sub(expected).Abs()
	occurrences := 0
	for _, e := range ledger.Entries {
		occurrences += e.Count
	}
	// At most one cent of drift per rounded occurrence.
	maxDrift := decimal.New(int64(occurrences), -2)
	assert.True(t, drift.LessThanOrEqual(maxDrift), "drift = %s", drift)
}

func TestAggregate_LatenessMonotonicity(t *testing.T) {
	t.Parallel()

	// Holding compensation fixed at zero, more lateness never matches a
	// smaller percentage.
	previous := decimal.Zero
	for _, minutes := range []int{10, 31, 60, 90, 91, 180} {
		in := baseInput(2)
		in.Events = []attendance.Event{
			punch(2, attendance.EventArrival, 8, 0),
		}
		in.Events[0].Time = juneClock(2, 8, 0).Add(time.Duration(minutes) * time.Minute)

		ledger, err := Aggregate(in)
		require.NoError(t, err)

		assert.True(t, ledger.UncappedPercent.GreaterThanOrEqual(previous),
			"minutes=%d percent=%s previous=%s", minutes, ledger.UncappedPercent, previous)
		previous = ledger.UncappedPercent
	}
}
