package tukin

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/attendance"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/calendar"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/deduction"
)

var hundred = decimal.NewFromInt(100)

// AggregateInput carries one employee-month of pre-fetched data. Everything
// is an in-memory snapshot; Aggregate performs no I/O.
type AggregateInput struct {
	PeriodMonth int
	PeriodYear  int
	Events      []attendance.Event
	// Policies is keyed by date (YYYY-MM-DD). Dates missing a policy are
	// excluded from aggregation with a warning.
	Policies     map[string]attendance.ShiftPolicy
	Rules        []deduction.Rule
	LeaveDates   calendar.DaySet
	HolidayDates calendar.DaySet
	Allowance    decimal.Decimal
}

// LedgerEntry accumulates the occurrences of one deduction rule.
type LedgerEntry struct {
	Rule    deduction.Rule
	Dates   []time.Time
	Count   int
	Nominal decimal.Decimal
}

// Ledger is the per-employee-month aggregation result, built fresh on every
// report generation and consumed by the capper and assembler.
type Ledger struct {
	Entries           []LedgerEntry // ordered by rule code
	UncappedPercent   decimal.Decimal
	AttendanceNominal decimal.Decimal
	Days              []DayResult
	Warnings          []string
}

// ruleIndex resolves the applicable rule for each classification outcome.
type ruleIndex struct {
	lateByBracket map[deduction.LatenessBracket]deduction.Rule
	earlyRule     *deduction.Rule
	absenceRule   *deduction.Rule
}

func buildRuleIndex(rules []deduction.Rule) ruleIndex {
	idx := ruleIndex{lateByBracket: make(map[deduction.LatenessBracket]deduction.Rule)}
	for i := range rules {
		r := rules[i]
		if !r.Active {
			continue
		}
		switch r.Category {
		case deduction.CategoryLate:
			if _, ok := idx.lateByBracket[r.Bracket]; !ok {
				idx.lateByBracket[r.Bracket] = r
			}
		case deduction.CategoryEarlyDeparture:
			if idx.earlyRule == nil {
				idx.earlyRule = &rules[i]
			}
		case deduction.CategoryAbsence:
			if idx.absenceRule == nil {
				idx.absenceRule = &rules[i]
			}
		}
	}
	return idx
}

// Aggregate folds one employee's month of events into category counts and a
// running deduction percentage. Deterministic given identical inputs.
func Aggregate(in AggregateInput) (Ledger, error) {
	if in.Allowance.IsNegative() {
		return Ledger{}, deduction.ErrNegativeAllowance
	}

	idx := buildRuleIndex(in.Rules)
	eventsByDate := groupEventsByDate(in.Events)

	ledger := Ledger{
		UncappedPercent:   decimal.Zero,
		AttendanceNominal: decimal.Zero,
	}
	entries := make(map[string]*LedgerEntry)

	first := time.Date(in.PeriodYear, time.Month(in.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)
	for date := first; date.Month() == first.Month(); date = date.AddDate(0, 0, 1) {
		key := date.Format("2006-01-02")

		// Weekends, approved whole-day leave and holidays are excluded
		// entirely: no status, no deduction.
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		if in.HolidayDates.Contains(date) || in.LeaveDates.Contains(date) {
			continue
		}

		var policy *attendance.ShiftPolicy
		if p, ok := in.Policies[key]; ok {
			policy = &p
		}

		day := ClassifyDay(date, eventsByDate[key], policy)
		if day.MissingPolicy {
			ledger.Warnings = append(ledger.Warnings, fmt.Sprintf("%s: no shift policy, day excluded from deduction", key))
			ledger.Days = append(ledger.Days, day)
			continue
		}

		matched, err := matchRules(idx, &day)
		if err != nil {
			return Ledger{}, err
		}

		for _, rule := range matched {
			day.Deducted = true
			entry, ok := entries[rule.Code]
			if !ok {
				entry = &LedgerEntry{Rule: rule, Nominal: decimal.Zero}
				entries[rule.Code] = entry
			}
			entry.Count++
			entry.Dates = append(entry.Dates, date)
			// Per-occurrence billing: each occurrence is rounded on its
			// own, never once at the end.
			entry.Nominal = entry.Nominal.Add(occurrenceNominal(rule, in.Allowance))
			ledger.UncappedPercent = ledger.UncappedPercent.Add(rule.Percentage)
		}

		ledger.Days = append(ledger.Days, day)
	}

	codes := make([]string, 0, len(entries))
	for code := range entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		ledger.Entries = append(ledger.Entries, *entries[code])
		ledger.AttendanceNominal = ledger.AttendanceNominal.Add(entries[code].Nominal)
	}

	return ledger, nil
}

// matchRules maps one classified day to the deduction rules it triggers.
// A late arrival and an early departure on the same day each trigger their
// own rule.
func matchRules(idx ruleIndex, day *DayResult) ([]deduction.Rule, error) {
	var matched []deduction.Rule

	if day.Status == attendance.StatusAbsent {
		if idx.absenceRule == nil {
			return nil, deduction.ErrInvalidRuleCatalog
		}
		return []deduction.Rule{*idx.absenceRule}, nil
	}

	if day.MinutesLate > 0 {
		switch bracket := deduction.BracketFor(day.MinutesLate); bracket {
		case deduction.BracketTolerated:
			// Zero penalty by policy.
		case deduction.BracketCompensable:
			_, residual := Compensate(day.MinutesLate, day.OvertimeMinutes)
			if residual > 0 {
				rule, ok := idx.lateByBracket[deduction.BracketCompensable]
				if !ok {
					return nil, deduction.ErrInvalidRuleCatalog
				}
				matched = append(matched, rule)
			}
		case deduction.BracketUncompensable:
			rule, ok := idx.lateByBracket[deduction.BracketUncompensable]
			if !ok {
				return nil, deduction.ErrInvalidRuleCatalog
			}
			matched = append(matched, rule)
		}
	}

	if day.MinutesEarly > 0 {
		if idx.earlyRule == nil {
			return nil, deduction.ErrInvalidRuleCatalog
		}
		matched = append(matched, *idx.earlyRule)
	}

	return matched, nil
}

// occurrenceNominal is the money amount of one rule occurrence: percentage
// of the allowance, rounded half-up to two decimals.
func occurrenceNominal(rule deduction.Rule, allowance decimal.Decimal) decimal.Decimal {
	return allowance.Mul(rule.Percentage).Div(hundred).Round(2)
}

func groupEventsByDate(events []attendance.Event) map[string][]attendance.Event {
	byDate := make(map[string][]attendance.Event)
	for _, ev := range events {
		key := ev.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], ev)
	}
	return byDate
}
