package tukin

import (
	"github.com/shopspring/decimal"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/deduction"
)

// MaxDeductionPercent is the policy ceiling: total deduction never exceeds
// this share of the allowance base.
var MaxDeductionPercent = decimal.NewFromInt(60)

// OtherEntry is one administrative deduction with its computed nominal.
type OtherEntry struct {
	Deduction deduction.OtherDeduction
	Nominal   decimal.Decimal
}

// CappedResult is the output of the deduction capper. The three capped
// flags are independent booleans; presentation decides what to surface.
type CappedResult struct {
	MaxPossibleDeduction decimal.Decimal

	// Raw sums before clamping.
	RawAttendanceNominal decimal.Decimal
	RawOtherNominal      decimal.Decimal

	// Clamped sub-totals and combined total. The clamp is monetary, not a
	// percentage clamp.
	AttendanceNominal decimal.Decimal
	OtherNominal      decimal.Decimal
	TotalDeduction    decimal.Decimal
	NetAllowance      decimal.Decimal

	IsAttendanceCapped      bool
	IsOtherDeductionsCapped bool
	IsTotalCapped           bool

	Others []OtherEntry
}

// Cap enforces the maximum-possible-deduction ceiling over the attendance
// ledger plus any administrative deductions against the same allowance base.
func Cap(ledger Ledger, others []deduction.OtherDeduction, allowance decimal.Decimal) CappedResult {
	maxPossible := allowance.Mul(MaxDeductionPercent).Div(hundred).Round(2)

	otherNominal := decimal.Zero
	otherEntries := make([]OtherEntry, 0, len(others))
	for _, od := range others {
		nominal := allowance.Mul(od.Percentage).Div(hundred).Round(2)
		otherEntries = append(otherEntries, OtherEntry{Deduction: od, Nominal: nominal})
		otherNominal = otherNominal.Add(nominal)
	}

	result := CappedResult{
		MaxPossibleDeduction: maxPossible,
		RawAttendanceNominal: ledger.AttendanceNominal,
		RawOtherNominal:      otherNominal,
		AttendanceNominal:    ledger.AttendanceNominal,
		OtherNominal:         otherNominal,
		Others:               otherEntries,
	}

	if result.AttendanceNominal.GreaterThan(maxPossible) {
		result.IsAttendanceCapped = true
		result.AttendanceNominal = maxPossible
	}
	if result.OtherNominal.GreaterThan(maxPossible) {
		result.IsOtherDeductionsCapped = true
		result.OtherNominal = maxPossible
	}

	combined := result.RawAttendanceNominal.Add(result.RawOtherNominal)
	result.TotalDeduction = combined
	if combined.GreaterThan(maxPossible) {
		result.IsTotalCapped = true
		result.TotalDeduction = maxPossible
	}

	// The ceiling bounds the combined deduction, so the net allowance can
	// never go negative.
	result.NetAllowance = allowance.Sub(result.TotalDeduction)

	return result
}
