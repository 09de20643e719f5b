package deduction

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryLate           Category = "late"
	CategoryEarlyDeparture Category = "early_departure"
	CategoryAbsence        Category = "absence"
)

// Rule is one catalog entry: a named percentage penalty against the
// allowance base. Rules are immutable reference data; the engine only reads
// active ones.
type Rule struct {
	Code        string
	Name        string
	Description string
	Percentage  decimal.Decimal // 0-100, two decimal places
	Category    Category
	Bracket     LatenessBracket // set for late rules only
	Active      bool
}

// OtherDeduction is an administrative percentage penalty unrelated to
// attendance (a pemotongan record), additive against the same allowance
// base and bounded by the same ceiling.
type OtherDeduction struct {
	Code       string
	Name       string
	Percentage decimal.Decimal
}
