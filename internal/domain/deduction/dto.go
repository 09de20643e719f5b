package deduction

import (
	"github.com/shopspring/decimal"
)

// RuleResponse is the read-only catalog entry exposed over HTTP.
type RuleResponse struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Percentage  decimal.Decimal `json:"percentage"`
	Category    Category        `json:"category"`
	Bracket     LatenessBracket `json:"bracket,omitempty"`
}
