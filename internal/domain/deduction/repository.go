package deduction

import (
	"context"
)

// RuleRepository is the deduction rule catalog provider.
type RuleRepository interface {
	// ListActive returns the active rules ordered by code.
	ListActive(ctx context.Context) ([]Rule, error)
}

// OtherDeductionRepository returns administrative deduction percentages for
// an employee/period, used only as an additive input to the capper.
type OtherDeductionRepository interface {
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]OtherDeduction, error)
}
