package employee

import (
	"context"
)

// EmployeeRepository is the employee/allowance provider contract. It returns
// identity plus the monetary allowance base for a period; master data CRUD
// lives in the personnel system, not here.
type EmployeeRepository interface {
	// ListWithAllowance returns all active employees together with their
	// allowance base for the given period, ordered by NIP.
	ListWithAllowance(ctx context.Context, month, year int) ([]PeriodAllowance, error)

	// GetWithAllowance returns one employee with the allowance base for the
	// given period. Returns ErrEmployeeNotFound or ErrNoAllowanceFound.
	GetWithAllowance(ctx context.Context, employeeID string, month, year int) (PeriodAllowance, error)
}
