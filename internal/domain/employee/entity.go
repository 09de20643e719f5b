package employee

import (
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID       string
	NIP      string
	Name     string
	JobTitle string
	Location string
	Active   bool
}

// PeriodAllowance pairs an employee with the tukin base amount granted for
// one reporting period. The amount is reference data supplied by the
// allowance provider; the engine never modifies it.
type PeriodAllowance struct {
	Employee  Employee
	Allowance decimal.Decimal
}
