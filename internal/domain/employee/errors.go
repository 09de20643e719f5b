package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoAllowanceFound = errors.New("no allowance base found for employee in period")
)
