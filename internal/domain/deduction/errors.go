package deduction

import "errors"

var (
	// ErrInvalidRuleCatalog means no active rule matches a bracket that by
	// policy must have one. Fatal for that employee's report line; must not
	// abort the rest of the period batch.
	ErrInvalidRuleCatalog = errors.New("no active deduction rule matches required category/bracket")

	// ErrNegativeAllowance is an input validation failure, rejected before
	// any computation starts.
	ErrNegativeAllowance = errors.New("allowance base must not be negative")
)
