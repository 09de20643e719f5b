package deduction

import (
	"context"
)

// RuleCatalogService serves the deduction rule catalog as reference data.
type RuleCatalogService interface {
	// ListActiveRules returns the active catalog entries ordered by code.
	ListActiveRules(ctx context.Context) ([]RuleResponse, error)
}
