package deduction

import (
	"context"
	"fmt"

	"github.com/simpeg-app/tukin-backend-go/internal/domain/deduction"
)

type RuleCatalogServiceImpl struct {
	ruleRepo deduction.RuleRepository
}

func NewRuleCatalogService(ruleRepo deduction.RuleRepository) deduction.RuleCatalogService {
	return &RuleCatalogServiceImpl{ruleRepo: ruleRepo}
}

// ListActiveRules implements deduction.RuleCatalogService.
func (s *RuleCatalogServiceImpl) ListActiveRules(ctx context.Context) ([]deduction.RuleResponse, error) {
	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active deduction rules: %w", err)
	}

	responses := make([]deduction.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, mapToRuleResponse(rule))
	}

	return responses, nil
}

func mapToRuleResponse(rule deduction.Rule) deduction.RuleResponse {
	return deduction.RuleResponse{
		Code:        rule.Code,
		Name:        rule.Name,
		Description: rule.Description,
		Percentage:  rule.Percentage,
		Category:    rule.Category,
		Bracket:     rule.Bracket,
	}
}
