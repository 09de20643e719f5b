package postgresql

import (
	"context"
	"fmt"

	"github.com/simpeg-app/tukin-backend-go/internal/domain/deduction"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/database"
)

type ruleRepositoryImpl struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) deduction.RuleRepository {
	return &ruleRepositoryImpl{db: db}
}

// ListActive implements deduction.RuleRepository.
func (r *ruleRepositoryImpl) ListActive(ctx context.Context) ([]deduction.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, name, description, percentage, category, COALESCE(bracket, ''), active
		FROM deduction_rules
		WHERE active = TRUE
		ORDER BY code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active deduction rules: %w", err)
	}
	defer rows.Close()

	var rules []deduction.Rule
	for rows.Next() {
		var rule deduction.Rule
		err := rows.Scan(
			&rule.Code, &rule.Name, &rule.Description, &rule.Percentage,
			&rule.Category, &rule.Bracket, &rule.Active,
		)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

type otherDeductionRepositoryImpl struct {
	db *database.DB
}

func NewOtherDeductionRepository(db *database.DB) deduction.OtherDeductionRepository {
	return &otherDeductionRepositoryImpl{db: db}
}

// ListByEmployeePeriod implements deduction.OtherDeductionRepository.
func (r *otherDeductionRepositoryImpl) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]deduction.OtherDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, name, percentage
		FROM other_deductions
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
		ORDER BY code
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list other deductions for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var deductions []deduction.OtherDeduction
	for rows.Next() {
		var d deduction.OtherDeduction
		if err := rows.Scan(&d.Code, &d.Name, &d.Percentage); err != nil {
			return nil, err
		}
		deductions = append(deductions, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deductions, nil
}
