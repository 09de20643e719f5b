package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/employee"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// ListWithAllowance implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListWithAllowance(ctx context.Context, month, year int) ([]employee.PeriodAllowance, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.nip, e.name, e.job_title, e.location, e.active, a.amount
		FROM employees e
		JOIN employee_allowances a ON a.employee_id = e.id
		WHERE e.active = TRUE AND a.period_month = $1 AND a.period_year = $2
		ORDER BY e.nip
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with allowance: %w", err)
	}
	defer rows.Close()

	var result []employee.PeriodAllowance
	for rows.Next() {
		var pa employee.PeriodAllowance
		err := rows.Scan(
			&pa.Employee.ID, &pa.Employee.NIP, &pa.Employee.Name,
			&pa.Employee.JobTitle, &pa.Employee.Location, &pa.Employee.Active,
			&pa.Allowance,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, pa)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetWithAllowance implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetWithAllowance(ctx context.Context, employeeID string, month, year int) (employee.PeriodAllowance, error) {
	q := GetQuerier(ctx, e.db)

	var pa employee.PeriodAllowance

	query := `
		SELECT id, nip, name, job_title, location, active
		FROM employees
		WHERE id = $1
	`

	err := q.QueryRow(ctx, query, employeeID).Scan(
		&pa.Employee.ID, &pa.Employee.NIP, &pa.Employee.Name,
		&pa.Employee.JobTitle, &pa.Employee.Location, &pa.Employee.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.PeriodAllowance{}, employee.ErrEmployeeNotFound
		}
		return employee.PeriodAllowance{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}

	allowanceQuery := `
		SELECT amount
		FROM employee_allowances
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	err = q.QueryRow(ctx, allowanceQuery, employeeID, month, year).Scan(&pa.Allowance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.PeriodAllowance{}, employee.ErrNoAllowanceFound
		}
		return employee.PeriodAllowance{}, fmt.Errorf("failed to get allowance for employee %s: %w", employeeID, err)
	}

	return pa, nil
}
