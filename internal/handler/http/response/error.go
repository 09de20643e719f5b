package response

import (
	"errors"
	"net/http"

	"github.com/simpeg-app/tukin-backend-go/internal/domain/deduction"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/employee"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/report"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoAllowanceFound):
		NotFound(w, "No allowance recorded for this period")

	// Deduction domain errors
	case errors.Is(err, deduction.ErrInvalidRuleCatalog):
		UnprocessableEntity(w, "Deduction rule catalog is incomplete")
	case errors.Is(err, deduction.ErrNegativeAllowance):
		UnprocessableEntity(w, "Allowance base must not be negative")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
