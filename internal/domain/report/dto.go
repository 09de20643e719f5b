package report

import (
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/validator"
)

type GenerateReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
