package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineStatus marks whether a per-employee computation succeeded. A FAILED
// line keeps its reason visible without losing the rest of the batch.
type LineStatus string

const (
	LineOK     LineStatus = "OK"
	LineFailed LineStatus = "FAILED"
)

// RuleBreakdown is one triggered deduction rule on a report line.
type RuleBreakdown struct {
	RuleCode    string          `json:"rule_code"`
	RuleName    string          `json:"rule_name"`
	Description string          `json:"description"`
	Percentage  decimal.Decimal `json:"percentage"`
	Count       int             `json:"count"`
	Nominal     decimal.Decimal `json:"nominal"`
	Dates       []string        `json:"dates"`
}

// DayRecord is one attendance day in the report history.
type DayRecord struct {
	Date            string   `json:"date"`
	Status          string   `json:"status"`
	CheckIn         *string  `json:"check_in,omitempty"`
	CheckOut        *string  `json:"check_out,omitempty"`
	ExpectedIn      *string  `json:"expected_in,omitempty"`
	ExpectedOut     *string  `json:"expected_out,omitempty"`
	MinutesLate     int      `json:"minutes_late"`
	MinutesEarly    int      `json:"minutes_early"`
	OvertimeMinutes int      `json:"overtime_minutes"`
	Deducted        bool     `json:"deducted"`
	Anomalies       []string `json:"anomalies,omitempty"`
}

// DeductionReportLine is the final per-employee output. A regeneration
// produces a new line; existing lines are never patched.
type DeductionReportLine struct {
	EmployeeID    string     `json:"employee_id"`
	NIP           string     `json:"nip"`
	Name          string     `json:"name"`
	JobTitle      string     `json:"job_title"`
	Location      string     `json:"location"`
	Status        LineStatus `json:"status"`
	FailureReason string     `json:"failure_reason,omitempty"`

	Allowance            decimal.Decimal `json:"allowance"`
	MaxPossibleDeduction decimal.Decimal `json:"max_possible_deduction"`
	UncappedPercent      decimal.Decimal `json:"uncapped_percent"`
	AttendanceDeduction  decimal.Decimal `json:"attendance_deduction"`
	OtherDeduction       decimal.Decimal `json:"other_deduction"`
	TotalDeduction       decimal.Decimal `json:"total_deduction"`
	NetAllowance         decimal.Decimal `json:"net_allowance"`

	IsAttendanceCapped      bool `json:"is_attendance_capped"`
	IsOtherDeductionsCapped bool `json:"is_other_deductions_capped"`
	IsTotalCapped           bool `json:"is_total_capped"`

	Breakdown []RuleBreakdown `json:"breakdown"`
	History   []DayRecord     `json:"history"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// PeriodReport is the immutable report snapshot (laporan tukin) for one
// month, persisted as a whole by the report sink.
type PeriodReport struct {
	ID          string    `json:"id"`
	PeriodMonth int       `json:"period_month"`
	PeriodYear  int       `json:"period_year"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalEmployees           int             `json:"total_employees"`
	TotalAllowance           decimal.Decimal `json:"total_allowance"`
	TotalAttendanceDeduction decimal.Decimal `json:"total_attendance_deduction"`
	TotalOtherDeduction      decimal.Decimal `json:"total_other_deduction"`
	TotalDeduction           decimal.Decimal `json:"total_deduction"`
	TotalNet                 decimal.Decimal `json:"total_net"`

	Lines []DeductionReportLine `json:"lines"`
}
