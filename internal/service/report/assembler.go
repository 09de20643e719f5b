package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/employee"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/report"
	"github.com/simpeg-app/tukin-backend-go/internal/service/tukin"
)

// buildLine combines aggregator and capper output into the human-facing
// report line. Pure assembly; all monetary computation already happened.
func buildLine(pa employee.PeriodAllowance, ledger tukin.Ledger, capped tukin.CappedResult) report.DeductionReportLine {
	line := report.DeductionReportLine{
		EmployeeID: pa.Employee.ID,
		NIP:        pa.Employee.NIP,
		Name:       pa.Employee.Name,
		JobTitle:   pa.Employee.JobTitle,
		Location:   pa.Employee.Location,
		Status:     report.LineOK,

		Allowance:            pa.Allowance,
		MaxPossibleDeduction: capped.MaxPossibleDeduction,
		UncappedPercent:      ledger.UncappedPercent,
		AttendanceDeduction:  capped.AttendanceNominal,
		OtherDeduction:       capped.OtherNominal,
		TotalDeduction:       capped.TotalDeduction,
		NetAllowance:         capped.NetAllowance,

		IsAttendanceCapped:      capped.IsAttendanceCapped,
		IsOtherDeductionsCapped: capped.IsOtherDeductionsCapped,
		IsTotalCapped:           capped.IsTotalCapped,

		Warnings: ledger.Warnings,
	}

	for _, entry := range ledger.Entries {
		dates := make([]string, 0, len(entry.Dates))
		for _, d := range entry.Dates {
			dates = append(dates, d.Format("2006-01-02"))
		}
		line.Breakdown = append(line.Breakdown, report.RuleBreakdown{
			RuleCode:    entry.Rule.Code,
			RuleName:    entry.Rule.Name,
			Description: entry.Rule.Description,
			Percentage:  entry.Rule.Percentage,
			Count:       entry.Count,
			Nominal:     entry.Nominal,
			Dates:       dates,
		})
	}

	for _, other := range capped.Others {
		line.Breakdown = append(line.Breakdown, report.RuleBreakdown{
			RuleCode:   other.Deduction.Code,
			RuleName:   other.Deduction.Name,
			Percentage: other.Deduction.Percentage,
			Count:      1,
			Nominal:    other.Nominal,
		})
	}

	for _, day := range ledger.Days {
		line.History = append(line.History, buildDayRecord(day))
	}

	return line
}

func buildDayRecord(day tukin.DayResult) report.DayRecord {
	rec := report.DayRecord{
		Date:            day.Date.Format("2006-01-02"),
		Status:          string(day.Status),
		MinutesLate:     day.MinutesLate,
		MinutesEarly:    day.MinutesEarly,
		OvertimeMinutes: day.OvertimeMinutes,
		Deducted:        day.Deducted,
		Anomalies:       day.Anomalies,
	}

	rec.CheckIn = formatClock(day.CheckIn)
	rec.CheckOut = formatClock(day.CheckOut)
	if day.Policy != nil {
		expectedIn := day.Policy.ExpectedArrival.Format("15:04")
		rec.ExpectedIn = &expectedIn
		if day.Policy.ExpectedDeparture != nil {
			expectedOut := day.Policy.ExpectedDeparture.Format("15:04")
			rec.ExpectedOut = &expectedOut
		}
	}

	return rec
}

// failedLine produces a line whose amounts are all zero so batch totals stay
// exact while the failure stays visible.
func failedLine(pa employee.PeriodAllowance, reason string) report.DeductionReportLine {
	return report.DeductionReportLine{
		EmployeeID:    pa.Employee.ID,
		NIP:           pa.Employee.NIP,
		Name:          pa.Employee.Name,
		JobTitle:      pa.Employee.JobTitle,
		Location:      pa.Employee.Location,
		Status:        report.LineFailed,
		FailureReason: reason,

		Allowance:            decimal.Zero,
		MaxPossibleDeduction: decimal.Zero,
		UncappedPercent:      decimal.Zero,
		AttendanceDeduction:  decimal.Zero,
		OtherDeduction:       decimal.Zero,
		TotalDeduction:       decimal.Zero,
		NetAllowance:         decimal.Zero,
	}
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
