package report

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/attendance"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/calendar"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/deduction"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/employee"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/report"
	"github.com/simpeg-app/tukin-backend-go/internal/service/tukin"
	"golang.org/x/sync/errgroup"
)

type TukinReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	eventRepo    attendance.EventRepository
	policyRepo   attendance.ShiftPolicyRepository
	calendarRepo calendar.CalendarRepository
	ruleRepo     deduction.RuleRepository
	otherRepo    deduction.OtherDeductionRepository
	reportRepo   report.ReportRepository
	maxWorkers   int
}

func NewTukinReportService(
	employeeRepo employee.EmployeeRepository,
	eventRepo attendance.EventRepository,
	policyRepo attendance.ShiftPolicyRepository,
	calendarRepo calendar.CalendarRepository,
	ruleRepo deduction.RuleRepository,
	otherRepo deduction.OtherDeductionRepository,
	reportRepo report.ReportRepository,
	maxWorkers int,
) report.TukinReportService {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	return &TukinReportServiceImpl{
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		policyRepo:   policyRepo,
		calendarRepo: calendarRepo,
		ruleRepo:     ruleRepo,
		otherRepo:    otherRepo,
		reportRepo:   reportRepo,
		maxWorkers:   maxWorkers,
	}
}

// Generate implements report.TukinReportService.
func (s *TukinReportServiceImpl) Generate(ctx context.Context, req report.GenerateReportRequest) (report.PeriodReport, error) {
	if err := req.Validate(); err != nil {
		return report.PeriodReport{}, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	employees, err := s.employeeRepo.ListWithAllowance(ctx, req.Month, req.Year)
	if err != nil {
		return report.PeriodReport{}, fmt.Errorf("failed to list employees with allowance: %w", err)
	}

	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return report.PeriodReport{}, fmt.Errorf("failed to load deduction rule catalog: %w", err)
	}

	holidays, err := s.calendarRepo.HolidayDates(ctx, from, to)
	if err != nil {
		return report.PeriodReport{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	// Fan out per employee. Each computation is independent; one bad
	// employee input becomes a FAILED line, never an aborted batch.
	lines := make([]report.DeductionReportLine, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for i := range employees {
		g.Go(func() error {
			// Cooperative cancellation at the employee boundary; an
			// in-flight computation runs to completion.
			if err := gctx.Err(); err != nil {
				lines[i] = failedLine(employees[i], fmt.Sprintf("cancelled: %v", err))
				return nil
			}
			lines[i] = s.computeLine(gctx, employees[i], req.Month, req.Year, from, to, rules, holidays)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return report.PeriodReport{}, err
	}

	rpt := assemblePeriod(req.Month, req.Year, lines)

	// The sink is fire-and-forget: a persistence failure must not discard an
	// already assembled report.
	if err := s.reportRepo.Save(ctx, rpt); err != nil {
		slog.Error("failed to persist report snapshot",
			"report_id", rpt.ID, "month", req.Month, "year", req.Year, "error", err)
	}

	return rpt, nil
}

// GenerateEmployeeLine implements report.TukinReportService.
func (s *TukinReportServiceImpl) GenerateEmployeeLine(ctx context.Context, employeeID string, month, year int) (report.DeductionReportLine, error) {
	req := report.GenerateReportRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return report.DeductionReportLine{}, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	pa, err := s.employeeRepo.GetWithAllowance(ctx, employeeID, month, year)
	if err != nil {
		return report.DeductionReportLine{}, err
	}

	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return report.DeductionReportLine{}, fmt.Errorf("failed to load deduction rule catalog: %w", err)
	}

	holidays, err := s.calendarRepo.HolidayDates(ctx, from, to)
	if err != nil {
		return report.DeductionReportLine{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	return s.buildEmployeeLine(ctx, pa, month, year, from, to, rules, holidays)
}

// computeLine runs the full engine pipeline for one employee inside a
// batch. Errors isolate into a FAILED line.
func (s *TukinReportServiceImpl) computeLine(
	ctx context.Context,
	pa employee.PeriodAllowance,
	month, year int,
	from, to time.Time,
	rules []deduction.Rule,
	holidays calendar.DaySet,
) report.DeductionReportLine {
	line, err := s.buildEmployeeLine(ctx, pa, month, year, from, to, rules, holidays)
	if err != nil {
		return failedLine(pa, err.Error())
	}
	return line
}

// buildEmployeeLine resolves all external lookups into snapshots, then runs
// aggregation and capping for one employee.
func (s *TukinReportServiceImpl) buildEmployeeLine(
	ctx context.Context,
	pa employee.PeriodAllowance,
	month, year int,
	from, to time.Time,
	rules []deduction.Rule,
	holidays calendar.DaySet,
) (report.DeductionReportLine, error) {
	events, err := s.eventRepo.ListByEmployeeRange(ctx, pa.Employee.ID, from, to)
	if err != nil {
		return report.DeductionReportLine{}, fmt.Errorf("failed to load attendance events: %w", err)
	}

	policies, err := s.policyRepo.GetRange(ctx, pa.Employee.ID, from, to)
	if err != nil {
		return report.DeductionReportLine{}, fmt.Errorf("failed to load shift policies: %w", err)
	}

	leaveDates, err := s.calendarRepo.LeaveDates(ctx, pa.Employee.ID, from, to)
	if err != nil {
		return report.DeductionReportLine{}, fmt.Errorf("failed to load leave dates: %w", err)
	}

	others, err := s.otherRepo.ListByEmployeePeriod(ctx, pa.Employee.ID, month, year)
	if err != nil {
		return report.DeductionReportLine{}, fmt.Errorf("failed to load other deductions: %w", err)
	}

	ledger, err := tukin.Aggregate(tukin.AggregateInput{
		PeriodMonth:  month,
		PeriodYear:   year,
		Events:       events,
		Policies:     policies,
		Rules:        rules,
		LeaveDates:   leaveDates,
		HolidayDates: holidays,
		Allowance:    pa.Allowance,
	})
	if err != nil {
		return report.DeductionReportLine{}, err
	}

	capped := tukin.Cap(ledger, others, pa.Allowance)

	return buildLine(pa, ledger, capped), nil
}

// assemblePeriod rolls per-employee lines into the period summary by simple
// summation.
func assemblePeriod(month, year int, lines []report.DeductionReportLine) report.PeriodReport {
	rpt := report.PeriodReport{
		ID:          uuid.NewString(),
		PeriodMonth: month,
		PeriodYear:  year,
		GeneratedAt: time.Now().UTC(),

		TotalEmployees:           len(lines),
		TotalAllowance:           decimal.Zero,
		TotalAttendanceDeduction: decimal.Zero,
		TotalOtherDeduction:      decimal.Zero,
		TotalDeduction:           decimal.Zero,
		TotalNet:                 decimal.Zero,

		Lines: lines,
	}

	for _, line := range lines {
		rpt.TotalAllowance = rpt.TotalAllowance.Add(line.Allowance)
		rpt.TotalAttendanceDeduction = rpt.TotalAttendanceDeduction.Add(line.AttendanceDeduction)
		rpt.TotalOtherDeduction = rpt.TotalOtherDeduction.Add(line.OtherDeduction)
		rpt.TotalDeduction = rpt.TotalDeduction.Add(line.TotalDeduction)
		rpt.TotalNet = rpt.TotalNet.Add(line.NetAllowance)
	}

	return rpt
}

// GetByID implements report.TukinReportService.
func (s *TukinReportServiceImpl) GetByID(ctx context.Context, id string) (report.PeriodReport, error) {
	return s.reportRepo.GetByID(ctx, id)
}

// GetLatestByPeriod implements report.TukinReportService.
func (s *TukinReportServiceImpl) GetLatestByPeriod(ctx context.Context, month, year int) (report.PeriodReport, error) {
	return s.reportRepo.GetLatestByPeriod(ctx, month, year)
}

// EnsureMonthlySnapshot implements report.TukinReportService.
func (s *TukinReportServiceImpl) EnsureMonthlySnapshot(ctx context.Context) error {
	now := time.Now().UTC()
	// Last day of the previous month; AddDate(0, -1, 0) normalizes badly on
	// the 31st.
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	month, year := int(prev.Month()), prev.Year()

	exists, err := s.reportRepo.HasSnapshot(ctx, month, year)
	if err != nil {
		return fmt.Errorf("failed to check existing snapshot: %w", err)
	}
	if exists {
		return nil
	}

	slog.Info("generating monthly tukin snapshot", "month", month, "year", year)
	_, err = s.Generate(ctx, report.GenerateReportRequest{Month: month, Year: year})
	return err
}
