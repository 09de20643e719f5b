package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/simpeg-app/tukin-backend-go/internal/domain/report"
	"github.com/simpeg-app/tukin-backend-go/internal/handler/http/response"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/validator"
)

type TukinReportHandler interface {
	// Generate computes a fresh deduction report for a period
	Generate(w http.ResponseWriter, r *http.Request)

	// GetByPeriod serves the latest stored snapshot for a period
	GetByPeriod(w http.ResponseWriter, r *http.Request)

	// GetByID serves one stored snapshot
	GetByID(w http.ResponseWriter, r *http.Request)

	// GetEmployeeLine computes one employee's line on the fly
	GetEmployeeLine(w http.ResponseWriter, r *http.Request)
}

type tukinReportHandlerImpl struct {
	reportService report.TukinReportService
}

func NewTukinReportHandler(reportService report.TukinReportService) TukinReportHandler {
	return &tukinReportHandlerImpl{
		reportService: reportService,
	}
}

// Generate handles POST /reports/tukin/generate
func (h *tukinReportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req report.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.reportService.Generate(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report generated", result)
}

// GetByPeriod handles GET /reports/tukin
func (h *tukinReportHandlerImpl) GetByPeriod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	result, err := h.reportService.GetLatestByPeriod(ctx, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeLine handles GET /reports/tukin/employee/{employeeID}
func (h *tukinReportHandlerImpl) GetEmployeeLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID := chi.URLParam(r, "employeeID")
	if validator.IsEmpty(employeeID) {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	result, err := h.reportService.GenerateEmployeeLine(ctx, employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetByID handles GET /reports/tukin/{id}
func (h *tukinReportHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "invalid report id", nil)
		return
	}

	result, err := h.reportService.GetByID(ctx, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
