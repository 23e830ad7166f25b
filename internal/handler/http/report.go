package http

import (
	"net/http"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/report"
	"github.com/worklog-hq/timesheet-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	EmployeeHours(w http.ResponseWriter, r *http.Request)
	ProjectHours(w http.ResponseWriter, r *http.Request)
	BillableSummary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func filterFromQuery(r *http.Request) report.ReportFilter {
	q := r.URL.Query()
	filter := report.ReportFilter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if userID := q.Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if projectID := q.Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	return filter
}

// EmployeeHours implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeHours(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reportService.EmployeeHours(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// ProjectHours implements ReportHandler.
func (h *ReportHandlerImpl) ProjectHours(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reportService.ProjectHours(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// BillableSummary implements ReportHandler.
func (h *ReportHandlerImpl) BillableSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.Billable(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
