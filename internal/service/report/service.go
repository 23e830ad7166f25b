package report

import (
	"context"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/report"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	reports report.ReportRepository
}

func NewReportService(reports report.ReportRepository) report.ReportService {
	return &ServiceImpl{reports: reports}
}

func (s *ServiceImpl) EmployeeHours(ctx context.Context, filter report.ReportFilter) ([]report.EmployeeHoursSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	start, _ := validator.IsValidDate(filter.StartDate)
	end, _ := validator.IsValidDate(filter.EndDate)
	return s.reports.EmployeeHours(ctx, start, end, filter.UserID, filter.ProjectID)
}

func (s *ServiceImpl) ProjectHours(ctx context.Context, filter report.ReportFilter) ([]report.ProjectHoursSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	start, _ := validator.IsValidDate(filter.StartDate)
	end, _ := validator.IsValidDate(filter.EndDate)
	return s.reports.ProjectHours(ctx, start, end, filter.UserID, filter.ProjectID)
}

func (s *ServiceImpl) Billable(ctx context.Context, filter report.ReportFilter) (report.BillableSummary, error) {
	if err := filter.Validate(); err != nil {
		return report.BillableSummary{}, err
	}
	start, _ := validator.IsValidDate(filter.StartDate)
	end, _ := validator.IsValidDate(filter.EndDate)
	return s.reports.Billable(ctx, start, end, filter.UserID, filter.ProjectID)
}
