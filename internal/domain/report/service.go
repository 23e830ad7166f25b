package report

import "context"

// Reports aggregate approved timesheets only.
type ReportService interface {
	EmployeeHours(ctx context.Context, filter ReportFilter) ([]EmployeeHoursSummary, error)
	ProjectHours(ctx context.Context, filter ReportFilter) ([]ProjectHoursSummary, error)
	Billable(ctx context.Context, filter ReportFilter) (BillableSummary, error)
}
