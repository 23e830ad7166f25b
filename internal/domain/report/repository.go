package report

import (
	"context"
	"time"
)

// ReportRepository - aggregation queries over approved timesheets
type ReportRepository interface {
	EmployeeHours(ctx context.Context, start, end time.Time, userID, projectID *string) ([]EmployeeHoursSummary, error)
	ProjectHours(ctx context.Context, start, end time.Time, userID, projectID *string) ([]ProjectHoursSummary, error)
	Billable(ctx context.Context, start, end time.Time, userID, projectID *string) (BillableSummary, error)
}
