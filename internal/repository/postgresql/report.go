package postgresql

import (
	"context"
	"time"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/report"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Reports only ever count approved timesheets. The optional user and
// project ids narrow the aggregation; NULL disables the filter.
const reportWhere = `
	t.status = $1
	AND t.work_date BETWEEN $2 AND $3
	AND ($4::text IS NULL OR t.owner_user_id::text = $4)
	AND ($5::text IS NULL OR t.project_id::text = $5)
`

func (r *reportRepositoryImpl) EmployeeHours(ctx context.Context, start, end time.Time, userID, projectID *string) ([]report.EmployeeHoursSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name,
			   COALESCE(SUM(t.hours_worked), 0) AS total_hours,
			   COALESCE(SUM(t.hours_worked) FILTER (WHERE p.is_billable), 0) AS billable_hours,
			   COALESCE(SUM(t.hours_worked) FILTER (WHERE NOT p.is_billable), 0) AS non_billable_hours
		FROM timesheets t
		INNER JOIN users u ON t.owner_user_id = u.id
		INNER JOIN projects p ON t.project_id = p.id
		WHERE ` + reportWhere + `
		GROUP BY u.id, u.name
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, timesheet.StatusApproved, start, end, userID, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []report.EmployeeHoursSummary
	for rows.Next() {
		var s report.EmployeeHoursSummary
		err := rows.Scan(&s.UserID, &s.UserName, &s.TotalHours, &s.BillableHours, &s.NonBillableHours)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (r *reportRepositoryImpl) ProjectHours(ctx context.Context, start, end time.Time, userID, projectID *string) ([]report.ProjectHoursSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.code, p.name, p.client_name, p.is_billable,
			   COALESCE(SUM(t.hours_worked), 0) AS total_hours
		FROM timesheets t
		INNER JOIN projects p ON t.project_id = p.id
		WHERE ` + reportWhere + `
		GROUP BY p.id, p.code, p.name, p.client_name, p.is_billable
		ORDER BY p.code ASC
	`

	rows, err := q.Query(ctx, query, timesheet.StatusApproved, start, end, userID, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []report.ProjectHoursSummary
	for rows.Next() {
		var s report.ProjectHoursSummary
		err := rows.Scan(&s.ProjectID, &s.ProjectCode, &s.ProjectName, &s.ClientName, &s.IsBillable, &s.TotalHours)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (r *reportRepositoryImpl) Billable(ctx context.Context, start, end time.Time, userID, projectID *string) (report.BillableSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(t.hours_worked) FILTER (WHERE p.is_billable), 0) AS billable_hours,
			   COALESCE(SUM(t.hours_worked) FILTER (WHERE NOT p.is_billable), 0) AS non_billable_hours
		FROM timesheets t
		INNER JOIN projects p ON t.project_id = p.id
		WHERE ` + reportWhere + `
	`

	var s report.BillableSummary
	err := q.QueryRow(ctx, query, timesheet.StatusApproved, start, end, userID, projectID).
		Scan(&s.TotalBillableHours, &s.TotalNonBillableHours)
	if err != nil {
		return report.BillableSummary{}, err
	}

	s.TotalHours = s.TotalBillableHours + s.TotalNonBillableHours
	if s.TotalHours > 0 {
		s.BillablePercentage = s.TotalBillableHours / s.TotalHours * 100
	}

	return s, nil
}
