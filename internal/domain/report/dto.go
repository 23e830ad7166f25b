package report

import "github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"

// ReportFilter bounds a report to a date range; the optional ids narrow it
// to one user or project.
type ReportFilter struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	UserID    *string `json:"user_id,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
}

func (r *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeHoursSummary struct {
	UserID           string  `json:"user_id"`
	UserName         string  `json:"user_name"`
	TotalHours       float64 `json:"total_hours"`
	BillableHours    float64 `json:"billable_hours"`
	NonBillableHours float64 `json:"non_billable_hours"`
}

type ProjectHoursSummary struct {
	ProjectID   string  `json:"project_id"`
	ProjectCode string  `json:"project_code"`
	ProjectName string  `json:"project_name"`
	ClientName  string  `json:"client_name"`
	IsBillable  bool    `json:"is_billable"`
	TotalHours  float64 `json:"total_hours"`
}

type BillableSummary struct {
	TotalBillableHours    float64 `json:"total_billable_hours"`
	TotalNonBillableHours float64 `json:"total_non_billable_hours"`
	TotalHours            float64 `json:"total_hours"`
	BillablePercentage    float64 `json:"billable_percentage"`
}
