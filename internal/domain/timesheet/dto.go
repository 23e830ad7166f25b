package timesheet

import (
	"time"

	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"
)

type CreateTimesheetRequest struct {
	ProjectID   string  `json:"project_id"`
	Date        string  `json:"date"`
	HoursWorked float64 `json:"hours_worked"`
	Description string  `json:"description"`
}

func (r *CreateTimesheetRequest) Validate() error {
	return validateEntryFields(r.ProjectID, r.Date)
}

type UpdateTimesheetRequest struct {
	ProjectID   string  `json:"project_id"`
	Date        string  `json:"date"`
	HoursWorked float64 `json:"hours_worked"`
	Description string  `json:"description"`
}

func (r *UpdateTimesheetRequest) Validate() error {
	return validateEntryFields(r.ProjectID, r.Date)
}

// validateEntryFields covers the structural fields only; hours and
// description ranges belong to the validation pipeline so their failures
// surface as rule violations, not DTO errors.
func validateEntryFields(projectID, date string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(projectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if _, ok := validator.IsValidDate(date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitTimesheetsRequest struct {
	TimesheetIDs []string `json:"timesheet_ids"`
}

func (r *SubmitTimesheetsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.TimesheetIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "timesheet_ids",
			Message: "timesheet_ids must not be empty",
		})
	}
	for _, id := range r.TimesheetIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "timesheet_ids",
				Message: "timesheet_ids must not contain empty ids",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectTimesheetRequest struct {
	RejectionComments string `json:"rejection_comments"`
}

type TimesheetResponse struct {
	ID                string  `json:"id"`
	OwnerUserID       string  `json:"owner_user_id"`
	OwnerName         *string `json:"owner_name,omitempty"`
	ProjectID         string  `json:"project_id"`
	ProjectName       *string `json:"project_name,omitempty"`
	ProjectCode       *string `json:"project_code,omitempty"`
	Date              string  `json:"date"`
	HoursWorked       float64 `json:"hours_worked"`
	Description       string  `json:"description"`
	Status            Status  `json:"status"`
	RejectionComments *string `json:"rejection_comments,omitempty"`
	CreatedAt         string  `json:"created_at"`
	SubmittedAt       *string `json:"submitted_at,omitempty"`
	ApprovedAt        *string `json:"approved_at,omitempty"`
	ApproverID        *string `json:"approver_id,omitempty"`
}

// ToResponse maps an entity to its API shape.
func ToResponse(t Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:                t.ID,
		OwnerUserID:       t.OwnerUserID,
		OwnerName:         t.OwnerName,
		ProjectID:         t.ProjectID,
		ProjectName:       t.ProjectName,
		ProjectCode:       t.ProjectCode,
		Date:              t.Date.Format("2006-01-02"),
		HoursWorked:       t.HoursWorked,
		Description:       t.Description,
		Status:            t.Status,
		RejectionComments: t.RejectionComments,
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
	}
	if t.SubmittedAt != nil {
		s := t.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &s
	}
	if t.ApprovedAt != nil {
		s := t.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	resp.ApproverID = t.ApproverID
	return resp
}
