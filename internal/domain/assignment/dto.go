package assignment

import "github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"

type CreateAssignmentRequest struct {
	UserID    string  `json:"user_id"`
	ProjectID string  `json:"project_id"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if r.EndDate != nil {
		end, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAssignmentRequest struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	ProjectID   string  `json:"project_id"`
	ProjectName *string `json:"project_name,omitempty"`
	ProjectCode *string `json:"project_code,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	IsActive    bool    `json:"is_active"`
}
