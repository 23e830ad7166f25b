package project

import "github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"

type CreateProjectRequest struct {
	Code       string `json:"project_code"`
	Name       string `json:"project_name"`
	ClientName string `json:"client_name"`
	IsBillable bool   `json:"is_billable"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_code",
			Message: "project_code is required",
		})
	}
	if len(r.Code) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "project_code",
			Message: "project_code must not exceed 50 characters",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name is required",
		})
	}
	if len(r.Name) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name must not exceed 200 characters",
		})
	}

	if validator.IsEmpty(r.ClientName) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_name",
			Message: "client_name is required",
		})
	}
	if len(r.ClientName) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "client_name",
			Message: "client_name must not exceed 200 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProjectRequest struct {
	Name       *string `json:"project_name,omitempty"`
	ClientName *string `json:"client_name,omitempty"`
	IsBillable *bool   `json:"is_billable,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "project_name",
				Message: "project_name must not be empty",
			})
		}
		if len(*r.Name) > 200 {
			errs = append(errs, validator.ValidationError{
				Field:   "project_name",
				Message: "project_name must not exceed 200 characters",
			})
		}
	}

	if r.ClientName != nil {
		if validator.IsEmpty(*r.ClientName) {
			errs = append(errs, validator.ValidationError{
				Field:   "client_name",
				Message: "client_name must not be empty",
			})
		}
		if len(*r.ClientName) > 200 {
			errs = append(errs, validator.ValidationError{
				Field:   "client_name",
				Message: "client_name must not exceed 200 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProjectResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"project_code"`
	Name       string  `json:"project_name"`
	ClientName string  `json:"client_name"`
	IsBillable bool    `json:"is_billable"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  *string `json:"updated_at,omitempty"`
}
