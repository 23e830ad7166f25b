package user

import "github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 200 characters",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	role := Role(r.Role)
	if role != RoleEmployee && role != RoleManager {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be 'employee' or 'manager'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
