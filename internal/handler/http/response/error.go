package response

import (
	"errors"
	"net/http"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/assignment"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/auth"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/project"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/user"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Business rule violations from the timesheet validation pipeline.
	// Duplicates are conflicts; everything else is a plain bad request.
	var violation *timesheet.RuleViolation
	if errors.As(err, &violation) {
		if violation.Kind == timesheet.KindDuplicateEntry {
			Conflict(w, violation.Message)
			return
		}
		BadRequest(w, violation.Message, nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager role required")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrNotOwner):
		Forbidden(w, "Timesheet belongs to another user")
	case errors.Is(err, timesheet.ErrNotDraft):
		Conflict(w, "Only draft timesheets can be modified")
	case errors.Is(err, timesheet.ErrApprovalNotAllowed):
		Forbidden(w, "Not authorized to decide this timesheet")
	case errors.Is(err, timesheet.ErrNothingToSubmit):
		BadRequest(w, "No timesheet ids provided", nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectCodeExists):
		Conflict(w, "Project code already exists")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrAssignmentOverlap):
		Conflict(w, "An overlapping assignment already exists for this user and project")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
