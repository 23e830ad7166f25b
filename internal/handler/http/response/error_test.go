package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/assignment"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/auth"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/project"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/user"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid field violation", timesheet.Violation(timesheet.KindInvalidField, "Description is required."), http.StatusBadRequest},
		{"daily cap violation", timesheet.Violation(timesheet.KindDailyCapExceeded, "Total hours for the day cannot exceed 24. Current total: 10 hours."), http.StatusBadRequest},
		{"not assigned violation", timesheet.Violation(timesheet.KindNotAssigned, "You are not assigned to this project for the specified date."), http.StatusBadRequest},
		{"duplicate violation", timesheet.Violation(timesheet.KindDuplicateEntry, "A timesheet entry already exists for this project and date."), http.StatusConflict},
		{"dto validation", validator.ValidationErrors{{Field: "date", Message: "date must be a valid date (YYYY-MM-DD)"}}, http.StatusUnprocessableEntity},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"inactive user", auth.ErrUserInactive, http.StatusForbidden},
		{"manager required", user.ErrManagerAccessRequired, http.StatusForbidden},
		{"timesheet not found", timesheet.ErrTimesheetNotFound, http.StatusNotFound},
		{"not owner", timesheet.ErrNotOwner, http.StatusForbidden},
		{"not draft", timesheet.ErrNotDraft, http.StatusConflict},
		{"approval not allowed", timesheet.ErrApprovalNotAllowed, http.StatusForbidden},
		{"nothing to submit", timesheet.ErrNothingToSubmit, http.StatusBadRequest},
		{"project not found", project.ErrProjectNotFound, http.StatusNotFound},
		{"project code exists", project.ErrProjectCodeExists, http.StatusConflict},
		{"assignment overlap", assignment.ErrAssignmentOverlap, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)

			var body Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}

// Wrapped errors still map through errors.Is/errors.As.
func TestHandleError_Wrapped(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("timesheet ts-1: %w", timesheet.ErrNotDraft))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("create: %w", timesheet.Violation(timesheet.KindDuplicateEntry, "A timesheet entry already exists for this project and date.")))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleError_ViolationMessagePassedThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, timesheet.Violation(timesheet.KindDailyCapExceeded,
		"Total hours for the day cannot exceed 24. Current total: 10 hours."))

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "Total hours for the day cannot exceed 24. Current total: 10 hours.", body.Error.Message)
}
