package timesheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/timesheet"
)

func ruleFixture() (*Validator, *fakeTimesheetRepo, *fakeAssignmentRepo) {
	repo := newFakeTimesheetRepo()
	assignments := newFakeAssignmentRepo()
	return NewValidator(repo, assignments), repo, assignments
}

func seed(t *testing.T, repo *fakeTimesheetRepo, owner, project, day string, hours float64) timesheet.Timesheet {
	t.Helper()
	ts, err := repo.Create(context.Background(), timesheet.Timesheet{
		OwnerUserID: owner,
		ProjectID:   project,
		Date:        date(day),
		HoursWorked: hours,
		Description: "seeded",
		Status:      timesheet.StatusDraft,
	})
	require.NoError(t, err)
	return ts
}

func requireViolation(t *testing.T, err error, kind timesheet.RuleKind) *timesheet.RuleViolation {
	t.Helper()
	var violation *timesheet.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, kind, violation.Kind)
	return violation
}

func TestValidator_HoursBoundaries(t *testing.T) {
	v, _, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)

	tests := []struct {
		name  string
		hours float64
		ok    bool
	}{
		{"zero", 0, false},
		{"negative", -1, false},
		{"one tenth", 0.1, true},
		{"full day", 24, true},
		{"over full day", 24.1, false},
		{"quarter hour precision", 7.25, false},
		{"tenth precision", 7.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCreate(ctx, createReq("proj-1", "2024-01-15", tt.hours, "work"), "emp-1")
			if tt.ok {
				assert.NoError(t, err)
			} else {
				violation := requireViolation(t, err, timesheet.KindInvalidField)
				assert.Equal(t, "Hours worked must be between 0.1 and 24.", violation.Message)
			}
		})
	}
}

func TestValidator_DescriptionRequired(t *testing.T) {
	v, _, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)

	for _, desc := range []string{"", "   ", "\t"} {
		err := v.ValidateCreate(ctx, createReq("proj-1", "2024-01-15", 8, desc), "emp-1")
		violation := requireViolation(t, err, timesheet.KindInvalidField)
		assert.Equal(t, "Description is required.", violation.Message)
	}
}

func TestValidator_InvalidDate(t *testing.T) {
	v, _, _ := ruleFixture()
	ctx := context.Background()

	for _, day := range []string{"", "15-01-2024", "2024-13-40", "not a date"} {
		err := v.ValidateCreate(ctx, createReq("proj-1", day, 8, "work"), "emp-1")
		requireViolation(t, err, timesheet.KindInvalidField)
	}
}

func TestValidator_DuplicateEntry(t *testing.T) {
	v, repo, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)

	seed(t, repo, "emp-1", "proj-1", "2024-01-15", 8)

	err := v.ValidateCreate(ctx, createReq("proj-1", "2024-01-15", 2, "again"), "emp-1")
	violation := requireViolation(t, err, timesheet.KindDuplicateEntry)
	assert.Equal(t, "A timesheet entry already exists for this project and date.", violation.Message)

	// Same project, different date is fine.
	err = v.ValidateCreate(ctx, createReq("proj-1", "2024-01-16", 2, "next day"), "emp-1")
	assert.NoError(t, err)

	// Another user on the same project and date is fine.
	assignments.assign("emp-2", "proj-1", date("2024-01-01"), &end)
	err = v.ValidateCreate(ctx, createReq("proj-1", "2024-01-15", 2, "colleague"), "emp-2")
	assert.NoError(t, err)
}

func TestValidator_Update_ExcludesOwnRow(t *testing.T) {
	v, repo, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)

	existing := seed(t, repo, "emp-1", "proj-1", "2024-01-15", 8)

	// Editing the row itself must not trip the duplicate rule.
	err := v.ValidateUpdate(ctx, timesheet.UpdateTimesheetRequest{
		ProjectID:   "proj-1",
		Date:        "2024-01-15",
		HoursWorked: 6,
		Description: "edited",
	}, existing)
	assert.NoError(t, err)
}

func TestValidator_DailyCap(t *testing.T) {
	v, repo, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)
	assignments.assign("emp-1", "proj-2", date("2024-01-01"), &end)

	seed(t, repo, "emp-1", "proj-1", "2024-01-15", 10)

	// 10 + 15 overflows; the message cites the existing total.
	err := v.ValidateCreate(ctx, createReq("proj-2", "2024-01-15", 15, "too much"), "emp-1")
	violation := requireViolation(t, err, timesheet.KindDailyCapExceeded)
	assert.Equal(t, "Total hours for the day cannot exceed 24. Current total: 10 hours.", violation.Message)

	// 10 + 14 lands exactly on the cap and passes.
	err = v.ValidateCreate(ctx, createReq("proj-2", "2024-01-15", 14, "exact"), "emp-1")
	assert.NoError(t, err)
}

func TestValidator_DailyCap_TenthPrecision(t *testing.T) {
	v, repo, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)
	assignments.assign("emp-1", "proj-2", date("2024-01-01"), &end)

	// 23.9 + 0.1 would drift past 24 in naive float math.
	seed(t, repo, "emp-1", "proj-1", "2024-01-15", 23.9)

	err := v.ValidateCreate(ctx, createReq("proj-2", "2024-01-15", 0.1, "exact cap"), "emp-1")
	assert.NoError(t, err)

	err = v.ValidateCreate(ctx, createReq("proj-2", "2024-01-15", 0.2, "over cap"), "emp-1")
	requireViolation(t, err, timesheet.KindDailyCapExceeded)
}

func TestValidator_Update_SubtractsOwnHoursOnSameDate(t *testing.T) {
	v, repo, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)

	existing := seed(t, repo, "emp-1", "proj-1", "2024-01-15", 20)

	// Raising the row from 20 to 24 stays within the cap because its
	// own hours are subtracted from the day's total first.
	err := v.ValidateUpdate(ctx, timesheet.UpdateTimesheetRequest{
		ProjectID:   "proj-1",
		Date:        "2024-01-15",
		HoursWorked: 24,
		Description: "full day",
	}, existing)
	assert.NoError(t, err)
}

func TestValidator_Update_DateMoveCountsFullTarget(t *testing.T) {
	v, repo, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)
	assignments.assign("emp-1", "proj-2", date("2024-01-01"), &end)

	existing := seed(t, repo, "emp-1", "proj-1", "2024-01-15", 10)
	seed(t, repo, "emp-1", "proj-2", "2024-01-16", 20)

	// Moving to a different date gets no credit for the old date's hours.
	err := v.ValidateUpdate(ctx, timesheet.UpdateTimesheetRequest{
		ProjectID:   "proj-1",
		Date:        "2024-01-16",
		HoursWorked: 10,
		Description: "moved",
	}, existing)
	violation := requireViolation(t, err, timesheet.KindDailyCapExceeded)
	assert.Contains(t, violation.Message, "20")
}

func TestValidator_AssignmentWindow(t *testing.T) {
	v, _, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-10"), &end)
	assignments.assign("emp-1", "proj-open", date("2024-01-10"), nil)

	tests := []struct {
		name    string
		project string
		day     string
		ok      bool
	}{
		{"before window", "proj-1", "2024-01-09", false},
		{"window start", "proj-1", "2024-01-10", true},
		{"inside window", "proj-1", "2024-01-20", true},
		{"window end", "proj-1", "2024-01-31", true},
		{"after window", "proj-1", "2024-02-01", false},
		{"open ended far future", "proj-open", "2027-06-01", true},
		{"never assigned", "proj-other", "2024-01-15", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCreate(ctx, createReq(tt.project, tt.day, 8, "work"), "emp-1")
			if tt.ok {
				assert.NoError(t, err)
			} else {
				violation := requireViolation(t, err, timesheet.KindNotAssigned)
				assert.Equal(t, "You are not assigned to this project for the specified date.", violation.Message)
			}
		})
	}
}

func TestValidator_InactiveProjectNotAssigned(t *testing.T) {
	v, _, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)
	assignments.inactiveProject["proj-1"] = true

	err := v.ValidateCreate(ctx, createReq("proj-1", "2024-01-15", 8, "work"), "emp-1")
	requireViolation(t, err, timesheet.KindNotAssigned)
}

func TestValidator_RuleOrdering(t *testing.T) {
	v, repo, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)

	seed(t, repo, "emp-1", "proj-1", "2024-01-15", 10)

	// Invalid hours short-circuit before the duplicate check.
	err := v.ValidateCreate(ctx, createReq("proj-1", "2024-01-15", 0, "work"), "emp-1")
	requireViolation(t, err, timesheet.KindInvalidField)

	// Duplicate fires before the daily cap even when both would trip.
	err = v.ValidateCreate(ctx, createReq("proj-1", "2024-01-15", 20, "work"), "emp-1")
	requireViolation(t, err, timesheet.KindDuplicateEntry)

	// Daily cap fires before the assignment check.
	err = v.ValidateCreate(ctx, createReq("proj-unassigned", "2024-01-15", 20, "work"), "emp-1")
	requireViolation(t, err, timesheet.KindDailyCapExceeded)
}

func TestValidator_CapMessageCitesAdjustedTotal(t *testing.T) {
	v, repo, assignments := ruleFixture()
	ctx := context.Background()
	end := date("2024-01-31")
	assignments.assign("emp-1", "proj-1", date("2024-01-01"), &end)
	assignments.assign("emp-1", "proj-2", date("2024-01-01"), &end)

	existing := seed(t, repo, "emp-1", "proj-1", "2024-01-15", 10)
	seed(t, repo, "emp-1", "proj-2", "2024-01-15", 8)

	// On an update the row's own 10 hours are excluded, so the cited
	// total is the other row's 8.
	err := v.ValidateUpdate(ctx, timesheet.UpdateTimesheetRequest{
		ProjectID:   "proj-1",
		Date:        "2024-01-15",
		HoursWorked: 17,
		Description: "long",
	}, existing)
	violation := requireViolation(t, err, timesheet.KindDailyCapExceeded)
	assert.Equal(t, "Total hours for the day cannot exceed 24. Current total: 8 hours.", violation.Message)
}
