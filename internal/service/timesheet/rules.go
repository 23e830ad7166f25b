package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/assignment"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"
)

// entry is the normalized view of a proposed create/update that every rule
// checks. On the update path excludeID carries the id of the row being
// edited and current* its persisted state.
type entry struct {
	ownerUserID string
	projectID   string
	date        time.Time
	hoursWorked float64
	description string

	excludeID    string
	currentDate  *time.Time
	currentHours float64
}

// Rule vetoes a proposed entry with a timesheet.RuleViolation, or returns
// an infrastructure error. Rules are pure read-then-decide; nothing here
// writes to the store.
type Rule func(ctx context.Context, e entry) error

// Validator applies an ordered, short-circuiting sequence of rules. New
// business rules slot in as new entries in the list without touching the
// existing ones.
type Validator struct {
	rules []Rule
}

func NewValidator(timesheets timesheet.TimesheetRepository, assignments assignment.AssignmentRepository) *Validator {
	return &Validator{
		rules: []Rule{
			fieldsRule(),
			duplicateRule(timesheets),
			dailyCapRule(timesheets),
			assignmentRule(assignments),
		},
	}
}

// ValidateCreate decides whether a new draft may be created for the owner.
func (v *Validator) ValidateCreate(ctx context.Context, req timesheet.CreateTimesheetRequest, ownerUserID string) error {
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return timesheet.Violation(timesheet.KindInvalidField, "Date must be a valid date (YYYY-MM-DD).")
	}
	return v.run(ctx, entry{
		ownerUserID: ownerUserID,
		projectID:   req.ProjectID,
		date:        date,
		hoursWorked: req.HoursWorked,
		description: req.Description,
	})
}

// ValidateUpdate decides whether the draft identified by current may be
// replaced with the requested fields.
func (v *Validator) ValidateUpdate(ctx context.Context, req timesheet.UpdateTimesheetRequest, current timesheet.Timesheet) error {
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return timesheet.Violation(timesheet.KindInvalidField, "Date must be a valid date (YYYY-MM-DD).")
	}
	currentDate := current.Date
	return v.run(ctx, entry{
		ownerUserID:  current.OwnerUserID,
		projectID:    req.ProjectID,
		date:         date,
		hoursWorked:  req.HoursWorked,
		description:  req.Description,
		excludeID:    current.ID,
		currentDate:  &currentDate,
		currentHours: current.HoursWorked,
	})
}

func (v *Validator) run(ctx context.Context, e entry) error {
	for _, rule := range v.rules {
		if err := rule(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// fieldsRule checks the static constraints on hours and description.
func fieldsRule() Rule {
	return func(ctx context.Context, e entry) error {
		if !validator.IsValidHours(e.hoursWorked) {
			return timesheet.Violation(timesheet.KindInvalidField,
				"Hours worked must be between 0.1 and 24.")
		}
		if validator.IsEmpty(e.description) {
			return timesheet.Violation(timesheet.KindInvalidField, "Description is required.")
		}
		if len(e.description) > 500 {
			return timesheet.Violation(timesheet.KindInvalidField,
				"Description must not exceed 500 characters.")
		}
		return nil
	}
}

// duplicateRule rejects a second entry for the same (owner, project, date).
func duplicateRule(timesheets timesheet.TimesheetRepository) Rule {
	return func(ctx context.Context, e entry) error {
		exists, err := timesheets.ExistsForOwnerProjectDate(ctx, e.ownerUserID, e.projectID, e.date, e.excludeID)
		if err != nil {
			return fmt.Errorf("failed to check for duplicate timesheet: %w", err)
		}
		if exists {
			return timesheet.Violation(timesheet.KindDuplicateEntry,
				"A timesheet entry already exists for this project and date.")
		}
		return nil
	}
}

// dailyCapRule keeps the owner's total for the day at or under 24 hours.
// Totals are compared in tenths of an hour so boundary sums are exact.
func dailyCapRule(timesheets timesheet.TimesheetRepository) Rule {
	return func(ctx context.Context, e entry) error {
		total, err := timesheets.SumHoursByOwnerAndDate(ctx, e.ownerUserID, e.date)
		if err != nil {
			return fmt.Errorf("failed to sum daily hours: %w", err)
		}

		tenths := validator.Tenths(total)
		// On update the row being edited is still counted in the stored
		// total; take its hours back out when the date is unchanged.
		if e.currentDate != nil && e.currentDate.Equal(e.date) {
			tenths -= validator.Tenths(e.currentHours)
		}

		if tenths+validator.Tenths(e.hoursWorked) > 240 {
			return timesheet.Violation(timesheet.KindDailyCapExceeded,
				fmt.Sprintf("Total hours for the day cannot exceed 24. Current total: %g hours.",
					float64(tenths)/10))
		}
		return nil
	}
}

// assignmentRule requires an active assignment to an active project whose
// window covers the entry date. Missing assignment data fails closed.
func assignmentRule(assignments assignment.AssignmentRepository) Rule {
	return func(ctx context.Context, e entry) error {
		assigned, err := assignments.IsUserAssignedToProject(ctx, e.ownerUserID, e.projectID, e.date)
		if err != nil {
			return fmt.Errorf("failed to check project assignment: %w", err)
		}
		if !assigned {
			return timesheet.Violation(timesheet.KindNotAssigned,
				"You are not assigned to this project for the specified date.")
		}
		return nil
	}
}
