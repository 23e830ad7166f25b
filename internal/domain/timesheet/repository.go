package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository - interface for the timesheets table
type TimesheetRepository interface {
	Create(ctx context.Context, t Timesheet) (Timesheet, error)
	GetByID(ctx context.Context, id string) (Timesheet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Timesheet, error)
	ListPending(ctx context.Context) ([]Timesheet, error)

	// ExistsForOwnerProjectDate reports whether a timesheet already exists
	// for the (owner, project, date) triple. excludeID, when non-empty,
	// leaves the row being updated out of the check.
	ExistsForOwnerProjectDate(ctx context.Context, ownerUserID, projectID string, date time.Time, excludeID string) (bool, error)

	// SumHoursByOwnerAndDate returns the owner's total logged hours for the
	// calendar day across all projects, regardless of status.
	SumHoursByOwnerAndDate(ctx context.Context, ownerUserID string, date time.Time) (float64, error)

	// UpdateFields replaces the mutable draft fields.
	UpdateFields(ctx context.Context, t Timesheet) error

	// MarkSubmitted transitions a draft to submitted.
	MarkSubmitted(ctx context.Context, id string, submittedAt time.Time) error

	// MarkDecided records an approval or rejection: status, approver,
	// decision timestamp and (for rejections) the comments.
	MarkDecided(ctx context.Context, id string, status Status, approverID string, decidedAt time.Time, rejectionComments *string) error

	Delete(ctx context.Context, id string) error
}
