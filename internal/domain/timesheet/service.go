package timesheet

import "context"

type TimesheetService interface {
	Create(ctx context.Context, req CreateTimesheetRequest, ownerUserID string) (Timesheet, error)
	Update(ctx context.Context, id string, req UpdateTimesheetRequest, actorUserID string) (Timesheet, error)
	Delete(ctx context.Context, id string, actorUserID string) error

	// Submit transitions the listed drafts to submitted. The batch is
	// atomic: any guard failure rolls back the whole submission.
	Submit(ctx context.Context, ids []string, actorUserID string) error

	Approve(ctx context.Context, id string, approverUserID string) (Timesheet, error)
	Reject(ctx context.Context, id string, comments string, approverUserID string) (Timesheet, error)

	GetByID(ctx context.Context, id string) (Timesheet, error)
	ListForUser(ctx context.Context, ownerUserID string) ([]Timesheet, error)
	ListPending(ctx context.Context) ([]Timesheet, error)
}
