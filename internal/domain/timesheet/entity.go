package timesheet

import "time"

type Status string

const (
	StatusDraft     Status = "draft"     // Editable by its owner
	StatusSubmitted Status = "submitted" // Awaiting manager decision
	StatusApproved  Status = "approved"  // Terminal
	StatusRejected  Status = "rejected"  // Terminal
)

// Timesheet - one employee's hours for one project on one calendar day.
type Timesheet struct {
	ID          string
	OwnerUserID string
	ProjectID   string
	Date        time.Time // Calendar day, no time component
	HoursWorked float64   // One-tenth precision, (0, 24]
	Description string

	Status            Status
	RejectionComments *string

	CreatedAt   time.Time
	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	ApproverID  *string

	// Joins (for responses)
	OwnerName   *string
	ProjectName *string
	ProjectCode *string
}

// IsTerminal reports whether the timesheet has reached a final state.
func (t *Timesheet) IsTerminal() bool {
	return t.Status == StatusApproved || t.Status == StatusRejected
}
