package assignment

import "time"

// ProjectAssignment grants a user eligibility to log time against a project
// within a date window. EndDate == nil means the assignment is open-ended.
type ProjectAssignment struct {
	ID        string
	UserID    string
	ProjectID string
	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
	CreatedAt time.Time

	// Joins (for responses)
	UserName    *string
	ProjectName *string
	ProjectCode *string
}

// Covers reports whether the assignment window contains the given date.
func (a *ProjectAssignment) Covers(date time.Time) bool {
	if date.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && date.After(*a.EndDate) {
		return false
	}
	return true
}
