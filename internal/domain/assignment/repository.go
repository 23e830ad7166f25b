package assignment

import (
	"context"
	"time"
)

// AssignmentRepository - interface for the project_assignments table
type AssignmentRepository interface {
	Create(ctx context.Context, a ProjectAssignment) (ProjectAssignment, error)
	GetByID(ctx context.Context, id string) (ProjectAssignment, error)
	ListActive(ctx context.Context) ([]ProjectAssignment, error)
	ListActiveByUser(ctx context.Context, userID string) ([]ProjectAssignment, error)
	Update(ctx context.Context, a ProjectAssignment) error
	Delete(ctx context.Context, id string) error

	// IsUserAssignedToProject reports whether the user holds an active
	// assignment to an active project whose window covers the date.
	IsUserAssignedToProject(ctx context.Context, userID, projectID string, date time.Time) (bool, error)
}
