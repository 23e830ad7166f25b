package assignment

import "context"

type AssignmentService interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (ProjectAssignment, error)
	CreateBatch(ctx context.Context, reqs []CreateAssignmentRequest) ([]ProjectAssignment, error)
	ListActive(ctx context.Context) ([]ProjectAssignment, error)
	ListActiveByUser(ctx context.Context, userID string) ([]ProjectAssignment, error)
	Update(ctx context.Context, id string, req UpdateAssignmentRequest) (ProjectAssignment, error)
	Delete(ctx context.Context, id string) error
}
