package assignment

import (
	"context"
	"fmt"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/assignment"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/project"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/user"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"
)

// TxRunner runs fn inside a storage transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type ServiceImpl struct {
	tx          TxRunner
	assignments assignment.AssignmentRepository
	users       user.UserRepository
	projects    project.ProjectRepository
}

func NewAssignmentService(tx TxRunner, assignments assignment.AssignmentRepository, users user.UserRepository, projects project.ProjectRepository) assignment.AssignmentService {
	return &ServiceImpl{
		tx:          tx,
		assignments: assignments,
		users:       users,
		projects:    projects,
	}
}

func (s *ServiceImpl) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.ProjectAssignment, error) {
	a, err := s.buildAssignment(ctx, req)
	if err != nil {
		return assignment.ProjectAssignment{}, err
	}

	created, err := s.assignments.Create(ctx, a)
	if err != nil {
		return assignment.ProjectAssignment{}, err
	}

	return s.assignments.GetByID(ctx, created.ID)
}

// CreateBatch creates all assignments or none.
func (s *ServiceImpl) CreateBatch(ctx context.Context, reqs []assignment.CreateAssignmentRequest) ([]assignment.ProjectAssignment, error) {
	var created []assignment.ProjectAssignment
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		for i, req := range reqs {
			a, err := s.buildAssignment(txCtx, req)
			if err != nil {
				return fmt.Errorf("assignment %d: %w", i, err)
			}
			c, err := s.assignments.Create(txCtx, a)
			if err != nil {
				return fmt.Errorf("assignment %d: %w", i, err)
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// buildAssignment validates the request, resolves its references and
// rejects windows overlapping an existing active assignment to the same
// project.
func (s *ServiceImpl) buildAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.ProjectAssignment, error) {
	if err := req.Validate(); err != nil {
		return assignment.ProjectAssignment{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	a := assignment.ProjectAssignment{
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		StartDate: start,
		IsActive:  true,
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		a.EndDate = &end
	}

	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return assignment.ProjectAssignment{}, err
	}
	if _, err := s.projects.GetByID(ctx, req.ProjectID); err != nil {
		return assignment.ProjectAssignment{}, err
	}

	existing, err := s.assignments.ListActiveByUser(ctx, req.UserID)
	if err != nil {
		return assignment.ProjectAssignment{}, err
	}
	for _, other := range existing {
		if other.ProjectID == req.ProjectID && windowsOverlap(a, other) {
			return assignment.ProjectAssignment{}, assignment.ErrAssignmentOverlap
		}
	}

	return a, nil
}

func windowsOverlap(a, b assignment.ProjectAssignment) bool {
	if b.EndDate != nil && a.StartDate.After(*b.EndDate) {
		return false
	}
	if a.EndDate != nil && b.StartDate.After(*a.EndDate) {
		return false
	}
	return true
}

func (s *ServiceImpl) ListActive(ctx context.Context) ([]assignment.ProjectAssignment, error) {
	return s.assignments.ListActive(ctx)
}

func (s *ServiceImpl) ListActiveByUser(ctx context.Context, userID string) ([]assignment.ProjectAssignment, error) {
	return s.assignments.ListActiveByUser(ctx, userID)
}

func (s *ServiceImpl) Update(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) (assignment.ProjectAssignment, error) {
	if err := req.Validate(); err != nil {
		return assignment.ProjectAssignment{}, err
	}

	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return assignment.ProjectAssignment{}, err
	}

	if req.StartDate != nil {
		start, _ := validator.IsValidDate(*req.StartDate)
		a.StartDate = start
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		a.EndDate = &end
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return assignment.ProjectAssignment{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		}}
	}

	if err := s.assignments.Update(ctx, a); err != nil {
		return assignment.ProjectAssignment{}, err
	}

	return s.assignments.GetByID(ctx, id)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}
