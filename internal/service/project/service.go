package project

import (
	"context"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/project"
)

type ServiceImpl struct {
	projects project.ProjectRepository
}

func NewProjectService(projects project.ProjectRepository) project.ProjectService {
	return &ServiceImpl{projects: projects}
}

func (s *ServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	return s.projects.Create(ctx, project.Project{
		Code:       req.Code,
		Name:       req.Name,
		ClientName: req.ClientName,
		IsBillable: req.IsBillable,
	})
}

func (s *ServiceImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ServiceImpl) List(ctx context.Context, activeOnly bool) ([]project.Project, error) {
	return s.projects.List(ctx, activeOnly)
}

// Update applies the provided fields only; the project code is immutable
// once timesheets may reference it.
func (s *ServiceImpl) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return project.Project{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.IsBillable != nil {
		p.IsBillable = *req.IsBillable
	}

	if err := s.projects.Update(ctx, p); err != nil {
		return project.Project{}, err
	}

	return s.projects.GetByID(ctx, id)
}

func (s *ServiceImpl) Activate(ctx context.Context, id string) error {
	return s.projects.SetActive(ctx, id, true)
}

func (s *ServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.projects.SetActive(ctx, id, false)
}
