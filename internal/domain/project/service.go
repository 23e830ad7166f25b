package project

import "context"

type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, activeOnly bool) ([]Project, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (Project, error)
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
}
