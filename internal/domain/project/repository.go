package project

import "context"

// ProjectRepository - interface for the projects table
type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, activeOnly bool) ([]Project, error)
	Update(ctx context.Context, p Project) error
	SetActive(ctx context.Context, id string, active bool) error
}
