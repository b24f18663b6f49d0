package project

import "context"

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (Project, error)
	GetByCode(ctx context.Context, code string) (Project, error)
	Create(ctx context.Context, newProject Project) (Project, error)
	Update(ctx context.Context, req UpdateProjectRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	CountWorkItems(ctx context.Context, projectID string) (int64, error)
}
