package project

import (
	"context"

	"github.com/hrworks/hr-backend-go/internal/domain/auth"
)

type ProjectService interface {
	Create(ctx context.Context, principal auth.Principal, req CreateProjectRequest) (ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Update(ctx context.Context, principal auth.Principal, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProjectFilter) ([]ProjectResponse, error)
}
