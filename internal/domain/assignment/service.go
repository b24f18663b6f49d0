package assignment

import (
	"context"

	"github.com/hrworks/hr-backend-go/internal/domain/auth"
)

type AssignmentService interface {
	Create(ctx context.Context, principal auth.Principal, req CreateAssignmentRequest) (AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter AssignmentFilter) ([]AssignmentResponse, error)
}
