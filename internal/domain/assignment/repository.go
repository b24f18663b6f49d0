package assignment

import "context"

type AssignmentRepository interface {
	GetByID(ctx context.Context, id string) (Assignment, error)
	Create(ctx context.Context, newAssignment Assignment) (Assignment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter AssignmentFilter) ([]Assignment, error)
	IsAssigned(ctx context.Context, userID, projectID string) (bool, error)
}
