package user

import (
	"context"
)

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	Deactivate(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter) ([]UserResponse, error)
	AssignManager(ctx context.Context, req AssignManagerRequest) (UserResponse, error)
	UnassignManager(ctx context.Context, employeeID string) (UserResponse, error)
	ListTeam(ctx context.Context, managerID string) ([]UserResponse, error)
	ListDepartments(ctx context.Context) ([]string, error)
}
