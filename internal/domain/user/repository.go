package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByEmployeeCode(ctx context.Context, code string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	SetActive(ctx context.Context, id string, active bool) error
	SetManager(ctx context.Context, employeeID string, managerID *string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter) ([]User, error)
	ListByManager(ctx context.Context, managerID string) ([]User, error)
	CountManagedEmployees(ctx context.Context, managerID string) (int64, error)
	CountDependents(ctx context.Context, userID string) (int64, error)
	ListDepartments(ctx context.Context) ([]string, error)
}
