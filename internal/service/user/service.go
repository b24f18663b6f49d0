package user

import (
	"context"
	"fmt"

	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/hrworks/hr-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	auth.RefreshTokenRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository, refreshTokenRepository auth.RefreshTokenRepository) user.UserService {
	return &UserServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if err != user.ErrUserNotFound {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	if req.EmployeeCode != nil {
		if _, err := s.UserRepository.GetByEmployeeCode(ctx, *req.EmployeeCode); err == nil {
			return user.UserResponse{}, user.ErrEmployeeCodeExists
		} else if err != user.ErrUserNotFound {
			return user.UserResponse{}, fmt.Errorf("failed to check employee code: %w", err)
		}
	}

	if req.ManagerID != nil {
		manager, err := s.UserRepository.GetByID(ctx, *req.ManagerID)
		if err != nil {
			return user.UserResponse{}, err
		}
		if !manager.IsManager() {
			return user.UserResponse{}, user.ErrManagerRoleRequired
		}
	}

	role, _ := user.ParseRole(req.Role)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashed,
		Role:         role,
		EmployeeCode: req.EmployeeCode,
		Department:   req.Department,
		JobTitle:     req.JobTitle,
		ManagerID:    req.ManagerID,
		Active:       true,
	}

	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(created), nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(userData), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil && *req.Email != existing.Email {
		if _, err := s.UserRepository.GetByEmail(ctx, *req.Email); err == nil {
			return user.UserResponse{}, user.ErrEmailExists
		} else if err != user.ErrUserNotFound {
			return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
	}

	if req.EmployeeCode != nil && (existing.EmployeeCode == nil || *req.EmployeeCode != *existing.EmployeeCode) {
		if _, err := s.UserRepository.GetByEmployeeCode(ctx, *req.EmployeeCode); err == nil {
			return user.UserResponse{}, user.ErrEmployeeCodeExists
		} else if err != user.ErrUserNotFound {
			return user.UserResponse{}, fmt.Errorf("failed to check employee code: %w", err)
		}
	}

	if req.ManagerID != nil {
		manager, err := s.UserRepository.GetByID(ctx, *req.ManagerID)
		if err != nil {
			return user.UserResponse{}, err
		}
		if !manager.IsManager() {
			return user.UserResponse{}, user.ErrManagerRoleRequired
		}
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		req.Password = &hashed
	}

	if err := s.UserRepository.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// UpdateProfile implements user.UserService. Self-service edits touch
// only the caller's own descriptive fields; role, manager and
// activation go through the admin Update path.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	return s.Update(ctx, user.UpdateUserRequest{
		ID:         userID,
		Name:       req.Name,
		Password:   req.Password,
		Department: req.Department,
		JobTitle:   req.JobTitle,
	})
}

// Deactivate implements user.UserService. A manager with active
// reports cannot be deactivated; reports must be reassigned first.
func (s *UserServiceImpl) Deactivate(ctx context.Context, id string) error {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if userData.IsManager() {
			managed, err := s.UserRepository.CountManagedEmployees(txCtx, id)
			if err != nil {
				return fmt.Errorf("failed to count managed employees: %w", err)
			}
			if managed > 0 {
				return user.ErrManagerHasEmployees
			}
		}

		if err := s.UserRepository.SetActive(txCtx, id, false); err != nil {
			return err
		}

		// A deactivated account also loses its refresh sessions.
		return s.RefreshTokenRepository.RevokeAllForUser(txCtx, id)
	})
}

// Activate implements user.UserService.
func (s *UserServiceImpl) Activate(ctx context.Context, id string) error {
	if _, err := s.UserRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.UserRepository.SetActive(ctx, id, true)
}

// Delete implements user.UserService. Hard delete is refused while
// reports, timesheets or assignments still reference the user.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.UserRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		dependents, err := s.UserRepository.CountDependents(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to count dependents: %w", err)
		}
		if dependents > 0 {
			return user.ErrUserHasDependents
		}

		return s.UserRepository.Delete(txCtx, id)
	})
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, filter user.UserFilter) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, nil
}

// AssignManager implements user.UserService.
func (s *UserServiceImpl) AssignManager(ctx context.Context, req user.AssignManagerRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	employee, err := s.UserRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !employee.IsEmployee() && !employee.IsManager() {
		return user.UserResponse{}, user.ErrEmployeeRoleRequired
	}

	manager, err := s.UserRepository.GetByID(ctx, req.ManagerID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !manager.IsManager() {
		return user.UserResponse{}, user.ErrManagerRoleRequired
	}
	if manager.ID == employee.ID {
		return user.UserResponse{}, user.ErrSelfManagement
	}

	if err := s.UserRepository.SetManager(ctx, req.EmployeeID, &req.ManagerID); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// UnassignManager implements user.UserService.
func (s *UserServiceImpl) UnassignManager(ctx context.Context, employeeID string) (user.UserResponse, error) {
	if _, err := s.UserRepository.GetByID(ctx, employeeID); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.UserRepository.SetManager(ctx, employeeID, nil); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, employeeID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// ListTeam implements user.UserService.
func (s *UserServiceImpl) ListTeam(ctx context.Context, managerID string) ([]user.UserResponse, error) {
	users, err := s.UserRepository.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, nil
}

// ListDepartments implements user.UserService.
func (s *UserServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	return s.UserRepository.ListDepartments(ctx)
}
