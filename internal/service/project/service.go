package project

import (
	"context"
	"fmt"
	"time"

	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/domain/project"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/hrworks/hr-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ProjectServiceImpl struct {
	db *database.DB
	project.ProjectRepository
	user.UserRepository
}

func NewProjectService(db *database.DB, projectRepository project.ProjectRepository, userRepository user.UserRepository) project.ProjectService {
	return &ProjectServiceImpl{
		db:                db,
		ProjectRepository: projectRepository,
		UserRepository:    userRepository,
	}
}

// checkManagerRole verifies the referenced user can act as a project
// manager.
func (s *ProjectServiceImpl) checkManagerRole(ctx context.Context, managerID string) error {
	manager, err := s.UserRepository.GetByID(ctx, managerID)
	if err != nil {
		return err
	}
	if !manager.IsManager() {
		return user.ErrManagerRoleRequired
	}
	return nil
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &parsed
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, principal auth.Principal, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if _, err := s.ProjectRepository.GetByCode(ctx, req.Code); err == nil {
		return project.ProjectResponse{}, project.ErrProjectCodeExists
	} else if err != project.ErrProjectNotFound {
		return project.ProjectResponse{}, fmt.Errorf("failed to check project code: %w", err)
	}

	if req.ManagerID != nil {
		if err := s.checkManagerRole(ctx, *req.ManagerID); err != nil {
			return project.ProjectResponse{}, err
		}
	}

	status := project.StatusActive
	if req.Status != nil {
		status, _ = project.ParseStatus(*req.Status)
	}

	var priority *project.Priority
	if req.Priority != nil {
		parsed, _ := project.ParsePriority(*req.Priority)
		priority = &parsed
	}

	newProject := project.Project{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		Budget:      req.Budget,
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		ManagerID:   req.ManagerID,
		CreatedBy:   &principal.ID,
	}

	created, err := s.ProjectRepository.Create(ctx, newProject)
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}

	return project.ToResponse(created), nil
}

// GetByID implements project.ProjectService.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.ToResponse(p), nil
}

// Update implements project.ProjectService. HR and admins edit any
// project; the assigned project manager edits their own.
func (s *ProjectServiceImpl) Update(ctx context.Context, principal auth.Principal, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	existing, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if !user.HasPermission(principal.Role, user.PermissionProjectManage) && !existing.IsManagedBy(principal.ID) {
		return project.ProjectResponse{}, project.ErrProjectEditDenied
	}

	if req.Code != nil && *req.Code != existing.Code {
		if _, err := s.ProjectRepository.GetByCode(ctx, *req.Code); err == nil {
			return project.ProjectResponse{}, project.ErrProjectCodeExists
		} else if err != project.ErrProjectNotFound {
			return project.ProjectResponse{}, fmt.Errorf("failed to check project code: %w", err)
		}
	}

	if req.ManagerID != nil && (existing.ManagerID == nil || *req.ManagerID != *existing.ManagerID) {
		if err := s.checkManagerRole(ctx, *req.ManagerID); err != nil {
			return project.ProjectResponse{}, err
		}
	}

	if err := s.ProjectRepository.Update(ctx, req); err != nil {
		return project.ProjectResponse{}, err
	}

	updated, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToResponse(updated), nil
}

// Delete implements project.ProjectService. A project that already has
// assignments or logged hours can only be closed, not removed.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.ProjectRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		workItems, err := s.ProjectRepository.CountWorkItems(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to count work items: %w", err)
		}
		if workItems > 0 {
			return project.ErrProjectHasWork
		}

		return s.ProjectRepository.Delete(txCtx, id)
	})
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context, filter project.ProjectFilter) ([]project.ProjectResponse, error) {
	projects, err := s.ProjectRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToResponse(p))
	}

	return responses, nil
}
