package assignment

import (
	"context"
	"fmt"

	"github.com/hrworks/hr-backend-go/internal/domain/assignment"
	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/domain/project"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
)

type AssignmentServiceImpl struct {
	db *database.DB
	assignment.AssignmentRepository
	user.UserRepository
	project.ProjectRepository
}

func NewAssignmentService(
	db *database.DB,
	assignmentRepository assignment.AssignmentRepository,
	userRepository user.UserRepository,
	projectRepository project.ProjectRepository,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		db:                   db,
		AssignmentRepository: assignmentRepository,
		UserRepository:       userRepository,
		ProjectRepository:    projectRepository,
	}
}

// Create implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Create(ctx context.Context, principal auth.Principal, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if !userData.IsEmployee() {
		return assignment.AssignmentResponse{}, assignment.ErrAssigneeNotEmployee
	}

	projectData, err := s.ProjectRepository.GetByID(ctx, req.ProjectID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if !projectData.Status.IsOpen() {
		return assignment.AssignmentResponse{}, project.ErrProjectInactive
	}

	assigned, err := s.AssignmentRepository.IsAssigned(ctx, req.UserID, req.ProjectID)
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to check assignment: %w", err)
	}
	if assigned {
		return assignment.AssignmentResponse{}, assignment.ErrAssignmentExists
	}

	created, err := s.AssignmentRepository.Create(ctx, assignment.Assignment{
		UserID:         req.UserID,
		ProjectID:      req.ProjectID,
		Role:           req.Role,
		AllocatedHours: req.AllocatedHours,
		AssignedBy:     &principal.ID,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	created.UserName = userData.Name
	created.ProjectName = projectData.Name
	created.ProjectCode = projectData.Code

	return assignment.ToResponse(created), nil
}

// Delete implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.AssignmentRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.AssignmentRepository.Delete(ctx, id)
}

// List implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.AssignmentRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, assignment.ToResponse(a))
	}

	return responses, nil
}
