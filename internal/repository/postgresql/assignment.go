package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrworks/hr-backend-go/internal/domain/assignment"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	a.id, a.user_id, a.project_id, a.role, a.allocated_hours, a.assigned_by,
	a.created_at, u.name, p.name, p.code
`

func scanAssignment(row pgx.Row) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := row.Scan(
		&a.ID, &a.UserID, &a.ProjectID, &a.Role, &a.AllocatedHours, &a.AssignedBy,
		&a.CreatedAt, &a.UserName, &a.ProjectName, &a.ProjectCode,
	)
	return a, err
}

func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments a
		INNER JOIN users u ON a.user_id = u.id
		INNER JOIN projects p ON a.project_id = p.id
		WHERE a.id = $1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, err
	}

	return a, nil
}

func (r *assignmentRepositoryImpl) Create(ctx context.Context, newAssignment assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	if newAssignment.ID == "" {
		newAssignment.ID = uuid.New().String()
	}

	query := `
		INSERT INTO assignments (id, user_id, project_id, role, allocated_hours, assigned_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newAssignment.ID, newAssignment.UserID, newAssignment.ProjectID,
		newAssignment.Role, newAssignment.AllocatedHours, newAssignment.AssignedBy,
	).Scan(&newAssignment.CreatedAt)
	if err != nil {
		return assignment.Assignment{}, err
	}

	return newAssignment, nil
}

func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM assignments
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

func (r *assignmentRepositoryImpl) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments a
		INNER JOIN users u ON a.user_id = u.id
		INNER JOIN projects p ON a.project_id = p.id
		WHERE 1=1
	`
	args := []any{}
	idx := 1

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND a.user_id = $%d", idx)
		args = append(args, *filter.UserID)
		idx++
	}
	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND a.project_id = $%d", idx)
		args = append(args, *filter.ProjectID)
		idx++
	}
	if filter.ManagerID != nil {
		query += fmt.Sprintf(" AND u.manager_id = $%d", idx)
		args = append(args, *filter.ManagerID)
		idx++
	}

	query += " ORDER BY a.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

func (r *assignmentRepositoryImpl) IsAssigned(ctx context.Context, userID, projectID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM assignments
			WHERE user_id = $1 AND project_id = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, projectID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
