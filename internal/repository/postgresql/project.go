package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrworks/hr-backend-go/internal/domain/project"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `
	id, name, code, description, status, priority, budget,
	start_date, end_date, manager_id, created_by, created_at, updated_at
`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Code, &p.Description, &p.Status, &p.Priority, &p.Budget,
		&p.StartDate, &p.EndDate, &p.ManagerID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1
	`

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) GetByCode(ctx context.Context, code string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE UPPER(code) = UPPER($1)
	`

	p, err := scanProject(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	if newProject.ID == "" {
		newProject.ID = uuid.New().String()
	}

	query := `
		INSERT INTO projects (
			id, name, code, description, status, priority, budget,
			start_date, end_date, manager_id, created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newProject.ID, newProject.Name, newProject.Code, newProject.Description,
		newProject.Status, newProject.Priority, newProject.Budget,
		newProject.StartDate, newProject.EndDate, newProject.ManagerID, newProject.CreatedBy,
	).Scan(&newProject.CreatedAt, &newProject.UpdatedAt)
	if err != nil {
		return project.Project{}, err
	}

	return newProject, nil
}

func (r *projectRepositoryImpl) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []any{}
	idx := 1

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Code != nil {
		addSet("code", *req.Code)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.Priority != nil {
		addSet("priority", *req.Priority)
	}
	if req.Budget != nil {
		addSet("budget", *req.Budget)
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return fmt.Errorf("parse start_date: %w", err)
		}
		addSet("start_date", startDate)
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return fmt.Errorf("parse end_date: %w", err)
		}
		addSet("end_date", endDate)
	}
	if req.ManagerID != nil {
		addSet("manager_id", *req.ManagerID)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM projects
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepositoryImpl) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE 1=1
	`
	args := []any{}
	idx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, *filter.Status)
		idx++
	}
	if filter.ManagerID != nil {
		query += fmt.Sprintf(" AND manager_id = $%d", idx)
		args = append(args, *filter.ManagerID)
		idx++
	}
	if filter.Search != nil {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR code ILIKE $%d)", idx, idx)
		args = append(args, "%"+*filter.Search+"%")
		idx++
	}

	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *projectRepositoryImpl) CountWorkItems(ctx context.Context, projectID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM assignments WHERE project_id = $1) +
			(SELECT COUNT(*) FROM timesheets WHERE project_id = $1)
	`

	var total int64
	if err := q.QueryRow(ctx, query, projectID).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}
