package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrworks/hr-backend-go/internal/domain/timesheet"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `
	t.id, t.user_id, t.project_id, t.work_date, t.hours,
	t.start_time, t.end_time, t.description,
	t.status, t.decided_by, t.decided_at, t.decision_note,
	t.created_at, t.updated_at, u.name, p.name, p.code
`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var t timesheet.Timesheet
	err := row.Scan(
		&t.ID, &t.UserID, &t.ProjectID, &t.WorkDate, &t.Hours,
		&t.StartTime, &t.EndTime, &t.Description,
		&t.Status, &t.DecidedBy, &t.DecidedAt, &t.DecisionNote,
		&t.CreatedAt, &t.UpdatedAt, &t.UserName, &t.ProjectName, &t.ProjectCode,
	)
	return t, err
}

func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		INNER JOIN users u ON t.user_id = u.id
		INNER JOIN projects p ON t.project_id = p.id
		WHERE t.id = $1
	`

	t, err := scanTimesheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}

	return t, nil
}

func (r *timesheetRepositoryImpl) Create(ctx context.Context, newTimesheet timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	if newTimesheet.ID == "" {
		newTimesheet.ID = uuid.New().String()
	}

	query := `
		INSERT INTO timesheets (
			id, user_id, project_id, work_date, hours,
			start_time, end_time, description,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newTimesheet.ID, newTimesheet.UserID, newTimesheet.ProjectID,
		newTimesheet.WorkDate, newTimesheet.Hours,
		newTimesheet.StartTime, newTimesheet.EndTime, newTimesheet.Description,
		newTimesheet.Status,
	).Scan(&newTimesheet.CreatedAt, &newTimesheet.UpdatedAt)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	return newTimesheet, nil
}

func (r *timesheetRepositoryImpl) Update(ctx context.Context, req timesheet.UpdateTimesheetRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []any{}
	idx := 1

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.ProjectID != nil {
		addSet("project_id", *req.ProjectID)
	}
	if req.WorkDate != nil {
		workDate, err := time.Parse("2006-01-02", *req.WorkDate)
		if err != nil {
			return fmt.Errorf("parse work_date: %w", err)
		}
		addSet("work_date", workDate)
	}
	if req.Hours != nil {
		addSet("hours", *req.Hours)
	}
	if req.StartTime != nil {
		addSet("start_time", *req.StartTime)
	}
	if req.EndTime != nil {
		addSet("end_time", *req.EndTime)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, req.ID)

	// Pending-only guard so a concurrent decision cannot be overwritten
	// by a stale edit.
	query := fmt.Sprintf(
		"UPDATE timesheets SET %s WHERE id = $%d AND status = 'PENDING'",
		strings.Join(sets, ", "), idx,
	)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timesheet.ErrTimesheetNotPending
	}

	return nil
}

func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM timesheets
		WHERE id = $1 AND status = 'PENDING'
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timesheet.ErrTimesheetNotPending
	}

	return nil
}

func buildTimesheetFilter(filter timesheet.TimesheetFilter, args *[]any, idx *int) string {
	var clauses string

	if filter.UserID != nil {
		clauses += fmt.Sprintf(" AND t.user_id = $%d", *idx)
		*args = append(*args, *filter.UserID)
		*idx += 1
	}
	if filter.ProjectID != nil {
		clauses += fmt.Sprintf(" AND t.project_id = $%d", *idx)
		*args = append(*args, *filter.ProjectID)
		*idx += 1
	}
	if filter.Status != nil {
		clauses += fmt.Sprintf(" AND t.status = $%d", *idx)
		*args = append(*args, *filter.Status)
		*idx += 1
	}
	if filter.DateFrom != nil {
		clauses += fmt.Sprintf(" AND t.work_date >= $%d", *idx)
		*args = append(*args, *filter.DateFrom)
		*idx += 1
	}
	if filter.DateTo != nil {
		clauses += fmt.Sprintf(" AND t.work_date <= $%d", *idx)
		*args = append(*args, *filter.DateTo)
		*idx += 1
	}

	return clauses
}

func (r *timesheetRepositoryImpl) List(ctx context.Context, filter timesheet.TimesheetFilter) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		INNER JOIN users u ON t.user_id = u.id
		INNER JOIN projects p ON t.project_id = p.id
		WHERE 1=1
	`
	args := []any{}
	idx := 1
	query += buildTimesheetFilter(filter, &args, &idx)
	query += " ORDER BY t.work_date DESC, t.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, t)
	}

	return timesheets, rows.Err()
}

func (r *timesheetRepositoryImpl) ListByUsers(ctx context.Context, userIDs []string, filter timesheet.TimesheetFilter) ([]timesheet.Timesheet, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		INNER JOIN users u ON t.user_id = u.id
		INNER JOIN projects p ON t.project_id = p.id
		WHERE t.user_id = ANY($1)
	`
	args := []any{userIDs}
	idx := 2
	query += buildTimesheetFilter(filter, &args, &idx)
	query += " ORDER BY t.work_date DESC, t.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, t)
	}

	return timesheets, rows.Err()
}

func (r *timesheetRepositoryImpl) Exists(ctx context.Context, userID, projectID string, workDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM timesheets
			WHERE user_id = $1 AND project_id = $2 AND work_date = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, projectID, workDate).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// SetStatus transitions a pending entry to its decision state. The
// status predicate in the WHERE clause makes concurrent decisions on
// the same entry resolve to exactly one winner.
func (r *timesheetRepositoryImpl) SetStatus(ctx context.Context, id string, status timesheet.Status, decidedBy string, note *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET status = $1, decided_by = $2, decided_at = NOW(), decision_note = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'PENDING'
	`

	commandTag, err := q.Exec(ctx, query, status, decidedBy, note, id)
	if err != nil {
		return false, err
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *timesheetRepositoryImpl) Summarize(ctx context.Context, filter timesheet.TimesheetFilter) (timesheet.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(t.hours) FILTER (WHERE t.status = 'APPROVED'), 0),
			COUNT(*) FILTER (WHERE t.status = 'PENDING'),
			COUNT(*) FILTER (WHERE t.status = 'APPROVED'),
			COUNT(*) FILTER (WHERE t.status = 'REJECTED')
		FROM timesheets t
		WHERE 1=1
	`
	args := []any{}
	idx := 1
	query += buildTimesheetFilter(filter, &args, &idx)

	var summary timesheet.SummaryResponse
	err := q.QueryRow(ctx, query, args...).Scan(
		&summary.TotalHours, &summary.PendingCount, &summary.ApprovedCount, &summary.RejectedCount,
	)
	if err != nil {
		return timesheet.SummaryResponse{}, err
	}

	return summary, nil
}
