package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	u.id, u.name, u.email, u.password_hash, u.role,
	u.employee_code, u.department, u.job_title, u.manager_id, u.active,
	u.created_at, u.updated_at, m.name
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.EmployeeCode, &u.Department, &u.JobTitle, &u.ManagerID, &u.Active,
		&u.CreatedAt, &u.UpdatedAt, &u.ManagerName,
	)
	return u, err
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN users m ON u.manager_id = m.id
		WHERE u.id = $1
	`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN users m ON u.manager_id = m.id
		WHERE LOWER(u.email) = LOWER($1)
	`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

func (r *userRepositoryImpl) GetByEmployeeCode(ctx context.Context, code string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN users m ON u.manager_id = m.id
		WHERE u.employee_code = $1
	`

	u, err := scanUser(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if newUser.ID == "" {
		newUser.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (
			id, name, email, password_hash, role,
			employee_code, department, job_title, manager_id, active,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID, newUser.Name, newUser.Email, newUser.PasswordHash, newUser.Role,
		newUser.EmployeeCode, newUser.Department, newUser.JobTitle, newUser.ManagerID, newUser.Active,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}

	return newUser, nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
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
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Password != nil {
		// callers pass the bcrypt hash here, never the raw password
		addSet("password_hash", *req.Password)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.EmployeeCode != nil {
		addSet("employee_code", *req.EmployeeCode)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.JobTitle != nil {
		addSet("job_title", *req.JobTitle)
	}
	if req.ManagerID != nil {
		addSet("manager_id", *req.ManagerID)
	}
	if req.Active != nil {
		addSet("active", *req.Active)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET active = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, active, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepositoryImpl) SetManager(ctx context.Context, employeeID string, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET manager_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, managerID, employeeID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM users
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepositoryImpl) List(ctx context.Context, filter user.UserFilter) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN users m ON u.manager_id = m.id
		WHERE 1=1
	`
	args := []any{}
	idx := 1

	if filter.Role != nil {
		query += fmt.Sprintf(" AND u.role = $%d", idx)
		args = append(args, *filter.Role)
		idx++
	}
	if filter.Department != nil {
		query += fmt.Sprintf(" AND u.department = $%d", idx)
		args = append(args, *filter.Department)
		idx++
	}
	if filter.Active != nil {
		query += fmt.Sprintf(" AND u.active = $%d", idx)
		args = append(args, *filter.Active)
		idx++
	}
	if filter.Search != nil {
		query += fmt.Sprintf(" AND (u.name ILIKE $%d OR u.email ILIKE $%d)", idx, idx)
		args = append(args, "%"+*filter.Search+"%")
		idx++
	}

	query += " ORDER BY u.name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *userRepositoryImpl) ListByManager(ctx context.Context, managerID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN users m ON u.manager_id = m.id
		WHERE u.manager_id = $1
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *userRepositoryImpl) CountManagedEmployees(ctx context.Context, managerID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM users
		WHERE manager_id = $1 AND active = TRUE
	`

	var total int64
	if err := q.QueryRow(ctx, query, managerID).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *userRepositoryImpl) CountDependents(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Rows that keep a hard delete from being safe: reports, logged
	// hours, and project assignments.
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE manager_id = $1) +
			(SELECT COUNT(*) FROM timesheets WHERE user_id = $1) +
			(SELECT COUNT(*) FROM assignments WHERE user_id = $1)
	`

	var total int64
	if err := q.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *userRepositoryImpl) ListDepartments(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT department
		FROM users
		WHERE department IS NOT NULL
		ORDER BY department ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}
