package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/domain/user"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

const userColumns = `id, email, full_name, password_hash, role, manager_id, department_id, organization_id, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
		&u.ManagerID, &u.DepartmentID, &u.OrganizationID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, full_name, password_hash, role, manager_id, department_id, organization_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Email, u.FullName, u.PasswordHash, u.Role,
		u.ManagerID, u.DepartmentID, u.OrganizationID,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.Repository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// ListByRoles implements user.Repository.
func (r *userRepository) ListByRoles(ctx context.Context, roles []user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	roleStrs := make([]string, len(roles))
	for i, role := range roles {
		roleStrs[i] = string(role)
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE role = ANY($1) ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query, roleStrs)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by roles: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// ListNonAdmin implements user.Repository.
func (r *userRepository) ListNonAdmin(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE role <> 'admin' ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query non-admin users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// ListTeam implements user.Repository.
func (r *userRepository) ListTeam(ctx context.Context, managerID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE manager_id = $1 ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]user.User, error) {
	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// Update implements user.Repository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if u.FullName != "" {
		updates = append(updates, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, u.FullName)
		argIdx++
	}
	if u.Role != "" {
		updates = append(updates, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, u.Role)
		argIdx++
	}
	if u.ManagerID != nil {
		updates = append(updates, fmt.Sprintf("manager_id = $%d", argIdx))
		args = append(args, u.ManagerID)
		argIdx++
	}
	if u.DepartmentID != nil {
		updates = append(updates, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, u.DepartmentID)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for user update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, u.ID)

	query := "UPDATE users SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
