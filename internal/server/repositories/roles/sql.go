package roles

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountsvc/internal/dbx"
	"github.com/dmitrijs2005/accountsvc/internal/server/models"
	"github.com/dmitrijs2005/accountsvc/internal/server/repositories/users"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Exists(ctx context.Context, role string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`, role).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) AddToRole(ctx context.Context, userID, role string) error {
	query :=
		`INSERT INTO user_roles (user_id, role_name)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `
	if _, err := r.db.ExecContext(ctx, query, userID, role); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT role_name FROM user_roles WHERE user_id = $1 ORDER BY role_name`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) ListUsersInRole(ctx context.Context, role string) ([]*models.User, error) {
	query :=
		`SELECT u.id, u.email, u.username, u.name, u.phone_number, u.password_hash
		 FROM users u
		 JOIN user_roles ur ON ur.user_id = u.id
		 WHERE ur.role_name = $1
		 ORDER BY u.email
		 `
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return users.ScanUsers(rows)
}

func (r *SQLRepository) RemoveAll(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
