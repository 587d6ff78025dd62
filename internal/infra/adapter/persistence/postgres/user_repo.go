// Package postgres implements the repository interfaces on top of PostgreSQL
// using raw SQL through database/sql with the pgx driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
	"github.com/rasel-stacklearner/blogger/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
SELECT id, name, email, created_at
FROM users
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 50)
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// Create inserts the user in a single statement and lets the unique
// constraint on email arbitrate duplicates. The constraint violation is
// mapped to entity.ErrDuplicateEmail so the handler can produce a
// structured 400 instead of a generic 500. This replaces the racy
// check-then-insert the system used to do.
func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (name, email)
VALUES ($1, $2)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, user.Name, user.Email).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrDuplicateEmail
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
