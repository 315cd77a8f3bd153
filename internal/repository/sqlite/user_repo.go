package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"recomptracker/internal/domain"
	"recomptracker/internal/repository"
)

// sqliteUserRepository implements repository.UserRepository.
type sqliteUserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository over the given
// database handle.
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &sqliteUserRepository{db: db}
}

// Create inserts a new user. Username uniqueness is enforced by the
// UNIQUE constraint, not a pre-check, so concurrent registrations of
// the same name cannot race past each other.
func (r *sqliteUserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	if user.Username == "" || user.PasswordHash == "" {
		return 0, errors.New("username and password hash are required")
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		user.Username, user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return id, nil
}

// GetByUsername retrieves a user by exact username.
func (r *sqliteUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE username = ?",
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by identifier.
func (r *sqliteUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE id = ?",
		id,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}
