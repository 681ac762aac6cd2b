package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/dberrors"
)

// UserRepository handles database operations for users. Every lookup is
// scoped by school_id; a zero scope fails closed.
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, school_id, email, password, first_name, last_name, role_type, is_active, last_login_at, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.SchoolID, &u.Email, &u.Password, &u.FirstName, &u.LastName,
		&u.RoleType, &u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) create(ctx context.Context, db DBTX, user *models.User) error {
	query := `
		INSERT INTO users (school_id, email, password, first_name, last_name, role_type, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id, created_at, updated_at
	`

	err := db.QueryRow(ctx, query, user.SchoolID, user.Email, user.Password,
		user.FirstName, user.LastName, user.RoleType).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.create(ctx, r.db, user)
}

// CreateTx inserts a new user inside a transaction
func (r *UserRepository) CreateTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	return r.create(ctx, tx, user)
}

// GetByID retrieves a user by ID within a school scope
func (r *UserRepository) GetByID(ctx context.Context, schoolID, id int64) (*models.User, error) {
	if schoolID <= 0 {
		return nil, apperrors.ErrUserNotFound
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE school_id = $1 AND id = $2`

	user, err := scanUser(r.db.QueryRow(ctx, query, schoolID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email within a school scope
func (r *UserRepository) GetByEmail(ctx context.Context, schoolID int64, email string) (*models.User, error) {
	if schoolID <= 0 {
		return nil, apperrors.ErrUserNotFound
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE school_id = $1 AND email = $2`

	user, err := scanUser(r.db.QueryRow(ctx, query, schoolID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// GetByEmailTx is GetByEmail inside a transaction (find-or-create flows).
func (r *UserRepository) GetByEmailTx(ctx context.Context, tx pgx.Tx, schoolID int64, email string) (*models.User, error) {
	if schoolID <= 0 {
		return nil, apperrors.ErrUserNotFound
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE school_id = $1 AND email = $2`

	user, err := scanUser(tx.QueryRow(ctx, query, schoolID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already taken within a school
func (r *UserRepository) EmailExists(ctx context.Context, schoolID int64, email string) (bool, error) {
	if schoolID <= 0 {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE school_id = $1 AND email = $2)`,
		schoolID, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// UpdateLastLogin stamps the user's last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, schoolID, id int64) error {
	if schoolID <= 0 {
		return apperrors.ErrUserNotFound
	}

	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login_at = NOW(), updated_at = NOW() WHERE school_id = $1 AND id = $2`,
		schoolID, id)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}

	return nil
}

// UpdateNameTx updates a user's name fields inside a transaction.
func (r *UserRepository) UpdateNameTx(ctx context.Context, tx pgx.Tx, schoolID, id int64, firstName, lastName string) error {
	if schoolID <= 0 {
		return apperrors.ErrUserNotFound
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, updated_at = NOW() WHERE school_id = $3 AND id = $4`,
		firstName, lastName, schoolID, id)
	if err != nil {
		return fmt.Errorf("error updating user name: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeactivateTx soft-disables a user inside a transaction.
func (r *UserRepository) DeactivateTx(ctx context.Context, tx pgx.Tx, schoolID, id int64) error {
	if schoolID <= 0 {
		return apperrors.ErrUserNotFound
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE school_id = $1 AND id = $2`,
		schoolID, id)
	if err != nil {
		return fmt.Errorf("error deactivating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
