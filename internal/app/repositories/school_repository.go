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

// SchoolRepository handles database operations for tenant schools.
// Schools are platform-level rows; they are the only entity not scoped by a
// school_id column (they ARE the scope).
type SchoolRepository struct {
	db DBTX
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{db: db}
}

const schoolColumns = `id, name, subdomain, plan, status, is_active, created_at, updated_at`

func scanSchool(row pgx.Row) (*models.School, error) {
	var s models.School
	err := row.Scan(&s.ID, &s.Name, &s.Subdomain, &s.Plan, &s.Status, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateTx inserts a school inside a transaction (used by registration,
// which also creates the admin user).
func (r *SchoolRepository) CreateTx(ctx context.Context, tx pgx.Tx, school *models.School) error {
	query := `
		INSERT INTO schools (name, subdomain, plan, status, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query, school.Name, school.Subdomain, school.Plan, school.Status).
		Scan(&school.ID, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSubdomainAlreadyExists
		}
		return fmt.Errorf("error creating school: %w", err)
	}

	return nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools WHERE id = $1`

	school, err := scanSchool(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}

	return school, nil
}

// GetBySubdomain resolves a tenant from its subdomain. Only active schools
// resolve; suspended or soft-disabled tenants behave as unknown.
func (r *SchoolRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools WHERE subdomain = $1 AND is_active = TRUE AND status = $2`

	school, err := scanSchool(r.db.QueryRow(ctx, query, subdomain, models.SchoolActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error resolving subdomain: %w", err)
	}

	return school, nil
}

// GetAll retrieves all schools, newest first. Super-admin scope.
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, err
		}
		schools = append(schools, school)
	}

	return schools, rows.Err()
}

// Update updates school metadata.
func (r *SchoolRepository) Update(ctx context.Context, school *models.School) error {
	query := `
		UPDATE schools
		SET name = $1, plan = $2, status = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, school.Name, school.Plan, school.Status, school.IsActive, school.ID)
	if err != nil {
		return fmt.Errorf("error updating school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}

// Suspend marks a school as suspended without deleting any rows.
func (r *SchoolRepository) Suspend(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE schools SET status = $1, updated_at = NOW() WHERE id = $2`,
		models.SchoolSuspended, id)
	if err != nil {
		return fmt.Errorf("error suspending school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}
