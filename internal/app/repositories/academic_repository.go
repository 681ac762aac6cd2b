package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/dberrors"
)

// AcademicRepository handles reference data: classes, subjects and academic
// years. These are the entities fed by the seed-on-empty helper.
type AcademicRepository struct {
	db DBTX
}

// NewAcademicRepository creates a new academic repository
func NewAcademicRepository(db *pgxpool.Pool) *AcademicRepository {
	return &AcademicRepository{db: db}
}

// --- Classes ---

// CreateClass inserts a class/section for a school.
func (r *AcademicRepository) CreateClass(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (school_id, name, section)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, class.SchoolID, class.Name, class.Section).
		Scan(&class.ID, &class.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetClasses lists a school's classes ordered by name and section.
func (r *AcademicRepository) GetClasses(ctx context.Context, schoolID int64) ([]*models.Class, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, school_id, name, section, created_at FROM classes WHERE school_id = $1 ORDER BY name, section`,
		schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.SchoolID, &c.Name, &c.Section, &c.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, &c)
	}

	return classes, rows.Err()
}

// ClassExists checks class existence by natural key (name + section).
func (r *AcademicRepository) ClassExists(ctx context.Context, schoolID int64, name, section string) (bool, error) {
	if schoolID <= 0 {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM classes WHERE school_id = $1 AND name = $2 AND section = $3)`,
		schoolID, name, section).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking class existence: %w", err)
	}

	return exists, nil
}

// --- Subjects ---

// CreateSubject inserts a subject for a school.
func (r *AcademicRepository) CreateSubject(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (school_id, name, code)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, subject.SchoolID, subject.Name, subject.Code).
		Scan(&subject.ID, &subject.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetSubjects lists a school's subjects ordered by name.
func (r *AcademicRepository) GetSubjects(ctx context.Context, schoolID int64) ([]*models.Subject, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, school_id, name, code, created_at FROM subjects WHERE school_id = $1 ORDER BY name`,
		schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.SchoolID, &s.Name, &s.Code, &s.CreatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, &s)
	}

	return subjects, rows.Err()
}

// SubjectExists checks subject existence by natural key (name).
func (r *AcademicRepository) SubjectExists(ctx context.Context, schoolID int64, name string) (bool, error) {
	if schoolID <= 0 {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subjects WHERE school_id = $1 AND name = $2)`,
		schoolID, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject existence: %w", err)
	}

	return exists, nil
}

// --- Academic years ---

// CreateAcademicYear inserts an academic year for a school.
func (r *AcademicRepository) CreateAcademicYear(ctx context.Context, year *models.AcademicYear) error {
	query := `
		INSERT INTO academic_years (school_id, name, is_current)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, year.SchoolID, year.Name, year.IsCurrent).
		Scan(&year.ID, &year.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating academic year: %w", err)
	}

	return nil
}

// GetAcademicYears lists a school's academic years, newest name first.
func (r *AcademicRepository) GetAcademicYears(ctx context.Context, schoolID int64) ([]*models.AcademicYear, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, school_id, name, is_current, created_at FROM academic_years WHERE school_id = $1 ORDER BY name DESC`,
		schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var y models.AcademicYear
		if err := rows.Scan(&y.ID, &y.SchoolID, &y.Name, &y.IsCurrent, &y.CreatedAt); err != nil {
			return nil, err
		}
		years = append(years, &y)
	}

	return years, rows.Err()
}

// AcademicYearExists checks academic year existence by natural key (name).
func (r *AcademicRepository) AcademicYearExists(ctx context.Context, schoolID int64, name string) (bool, error) {
	if schoolID <= 0 {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM academic_years WHERE school_id = $1 AND name = $2)`,
		schoolID, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking academic year existence: %w", err)
	}

	return exists, nil
}
