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

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db DBTX
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

const teacherColumns = `t.id, t.school_id, t.user_id, t.employee_no, t.specialty, t.is_active, t.created_at, t.updated_at`

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	var t models.Teacher
	err := row.Scan(&t.ID, &t.SchoolID, &t.UserID, &t.EmployeeNo, &t.Specialty,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTx inserts a teacher row inside the hiring transaction.
func (r *TeacherRepository) CreateTx(ctx context.Context, tx pgx.Tx, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (school_id, user_id, employee_no, specialty, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query, teacher.SchoolID, teacher.UserID, teacher.EmployeeNo, teacher.Specialty).
		Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("employee number already exists")
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetByID retrieves a teacher scoped to a school.
func (r *TeacherRepository) GetByID(ctx context.Context, schoolID, id int64) (*models.Teacher, error) {
	if schoolID <= 0 {
		return nil, apperrors.ErrResourceNotFound
	}

	query := `SELECT ` + teacherColumns + ` FROM teachers t WHERE t.school_id = $1 AND t.id = $2`

	teacher, err := scanTeacher(r.db.QueryRow(ctx, query, schoolID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

// GetAll retrieves all teachers for a school, newest first.
func (r *TeacherRepository) GetAll(ctx context.Context, schoolID int64) ([]*models.Teacher, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	query := `SELECT ` + teacherColumns + ` FROM teachers t WHERE t.school_id = $1 ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	return teachers, rows.Err()
}

// CountActive returns the number of active teachers for a school.
func (r *TeacherRepository) CountActive(ctx context.Context, schoolID int64) (int64, error) {
	if schoolID <= 0 {
		return 0, nil
	}

	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM teachers WHERE school_id = $1 AND is_active = TRUE`,
		schoolID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active teachers: %w", err)
	}

	return count, nil
}

// Update updates mutable teacher fields.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	if teacher.SchoolID <= 0 {
		return apperrors.ErrResourceNotFound
	}

	cmdTag, err := r.db.Exec(ctx,
		`UPDATE teachers SET specialty = $1, updated_at = NOW() WHERE school_id = $2 AND id = $3`,
		teacher.Specialty, teacher.SchoolID, teacher.ID)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// SoftDeleteTx flags the teacher inactive inside a transaction.
func (r *TeacherRepository) SoftDeleteTx(ctx context.Context, tx pgx.Tx, schoolID, id int64) error {
	if schoolID <= 0 {
		return apperrors.ErrResourceNotFound
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE teachers SET is_active = FALSE, updated_at = NOW() WHERE school_id = $1 AND id = $2`,
		schoolID, id)
	if err != nil {
		return fmt.Errorf("error soft-deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
