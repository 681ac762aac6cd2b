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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db DBTX
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `s.id, s.school_id, s.user_id, s.parent_user_id, s.admission_no, s.class_name, s.section, s.is_active, s.created_at, s.updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(&s.ID, &s.SchoolID, &s.UserID, &s.ParentUserID, &s.AdmissionNo,
		&s.ClassName, &s.Section, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateTx inserts a student row inside the enrollment transaction.
func (r *StudentRepository) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	query := `
		INSERT INTO students (school_id, user_id, parent_user_id, admission_no, class_name, section, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query, student.SchoolID, student.UserID, student.ParentUserID,
		student.AdmissionNo, student.ClassName, student.Section).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_school_id_admission_no_key") {
			return apperrors.ErrAdmissionNoAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAdmissionNoAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student with its backing user, scoped to a school.
func (r *StudentRepository) GetByID(ctx context.Context, schoolID, id int64) (*models.Student, error) {
	if schoolID <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.school_id = $1 AND s.id = $2`

	student, err := scanStudent(r.db.QueryRow(ctx, query, schoolID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// AdmissionNoExists checks admission number uniqueness within the school.
func (r *StudentRepository) AdmissionNoExists(ctx context.Context, schoolID int64, admissionNo string) (bool, error) {
	if schoolID <= 0 {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE school_id = $1 AND admission_no = $2)`,
		schoolID, admissionNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admission number: %w", err)
	}

	return exists, nil
}

// GetAll retrieves a page of students for a school, newest first.
func (r *StudentRepository) GetAll(ctx context.Context, schoolID int64, offset uint64, limit int) ([]*models.Student, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	query := `
		SELECT ` + studentColumns + `
		FROM students s
		WHERE s.school_id = $1
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, schoolID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// Count returns the total number of students for a school.
func (r *StudentRepository) Count(ctx context.Context, schoolID int64) (int64, error) {
	if schoolID <= 0 {
		return 0, nil
	}

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE school_id = $1`, schoolID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// CountActive returns the number of active students for a school.
func (r *StudentRepository) CountActive(ctx context.Context, schoolID int64) (int64, error) {
	if schoolID <= 0 {
		return 0, nil
	}

	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE school_id = $1 AND is_active = TRUE`,
		schoolID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active students: %w", err)
	}

	return count, nil
}

// Update updates mutable student fields.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	if student.SchoolID <= 0 {
		return apperrors.ErrStudentNotFound
	}

	query := `
		UPDATE students
		SET class_name = $1, section = $2, updated_at = NOW()
		WHERE school_id = $3 AND id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, student.ClassName, student.Section, student.SchoolID, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SoftDeleteTx flags the student inactive inside a transaction; the caller
// deactivates the backing user in the same transaction.
func (r *StudentRepository) SoftDeleteTx(ctx context.Context, tx pgx.Tx, schoolID, id int64) error {
	if schoolID <= 0 {
		return apperrors.ErrStudentNotFound
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE students SET is_active = FALSE, updated_at = NOW() WHERE school_id = $1 AND id = $2`,
		schoolID, id)
	if err != nil {
		return fmt.Errorf("error soft-deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// StudentExport is one row of the CSV export join.
type StudentExport struct {
	AdmissionNo string
	FirstName   string
	LastName    string
	ClassName   string
	Section     string
	ParentEmail string
}

// GetAllForExport joins students with their backing and parent users for the
// CSV export, in the fixed export column order.
func (r *StudentRepository) GetAllForExport(ctx context.Context, schoolID int64) ([]StudentExport, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	query := `
		SELECT s.admission_no, u.first_name, u.last_name, s.class_name, s.section,
		       COALESCE(p.email, '')
		FROM students s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN users p ON p.id = s.parent_user_id
		WHERE s.school_id = $1 AND s.is_active = TRUE
		ORDER BY s.admission_no
	`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exports []StudentExport
	for rows.Next() {
		var e StudentExport
		if err := rows.Scan(&e.AdmissionNo, &e.FirstName, &e.LastName, &e.ClassName, &e.Section, &e.ParentEmail); err != nil {
			return nil, err
		}
		exports = append(exports, e)
	}

	return exports, rows.Err()
}
