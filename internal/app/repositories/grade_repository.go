package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/dberrors"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db DBTX
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

// Create inserts a grade. (school, student, subject, exam type, year, term)
// is unique.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (school_id, student_id, subject, exam_type, academic_year, term,
		                    marks_obtained, total_marks, percentage, letter)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, grade.SchoolID, grade.StudentID, grade.Subject,
		grade.ExamType, grade.AcademicYear, grade.Term,
		grade.MarksObtained, grade.TotalMarks, grade.Percentage, grade.Letter).
		Scan(&grade.ID, &grade.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("grade already recorded for this exam")
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetForStudent lists a student's grades, newest first.
func (r *GradeRepository) GetForStudent(ctx context.Context, schoolID, studentID int64) ([]*models.Grade, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, school_id, student_id, subject, exam_type, academic_year, term,
		        marks_obtained, total_marks, percentage, letter, created_at
		 FROM grades WHERE school_id = $1 AND student_id = $2 ORDER BY created_at DESC`,
		schoolID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.ID, &g.SchoolID, &g.StudentID, &g.Subject, &g.ExamType,
			&g.AcademicYear, &g.Term, &g.MarksObtained, &g.TotalMarks,
			&g.Percentage, &g.Letter, &g.CreatedAt); err != nil {
			return nil, err
		}
		grades = append(grades, &g)
	}

	return grades, rows.Err()
}

// AverageForStudent returns (count, average percentage) for a student.
// Zero rows yield (0, 0).
func (r *GradeRepository) AverageForStudent(ctx context.Context, schoolID, studentID int64) (count int, average float64, err error) {
	if schoolID <= 0 {
		return 0, 0, nil
	}

	query := `
		SELECT COUNT(*), COALESCE(AVG(percentage), 0)
		FROM grades
		WHERE school_id = $1 AND student_id = $2
	`

	err = r.db.QueryRow(ctx, query, schoolID, studentID).Scan(&count, &average)
	if err != nil {
		return 0, 0, fmt.Errorf("error averaging grades: %w", err)
	}

	return count, average, nil
}
