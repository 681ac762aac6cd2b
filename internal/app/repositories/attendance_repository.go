package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for attendance rows.
// (school_id, student_id, date) is unique.
type AttendanceRepository struct {
	db DBTX
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// DeleteForDateTx removes every attendance row for (school, date). First half
// of the delete-then-insert roster replace; must run in the same transaction
// as the inserts.
func (r *AttendanceRepository) DeleteForDateTx(ctx context.Context, tx pgx.Tx, schoolID int64, date time.Time) error {
	if schoolID <= 0 {
		return apperrors.ErrResourceNotFound
	}

	_, err := tx.Exec(ctx,
		`DELETE FROM attendance WHERE school_id = $1 AND date = $2`,
		schoolID, date)
	if err != nil {
		return fmt.Errorf("error clearing attendance for date: %w", err)
	}

	return nil
}

// InsertTx inserts one attendance row inside the roster transaction.
func (r *AttendanceRepository) InsertTx(ctx context.Context, tx pgx.Tx, record *models.Attendance) error {
	query := `
		INSERT INTO attendance (school_id, student_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query, record.SchoolID, record.StudentID, record.Date, record.Status).
		Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAttendanceAlreadyMarked
		}
		return fmt.Errorf("error inserting attendance: %w", err)
	}

	return nil
}

// Insert inserts a single attendance row outside a roster replace. A
// duplicate (student, date) surfaces as a conflict, never a silent dup.
func (r *AttendanceRepository) Insert(ctx context.Context, record *models.Attendance) error {
	query := `
		INSERT INTO attendance (school_id, student_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, record.SchoolID, record.StudentID, record.Date, record.Status).
		Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAttendanceAlreadyMarked
		}
		return fmt.Errorf("error inserting attendance: %w", err)
	}

	return nil
}

// GetByDate returns the full roster recorded for (school, date), ordered by
// student.
func (r *AttendanceRepository) GetByDate(ctx context.Context, schoolID int64, date time.Time) ([]*models.Attendance, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, school_id, student_id, date, status, created_at
		 FROM attendance WHERE school_id = $1 AND date = $2 ORDER BY student_id`,
		schoolID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.SchoolID, &a.StudentID, &a.Date, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, &a)
	}

	return records, rows.Err()
}

// CountForStudent returns (total, present) day counts for a student.
func (r *AttendanceRepository) CountForStudent(ctx context.Context, schoolID, studentID int64) (total, present int, err error) {
	if schoolID <= 0 {
		return 0, 0, nil
	}

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $3)
		FROM attendance
		WHERE school_id = $1 AND student_id = $2
	`

	err = r.db.QueryRow(ctx, query, schoolID, studentID, models.AttendancePresent).Scan(&total, &present)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting attendance: %w", err)
	}

	return total, present, nil
}

// CountForDate returns (total, present) counts across the school for a date.
// Used by the dashboard roll-up.
func (r *AttendanceRepository) CountForDate(ctx context.Context, schoolID int64, date time.Time) (total, present int, err error) {
	if schoolID <= 0 {
		return 0, 0, nil
	}

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $3)
		FROM attendance
		WHERE school_id = $1 AND date = $2
	`

	err = r.db.QueryRow(ctx, query, schoolID, date, models.AttendancePresent).Scan(&total, &present)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting attendance for date: %w", err)
	}

	return total, present, nil
}

// GetForStudent lists a student's attendance, most recent date first.
func (r *AttendanceRepository) GetForStudent(ctx context.Context, schoolID, studentID int64) ([]*models.Attendance, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, school_id, student_id, date, status, created_at
		 FROM attendance WHERE school_id = $1 AND student_id = $2 ORDER BY date DESC`,
		schoolID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.SchoolID, &a.StudentID, &a.Date, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, &a)
	}

	return records, rows.Err()
}
