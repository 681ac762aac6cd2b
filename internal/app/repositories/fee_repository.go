package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/dberrors"
)

// FeeRepository handles database operations for fee structures and payments
type FeeRepository struct {
	db DBTX
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{db: db}
}

// CreateStructure inserts a fee structure.
func (r *FeeRepository) CreateStructure(ctx context.Context, fs *models.FeeStructure) error {
	query := `
		INSERT INTO fee_structures (school_id, class_name, academic_year, name, amount, frequency, category, is_optional)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, fs.SchoolID, fs.ClassName, fs.AcademicYear,
		fs.Name, fs.Amount, fs.Frequency, fs.Category, fs.IsOptional).
		Scan(&fs.ID, &fs.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("fee structure already defined for this class and year")
		}
		return fmt.Errorf("error creating fee structure: %w", err)
	}

	return nil
}

// GetStructureByID retrieves a fee structure scoped to a school.
func (r *FeeRepository) GetStructureByID(ctx context.Context, schoolID, id int64) (*models.FeeStructure, error) {
	if schoolID <= 0 {
		return nil, apperrors.ErrFeeStructureNotFound
	}

	query := `
		SELECT id, school_id, class_name, academic_year, name, amount, frequency, category, is_optional, created_at
		FROM fee_structures WHERE school_id = $1 AND id = $2
	`

	var fs models.FeeStructure
	err := r.db.QueryRow(ctx, query, schoolID, id).Scan(&fs.ID, &fs.SchoolID, &fs.ClassName,
		&fs.AcademicYear, &fs.Name, &fs.Amount, &fs.Frequency, &fs.Category, &fs.IsOptional, &fs.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeStructureNotFound
		}
		return nil, fmt.Errorf("error retrieving fee structure: %w", err)
	}

	return &fs, nil
}

// GetStructures lists fee structures for a school, optionally filtered by
// class name. Newest first.
func (r *FeeRepository) GetStructures(ctx context.Context, schoolID int64, className string) ([]*models.FeeStructure, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	query := `
		SELECT id, school_id, class_name, academic_year, name, amount, frequency, category, is_optional, created_at
		FROM fee_structures
		WHERE school_id = $1 AND ($2 = '' OR class_name = $2)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, schoolID, className)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []*models.FeeStructure
	for rows.Next() {
		var fs models.FeeStructure
		if err := rows.Scan(&fs.ID, &fs.SchoolID, &fs.ClassName, &fs.AcademicYear, &fs.Name,
			&fs.Amount, &fs.Frequency, &fs.Category, &fs.IsOptional, &fs.CreatedAt); err != nil {
			return nil, err
		}
		structures = append(structures, &fs)
	}

	return structures, rows.Err()
}

// CreatePayment inserts a fee payment. A duplicate receipt number is a
// conflict, never silently accepted.
func (r *FeeRepository) CreatePayment(ctx context.Context, p *models.FeePayment) error {
	query := `
		INSERT INTO fee_payments (school_id, student_id, fee_structure_id, amount, method, receipt_no, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, p.SchoolID, p.StudentID, p.FeeStructureID,
		p.Amount, p.Method, p.ReceiptNo, p.PaidAt).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "fee_payments_receipt_no_key") {
			return apperrors.ErrDuplicateReceiptNumber
		}
		return fmt.Errorf("error creating fee payment: %w", err)
	}

	return nil
}

// GetPaymentsForStudent lists a student's payments, newest first.
func (r *FeeRepository) GetPaymentsForStudent(ctx context.Context, schoolID, studentID int64) ([]*models.FeePayment, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, school_id, student_id, fee_structure_id, amount, method, receipt_no, paid_at, created_at
		 FROM fee_payments WHERE school_id = $1 AND student_id = $2 ORDER BY created_at DESC`,
		schoolID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.FeePayment
	for rows.Next() {
		var p models.FeePayment
		if err := rows.Scan(&p.ID, &p.SchoolID, &p.StudentID, &p.FeeStructureID,
			&p.Amount, &p.Method, &p.ReceiptNo, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}

	return payments, rows.Err()
}

// TotalPaidForStudent sums a student's payments.
func (r *FeeRepository) TotalPaidForStudent(ctx context.Context, schoolID, studentID int64) (float64, error) {
	if schoolID <= 0 {
		return 0, nil
	}

	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM fee_payments WHERE school_id = $1 AND student_id = $2`,
		schoolID, studentID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing payments: %w", err)
	}

	return total, nil
}

// TotalApplicableForClass sums the non-optional fee structure amounts that
// apply to a class in one academic year. Structures from other years never
// count towards a student's dues.
func (r *FeeRepository) TotalApplicableForClass(ctx context.Context, schoolID int64, className, academicYear string) (float64, error) {
	if schoolID <= 0 {
		return 0, nil
	}

	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM fee_structures
		 WHERE school_id = $1 AND class_name = $2 AND academic_year = $3 AND is_optional = FALSE`,
		schoolID, className, academicYear).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing applicable fees: %w", err)
	}

	return total, nil
}

// SumPaymentsBetween totals collected fees for a school in [from, to).
func (r *FeeRepository) SumPaymentsBetween(ctx context.Context, schoolID int64, from, to time.Time) (float64, error) {
	if schoolID <= 0 {
		return 0, nil
	}

	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM fee_payments
		 WHERE school_id = $1 AND paid_at >= $2 AND paid_at < $3`,
		schoolID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing payments in period: %w", err)
	}

	return total, nil
}

// RevenueByMonth groups collected totals by month ("YYYY-MM") in [from, to).
func (r *FeeRepository) RevenueByMonth(ctx context.Context, schoolID int64, from, to time.Time) (map[string]float64, error) {
	if schoolID <= 0 {
		return map[string]float64{}, nil
	}

	query := `
		SELECT to_char(date_trunc('month', paid_at), 'YYYY-MM') AS period, SUM(amount)
		FROM fee_payments
		WHERE school_id = $1 AND paid_at >= $2 AND paid_at < $3
		GROUP BY period
		ORDER BY period
	`

	rows, err := r.db.Query(ctx, query, schoolID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var period string
		var total float64
		if err := rows.Scan(&period, &total); err != nil {
			return nil, err
		}
		totals[period] = total
	}

	return totals, rows.Err()
}
