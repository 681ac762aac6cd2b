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

// BillingRepository handles platform-level billing records for schools.
// Billing is super-admin scope: rows are keyed by school but queries are
// not tenant-guarded the way school-internal data is.
type BillingRepository struct {
	db DBTX
}

// NewBillingRepository creates a new billing repository
func NewBillingRepository(db *pgxpool.Pool) *BillingRepository {
	return &BillingRepository{db: db}
}

const billingColumns = `id, school_id, invoice_no, amount, period, due_date, status, paid_at, created_at, updated_at`

func scanBillingRecord(row pgx.Row) (*models.BillingRecord, error) {
	var b models.BillingRecord
	err := row.Scan(&b.ID, &b.SchoolID, &b.InvoiceNo, &b.Amount, &b.Period,
		&b.DueDate, &b.Status, &b.PaidAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new billing record in PENDING status.
func (r *BillingRepository) Create(ctx context.Context, b *models.BillingRecord) error {
	query := `
		INSERT INTO billing_records (school_id, invoice_no, amount, period, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, b.SchoolID, b.InvoiceNo, b.Amount,
		b.Period, b.DueDate, models.BillingPending).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "billing_records_invoice_no_key") {
			return apperrors.ErrInvoiceNoAlreadyExists
		}
		return fmt.Errorf("error creating billing record: %w", err)
	}
	b.Status = models.BillingPending

	return nil
}

// GetByID retrieves a billing record.
func (r *BillingRepository) GetByID(ctx context.Context, id int64) (*models.BillingRecord, error) {
	query := `SELECT ` + billingColumns + ` FROM billing_records WHERE id = $1`

	record, err := scanBillingRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBillingRecordNotFound
		}
		return nil, fmt.Errorf("error retrieving billing record: %w", err)
	}

	return record, nil
}

// GetForSchool lists billing records for one school, newest period first.
func (r *BillingRepository) GetForSchool(ctx context.Context, schoolID int64) ([]*models.BillingRecord, error) {
	query := `SELECT ` + billingColumns + ` FROM billing_records WHERE school_id = $1 ORDER BY period DESC`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBillingRecords(rows)
}

// GetAll lists every billing record across schools, newest period first.
func (r *BillingRepository) GetAll(ctx context.Context) ([]*models.BillingRecord, error) {
	query := `SELECT ` + billingColumns + ` FROM billing_records ORDER BY period DESC, school_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBillingRecords(rows)
}

func collectBillingRecords(rows pgx.Rows) ([]*models.BillingRecord, error) {
	var records []*models.BillingRecord
	for rows.Next() {
		record, err := scanBillingRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// UpdateStatus moves a record to a new status, stamping paid_at for PAID.
func (r *BillingRepository) UpdateStatus(ctx context.Context, id int64, status models.BillingStatus, paidAt *time.Time) error {
	query := `
		UPDATE billing_records
		SET status = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, status, paidAt, id)
	if err != nil {
		return fmt.Errorf("error updating billing record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBillingRecordNotFound
	}

	return nil
}

// MarkOverdue flips every PENDING record past its due date to OVERDUE and
// returns how many rows changed.
func (r *BillingRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	query := `
		UPDATE billing_records
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND due_date < $3
	`

	cmdTag, err := r.db.Exec(ctx, query, models.BillingOverdue, models.BillingPending, asOf)
	if err != nil {
		return 0, fmt.Errorf("error marking overdue billing records: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
