package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

// ComplaintRepository handles database operations for complaints
type ComplaintRepository struct {
	db DBTX
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

const complaintColumns = `id, school_id, parent_user_id, subject, message, status, response, resolver_user_id, created_at, updated_at`

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	var c models.Complaint
	err := row.Scan(&c.ID, &c.SchoolID, &c.ParentUserID, &c.Subject, &c.Message,
		&c.Status, &c.Response, &c.ResolverUserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new complaint with status OPEN.
func (r *ComplaintRepository) Create(ctx context.Context, c *models.Complaint) error {
	query := `
		INSERT INTO complaints (school_id, parent_user_id, subject, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, c.SchoolID, c.ParentUserID, c.Subject, c.Message, models.ComplaintOpen).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating complaint: %w", err)
	}
	c.Status = models.ComplaintOpen

	return nil
}

// GetByID retrieves a complaint scoped to a school.
func (r *ComplaintRepository) GetByID(ctx context.Context, schoolID, id int64) (*models.Complaint, error) {
	if schoolID <= 0 {
		return nil, apperrors.ErrComplaintNotFound
	}

	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE school_id = $1 AND id = $2`

	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, schoolID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error retrieving complaint: %w", err)
	}

	return complaint, nil
}

// GetAll lists a school's complaints, newest first.
func (r *ComplaintRepository) GetAll(ctx context.Context, schoolID int64) ([]*models.Complaint, error) {
	if schoolID <= 0 {
		return nil, nil
	}

	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE school_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}

	return complaints, rows.Err()
}

// CountOpen returns how many complaints are not yet resolved or closed.
func (r *ComplaintRepository) CountOpen(ctx context.Context, schoolID int64) (int64, error) {
	if schoolID <= 0 {
		return 0, nil
	}

	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM complaints WHERE school_id = $1 AND status IN ($2, $3)`,
		schoolID, models.ComplaintOpen, models.ComplaintInProgress).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting open complaints: %w", err)
	}

	return count, nil
}

// UpdateStatus transitions a complaint and records the response/resolver.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, c *models.Complaint) error {
	if c.SchoolID <= 0 {
		return apperrors.ErrComplaintNotFound
	}

	query := `
		UPDATE complaints
		SET status = $1, response = $2, resolver_user_id = $3, updated_at = NOW()
		WHERE school_id = $4 AND id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, c.Status, c.Response, c.ResolverUserID, c.SchoolID, c.ID)
	if err != nil {
		return fmt.Errorf("error updating complaint: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	return nil
}
