package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

// billingTransitions lists the allowed invoice status moves. A paid invoice
// is terminal; a failed one can be re-opened for retry.
var billingTransitions = map[models.BillingStatus][]models.BillingStatus{
	models.BillingPending: {models.BillingPaid, models.BillingOverdue, models.BillingFailed},
	models.BillingOverdue: {models.BillingPaid, models.BillingFailed},
	models.BillingFailed:  {models.BillingPending},
	models.BillingPaid:    {},
}

// BillingService defines platform-level invoicing operations. Super-admin
// scope only.
type BillingService interface {
	CreateBillingRecord(ctx context.Context, req *dto.CreateBillingRecordRequest) (*models.BillingRecord, error)
	GetBillingRecord(ctx context.Context, id int64) (*models.BillingRecord, error)
	GetBillingRecords(ctx context.Context, schoolID int64) ([]*models.BillingRecord, error)
	UpdateBillingStatus(ctx context.Context, id int64, req *dto.UpdateBillingStatusRequest) (*models.BillingRecord, error)
	MarkOverdueInvoices(ctx context.Context) (int64, error)
}

type billingServiceImpl struct {
	billingRepo billingStore
	schoolRepo  schoolStore
	now         func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(billingRepo billingStore, schoolRepo schoolStore) BillingService {
	return &billingServiceImpl{
		billingRepo: billingRepo,
		schoolRepo:  schoolRepo,
		now:         time.Now,
	}
}

// CreateBillingRecord raises an invoice against a school in PENDING status.
func (s *billingServiceImpl) CreateBillingRecord(ctx context.Context, req *dto.CreateBillingRecordRequest) (*models.BillingRecord, error) {
	if _, err := s.schoolRepo.GetByID(ctx, req.SchoolID); err != nil {
		return nil, err
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("dueDate", "due date must be in YYYY-MM-DD format")
	}

	record := &models.BillingRecord{
		SchoolID:  req.SchoolID,
		InvoiceNo: NewInvoiceNumber(),
		Amount:    req.Amount,
		Period:    req.Period,
		DueDate:   dueDate,
	}

	if err := s.billingRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	logger.Info().Int64("schoolId", record.SchoolID).Str("invoiceNo", record.InvoiceNo).
		Str("period", record.Period).Msg("Billing record created")

	return record, nil
}

// GetBillingRecord retrieves one invoice.
func (s *billingServiceImpl) GetBillingRecord(ctx context.Context, id int64) (*models.BillingRecord, error) {
	return s.billingRepo.GetByID(ctx, id)
}

// GetBillingRecords lists invoices, for one school when schoolID is set or
// across the whole platform when it is zero.
func (s *billingServiceImpl) GetBillingRecords(ctx context.Context, schoolID int64) ([]*models.BillingRecord, error) {
	if schoolID > 0 {
		return s.billingRepo.GetForSchool(ctx, schoolID)
	}
	return s.billingRepo.GetAll(ctx)
}

// UpdateBillingStatus transitions an invoice. Moving to PAID stamps paid_at.
func (s *billingServiceImpl) UpdateBillingStatus(ctx context.Context, id int64, req *dto.UpdateBillingStatusRequest) (*models.BillingRecord, error) {
	newStatus := models.BillingStatus(req.Status)
	switch newStatus {
	case models.BillingPending, models.BillingPaid, models.BillingOverdue, models.BillingFailed:
	default:
		return nil, apperrors.NewValidationError("status", "unknown billing status: "+req.Status)
	}

	record, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !billingTransitionAllowed(record.Status, newStatus) {
		return nil, apperrors.ErrInvalidBillingTransition
	}

	var paidAt *time.Time
	if newStatus == models.BillingPaid {
		t := s.now()
		paidAt = &t
	}

	if err := s.billingRepo.UpdateStatus(ctx, id, newStatus, paidAt); err != nil {
		return nil, err
	}

	record.Status = newStatus
	record.PaidAt = paidAt
	return record, nil
}

// MarkOverdueInvoices flips pending invoices past their due date to OVERDUE.
func (s *billingServiceImpl) MarkOverdueInvoices(ctx context.Context) (int64, error) {
	return s.billingRepo.MarkOverdue(ctx, s.now())
}

func billingTransitionAllowed(from, to models.BillingStatus) bool {
	for _, allowed := range billingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// NewInvoiceNumber issues a globally unique invoice number.
func NewInvoiceNumber() string {
	return "INV-" + uuid.New().String()
}
