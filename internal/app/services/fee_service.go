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

// FeeService defines fee structure and payment operations
type FeeService interface {
	CreateFeeStructure(ctx context.Context, schoolID int64, req *dto.CreateFeeStructureRequest) (*models.FeeStructure, error)
	GetFeeStructures(ctx context.Context, schoolID int64, className string) ([]*models.FeeStructure, error)
	RecordPayment(ctx context.Context, schoolID int64, req *dto.RecordPaymentRequest) (*models.FeePayment, error)
	GetStudentPayments(ctx context.Context, schoolID, studentID int64) ([]*models.FeePayment, error)
	GetStudentFeeSummary(ctx context.Context, schoolID, studentID int64) (*dto.StudentFeeSummaryResponse, error)
}

type feeServiceImpl struct {
	feeRepo     feeStore
	studentRepo studentStore
	now         func() time.Time
}

// NewFeeService creates a new fee service
func NewFeeService(feeRepo feeStore, studentRepo studentStore) FeeService {
	return &feeServiceImpl{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
		now:         time.Now,
	}
}

// CreateFeeStructure defines a fee for a (class, academic year).
func (s *feeServiceImpl) CreateFeeStructure(ctx context.Context, schoolID int64, req *dto.CreateFeeStructureRequest) (*models.FeeStructure, error) {
	frequency := models.FeeFrequency(req.Frequency)
	switch frequency {
	case models.FrequencyOneTime, models.FrequencyMonthly, models.FrequencyTermly, models.FrequencyAnnually:
	default:
		return nil, apperrors.NewValidationError("frequency", "unknown fee frequency: "+req.Frequency)
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	fs := &models.FeeStructure{
		SchoolID:     schoolID,
		ClassName:    req.ClassName,
		AcademicYear: req.AcademicYear,
		Name:         req.Name,
		Amount:       req.Amount,
		Frequency:    frequency,
		Category:     category,
		IsOptional:   req.IsOptional,
	}

	if err := s.feeRepo.CreateStructure(ctx, fs); err != nil {
		return nil, err
	}

	return fs, nil
}

// GetFeeStructures lists fee structures, optionally filtered by class.
func (s *feeServiceImpl) GetFeeStructures(ctx context.Context, schoolID int64, className string) ([]*models.FeeStructure, error) {
	return s.feeRepo.GetStructures(ctx, schoolID, className)
}

// RecordPayment records a payment against a fee structure and issues a
// receipt number. Receipt numbers are random, not sequential, so two
// concurrent payments can never collide on one.
func (s *feeServiceImpl) RecordPayment(ctx context.Context, schoolID int64, req *dto.RecordPaymentRequest) (*models.FeePayment, error) {
	if _, err := s.studentRepo.GetByID(ctx, schoolID, req.StudentID); err != nil {
		return nil, err
	}

	if _, err := s.feeRepo.GetStructureByID(ctx, schoolID, req.FeeStructureID); err != nil {
		return nil, err
	}

	method := req.Method
	if method == "" {
		method = "cash"
	}

	payment := &models.FeePayment{
		SchoolID:       schoolID,
		StudentID:      req.StudentID,
		FeeStructureID: req.FeeStructureID,
		Amount:         req.Amount,
		Method:         method,
		ReceiptNo:      NewReceiptNumber(),
		PaidAt:         s.now(),
	}

	if err := s.feeRepo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info().Int64("schoolId", schoolID).Int64("studentId", req.StudentID).
		Str("receiptNo", payment.ReceiptNo).Float64("amount", payment.Amount).
		Msg("Fee payment recorded")

	return payment, nil
}

// GetStudentPayments lists a student's payments.
func (s *feeServiceImpl) GetStudentPayments(ctx context.Context, schoolID, studentID int64) ([]*models.FeePayment, error) {
	if _, err := s.studentRepo.GetByID(ctx, schoolID, studentID); err != nil {
		return nil, err
	}

	return s.feeRepo.GetPaymentsForStudent(ctx, schoolID, studentID)
}

// GetStudentFeeSummary computes the per-student fee roll-up: the applicable
// total comes from the non-optional structures of the student's class in the
// current academic year. Pending is the raw subtraction; an overpaid student
// shows a negative pending amount (a credit).
func (s *feeServiceImpl) GetStudentFeeSummary(ctx context.Context, schoolID, studentID int64) (*dto.StudentFeeSummaryResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}

	totalAmount, err := s.feeRepo.TotalApplicableForClass(ctx, schoolID, student.ClassName, CurrentAcademicYearName(s.now()))
	if err != nil {
		return nil, err
	}

	totalPaid, err := s.feeRepo.TotalPaidForStudent(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentFeeSummaryResponse{
		StudentID:     studentID,
		TotalAmount:   totalAmount,
		TotalPaid:     totalPaid,
		PendingAmount: totalAmount - totalPaid,
	}, nil
}

// NewReceiptNumber issues a globally unique receipt number.
func NewReceiptNumber() string {
	return "RCP-" + uuid.New().String()
}
