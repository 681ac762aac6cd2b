package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

func TestRecordPaymentIssuesReceipt(t *testing.T) {
	t.Parallel()

	var stored *models.FeePayment
	feeRepo := &mockFeeStore{
		createPaymentFn: func(ctx context.Context, p *models.FeePayment) error {
			stored = p
			return nil
		},
	}

	svc := NewFeeService(feeRepo, &mockStudentStore{})

	payment, err := svc.RecordPayment(context.Background(), 1, &dto.RecordPaymentRequest{
		StudentID:      10,
		FeeStructureID: 3,
		Amount:         600,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.True(t, strings.HasPrefix(payment.ReceiptNo, "RCP-"))
	require.Equal(t, "cash", payment.Method)
	require.False(t, payment.PaidAt.IsZero())
}

func TestReceiptNumbersDoNotRepeat(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		receipt := NewReceiptNumber()
		require.False(t, seen[receipt], "duplicate receipt %s", receipt)
		seen[receipt] = true
	}
}

func TestRecordPaymentUnknownStructure(t *testing.T) {
	t.Parallel()

	feeRepo := &mockFeeStore{
		getStructureByIDFn: func(ctx context.Context, schoolID, id int64) (*models.FeeStructure, error) {
			return nil, apperrors.ErrFeeStructureNotFound
		},
	}

	svc := NewFeeService(feeRepo, &mockStudentStore{})

	_, err := svc.RecordPayment(context.Background(), 1, &dto.RecordPaymentRequest{
		StudentID:      10,
		FeeStructureID: 999,
		Amount:         600,
	})
	require.ErrorIs(t, err, apperrors.ErrFeeStructureNotFound)
}

func TestCreateFeeStructureRejectsUnknownFrequency(t *testing.T) {
	t.Parallel()

	svc := NewFeeService(&mockFeeStore{}, &mockStudentStore{})

	_, err := svc.CreateFeeStructure(context.Background(), 1, &dto.CreateFeeStructureRequest{
		ClassName:    "5",
		AcademicYear: "2024-2025",
		Name:         "Tuition",
		Amount:       1000,
		Frequency:    "WEEKLY",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetStudentFeeSummary(t *testing.T) {
	t.Parallel()

	feeRepo := &mockFeeStore{
		totalApplicableForClassFn: func(ctx context.Context, schoolID int64, className, academicYear string) (float64, error) {
			return 1000, nil
		},
		totalPaidForStudentFn: func(ctx context.Context, schoolID, studentID int64) (float64, error) {
			return 600, nil
		},
	}

	svc := NewFeeService(feeRepo, &mockStudentStore{})

	summary, err := svc.GetStudentFeeSummary(context.Background(), 1, 10)
	require.NoError(t, err)
	require.InDelta(t, 1000.0, summary.TotalAmount, 0.001)
	require.InDelta(t, 600.0, summary.TotalPaid, 0.001)
	require.InDelta(t, 400.0, summary.PendingAmount, 0.001)
}

func TestGetStudentFeeSummaryOverpaymentGoesNegative(t *testing.T) {
	t.Parallel()

	feeRepo := &mockFeeStore{
		totalApplicableForClassFn: func(ctx context.Context, schoolID int64, className, academicYear string) (float64, error) {
			return 500, nil
		},
		totalPaidForStudentFn: func(ctx context.Context, schoolID, studentID int64) (float64, error) {
			return 700, nil
		},
	}

	svc := NewFeeService(feeRepo, &mockStudentStore{})

	// Overpayment reports as a negative pending amount (a credit), never
	// clamped to zero.
	summary, err := svc.GetStudentFeeSummary(context.Background(), 1, 10)
	require.NoError(t, err)
	require.InDelta(t, -200.0, summary.PendingAmount, 0.001)
}

func TestGetStudentFeeSummaryScopedToCurrentYear(t *testing.T) {
	t.Parallel()

	var askedYear string
	feeRepo := &mockFeeStore{
		totalApplicableForClassFn: func(ctx context.Context, schoolID int64, className, academicYear string) (float64, error) {
			askedYear = academicYear
			return 1000, nil
		},
	}

	svc := NewFeeService(feeRepo, &mockStudentStore{}).(*feeServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	}

	_, err := svc.GetStudentFeeSummary(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, "2024-2025", askedYear)
}
