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

func TestCreateBillingRecord(t *testing.T) {
	t.Parallel()

	schoolRepo := &mockSchoolStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.School, error) {
			return &models.School{ID: id, Status: models.SchoolActive}, nil
		},
	}

	var stored *models.BillingRecord
	billingRepo := &mockBillingStore{
		createFn: func(ctx context.Context, b *models.BillingRecord) error {
			stored = b
			return nil
		},
	}

	svc := NewBillingService(billingRepo, schoolRepo)

	record, err := svc.CreateBillingRecord(context.Background(), &dto.CreateBillingRecordRequest{
		SchoolID: 1,
		Amount:   199.0,
		Period:   "2024-06",
		DueDate:  "2024-06-30",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.True(t, strings.HasPrefix(record.InvoiceNo, "INV-"))
	require.Equal(t, "2024-06-30", record.DueDate.Format("2006-01-02"))
}

func TestCreateBillingRecordUnknownSchool(t *testing.T) {
	t.Parallel()

	schoolRepo := &mockSchoolStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.School, error) {
			return nil, apperrors.ErrSchoolNotFound
		},
	}

	svc := NewBillingService(&mockBillingStore{}, schoolRepo)

	_, err := svc.CreateBillingRecord(context.Background(), &dto.CreateBillingRecordRequest{
		SchoolID: 99,
		Amount:   199.0,
		Period:   "2024-06",
		DueDate:  "2024-06-30",
	})
	require.ErrorIs(t, err, apperrors.ErrSchoolNotFound)
}

func TestUpdateBillingStatusTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from    models.BillingStatus
		to      string
		allowed bool
	}{
		{models.BillingPending, "PAID", true},
		{models.BillingPending, "OVERDUE", true},
		{models.BillingPending, "FAILED", true},
		{models.BillingOverdue, "PAID", true},
		{models.BillingFailed, "PENDING", true},
		{models.BillingPaid, "PENDING", false},
		{models.BillingPaid, "OVERDUE", false},
		{models.BillingOverdue, "PENDING", false},
	}

	for _, tc := range cases {
		billingRepo := &mockBillingStore{
			getByIDFn: func(ctx context.Context, id int64) (*models.BillingRecord, error) {
				return &models.BillingRecord{ID: id, Status: tc.from}, nil
			},
		}

		svc := NewBillingService(billingRepo, &mockSchoolStore{})

		record, err := svc.UpdateBillingStatus(context.Background(), 3, &dto.UpdateBillingStatusRequest{Status: tc.to})
		if tc.allowed {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			require.Equal(t, models.BillingStatus(tc.to), record.Status)
		} else {
			require.ErrorIs(t, err, apperrors.ErrInvalidBillingTransition, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestUpdateBillingStatusStampsPaidAt(t *testing.T) {
	t.Parallel()

	var stampedAt *time.Time
	billingRepo := &mockBillingStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.BillingRecord, error) {
			return &models.BillingRecord{ID: id, Status: models.BillingPending}, nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status models.BillingStatus, paidAt *time.Time) error {
			stampedAt = paidAt
			return nil
		},
	}

	svc := NewBillingService(billingRepo, &mockSchoolStore{})

	record, err := svc.UpdateBillingStatus(context.Background(), 3, &dto.UpdateBillingStatusRequest{Status: "PAID"})
	require.NoError(t, err)
	require.NotNil(t, stampedAt)
	require.NotNil(t, record.PaidAt)

	// Moving to OVERDUE must not stamp paid_at.
	billingRepo.getByIDFn = func(ctx context.Context, id int64) (*models.BillingRecord, error) {
		return &models.BillingRecord{ID: id, Status: models.BillingPending}, nil
	}
	stampedAt = nil

	record, err = svc.UpdateBillingStatus(context.Background(), 3, &dto.UpdateBillingStatusRequest{Status: "OVERDUE"})
	require.NoError(t, err)
	require.Nil(t, stampedAt)
	require.Nil(t, record.PaidAt)
}
