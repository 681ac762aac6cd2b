package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

func TestUpdateComplaintTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from    models.ComplaintStatus
		to      string
		allowed bool
	}{
		{models.ComplaintOpen, "IN_PROGRESS", true},
		{models.ComplaintOpen, "RESOLVED", true},
		{models.ComplaintInProgress, "RESOLVED", true},
		{models.ComplaintInProgress, "CLOSED", true},
		{models.ComplaintResolved, "CLOSED", true},
		{models.ComplaintInProgress, "OPEN", false},
		{models.ComplaintResolved, "IN_PROGRESS", false},
		{models.ComplaintClosed, "OPEN", false},
		{models.ComplaintClosed, "RESOLVED", false},
	}

	for _, tc := range cases {
		complaintRepo := &mockComplaintStore{
			getByIDFn: func(ctx context.Context, schoolID, id int64) (*models.Complaint, error) {
				return &models.Complaint{ID: id, SchoolID: schoolID, Status: tc.from}, nil
			},
		}

		svc := NewComplaintService(complaintRepo)

		updated, err := svc.UpdateComplaint(context.Background(), 1, 5, 2, &dto.UpdateComplaintRequest{Status: tc.to})
		if tc.allowed {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			require.Equal(t, models.ComplaintStatus(tc.to), updated.Status)
		} else {
			require.ErrorIs(t, err, apperrors.ErrInvalidComplaintTransition, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestUpdateComplaintRecordsResolver(t *testing.T) {
	t.Parallel()

	var saved *models.Complaint
	complaintRepo := &mockComplaintStore{
		getByIDFn: func(ctx context.Context, schoolID, id int64) (*models.Complaint, error) {
			return &models.Complaint{ID: id, SchoolID: schoolID, Status: models.ComplaintOpen}, nil
		},
		updateStatusFn: func(ctx context.Context, c *models.Complaint) error {
			saved = c
			return nil
		},
	}

	svc := NewComplaintService(complaintRepo)

	_, err := svc.UpdateComplaint(context.Background(), 1, 5, 42, &dto.UpdateComplaintRequest{
		Status:   "RESOLVED",
		Response: "Resolved after a call with the parent.",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, int64(42), *saved.ResolverUserID)
	require.Equal(t, "Resolved after a call with the parent.", *saved.Response)
}

func TestUpdateComplaintRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svc := NewComplaintService(&mockComplaintStore{})

	_, err := svc.UpdateComplaint(context.Background(), 1, 5, 2, &dto.UpdateComplaintRequest{Status: "ESCALATED"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateComplaintStartsOpen(t *testing.T) {
	t.Parallel()

	complaintRepo := &mockComplaintStore{
		createFn: func(ctx context.Context, c *models.Complaint) error {
			c.ID = 7
			c.Status = models.ComplaintOpen
			return nil
		},
	}

	svc := NewComplaintService(complaintRepo)

	complaint, err := svc.CreateComplaint(context.Background(), 1, 33, &dto.CreateComplaintRequest{
		Subject: "Bus delay",
		Message: "The morning bus has been late all week.",
	})
	require.NoError(t, err)
	require.Equal(t, models.ComplaintOpen, complaint.Status)
	require.Equal(t, int64(33), complaint.ParentUserID)
}
