package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

func TestCreateNotificationRequiresExactlyOneTarget(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(&mockNotificationStore{})
	ctx := context.Background()

	_, err := svc.CreateNotification(ctx, 1, &dto.CreateNotificationRequest{
		Title: "Fee reminder", Message: "Fees are due Friday.",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed, "no target")

	_, err = svc.CreateNotification(ctx, 1, &dto.CreateNotificationRequest{
		Title: "Fee reminder", Message: "Fees are due Friday.",
		TargetRole: "PARENT", TargetUserID: 9,
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed, "both targets")

	_, err = svc.CreateNotification(ctx, 1, &dto.CreateNotificationRequest{
		Title: "Fee reminder", Message: "Fees are due Friday.",
		TargetRole: "JANITOR",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed, "unknown role")
}

func TestCreateNotificationStoresUnsentRow(t *testing.T) {
	t.Parallel()

	var stored *models.Notification
	notificationRepo := &mockNotificationStore{
		createFn: func(ctx context.Context, n *models.Notification) error {
			stored = n
			n.ID = 4
			return nil
		},
	}

	svc := NewNotificationService(notificationRepo)

	notification, err := svc.CreateNotification(context.Background(), 1, &dto.CreateNotificationRequest{
		Title:      "Fee reminder",
		Message:    "Fees are due Friday.",
		TargetRole: "PARENT",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.False(t, notification.IsSent)
	require.NotNil(t, notification.TargetRole)
	require.Equal(t, models.RoleParent, *notification.TargetRole)
	require.Nil(t, notification.TargetUserID)
}

func TestCreateNotificationForSpecificUser(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(&mockNotificationStore{})

	notification, err := svc.CreateNotification(context.Background(), 1, &dto.CreateNotificationRequest{
		Title:        "Report ready",
		Message:      "Your child's report card is available.",
		TargetUserID: 42,
	})
	require.NoError(t, err)
	require.Nil(t, notification.TargetRole)
	require.Equal(t, int64(42), *notification.TargetUserID)
}
