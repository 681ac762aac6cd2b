package services

import (
	"context"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

// NotificationService defines notification creation and listing operations
type NotificationService interface {
	CreateNotification(ctx context.Context, schoolID int64, req *dto.CreateNotificationRequest) (*models.Notification, error)
	GetNotificationsForUser(ctx context.Context, schoolID int64, role models.RoleType, userID int64) ([]*models.Notification, error)
}

type notificationServiceImpl struct {
	notificationRepo notificationStore
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo notificationStore) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

// CreateNotification writes an unsent outbox row. Delivery happens later in
// the dispatcher; the caller returns as soon as the row is stored.
func (s *notificationServiceImpl) CreateNotification(ctx context.Context, schoolID int64, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if (req.TargetRole == "") == (req.TargetUserID == 0) {
		return nil, apperrors.NewValidationError("targetRole", "exactly one of targetRole or targetUserId must be set")
	}

	notification := &models.Notification{
		SchoolID: schoolID,
		Title:    req.Title,
		Message:  req.Message,
	}

	if req.TargetRole != "" {
		role := models.RoleType(req.TargetRole)
		if !role.Valid() {
			return nil, apperrors.NewValidationError("targetRole", "unknown role: "+req.TargetRole)
		}
		notification.TargetRole = &role
	} else {
		userID := req.TargetUserID
		notification.TargetUserID = &userID
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// GetNotificationsForUser lists notifications visible to a user: rows
// targeting the user's role plus rows targeting the user directly.
func (s *notificationServiceImpl) GetNotificationsForUser(ctx context.Context, schoolID int64, role models.RoleType, userID int64) ([]*models.Notification, error) {
	return s.notificationRepo.GetForTarget(ctx, schoolID, role, userID)
}
