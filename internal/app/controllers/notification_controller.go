package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// NotificationController handles announcement creation and retrieval
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// CreateNotification queues a notification
// @Summary Create a notification
// @Description Creates a notification targeted at either a role or a specific user (exactly one). Delivery happens asynchronously through the outbox dispatcher.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNotificationRequest true "Notification content and target"
// @Success 201 {object} dto.APIResponse{data=models.Notification} "Notification queued"
// @Failure 400 {object} dto.ErrorResponse "Invalid target or role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications [post]
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	notification, err := c.notificationService.CreateNotification(ctx, schoolID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(notification))
}

// GetMyNotifications lists notifications addressed to the caller
// @Summary Get my notifications
// @Description Returns notifications targeted at the caller's role or directly at the caller, most recent first.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Notification} "Notifications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications [get]
func (c *NotificationController) GetMyNotifications(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	role, ok := middleware.GetRoleType(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authorization required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	notifications, err := c.notificationService.GetNotificationsForUser(ctx, schoolID, role, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(notifications))
}
