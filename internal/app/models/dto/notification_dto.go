package dto

// CreateNotificationRequest creates a notification targeted at a role or a
// specific user. Exactly one of targetRole/targetUserId should be set.
type CreateNotificationRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Message      string `json:"message" binding:"required"`
	TargetRole   string `json:"targetRole" binding:"omitempty" example:"PARENT"`
	TargetUserID int64  `json:"targetUserId" binding:"omitempty,min=1"`
}

// CreateComplaintRequest submits a parent complaint.
type CreateComplaintRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}

// UpdateComplaintRequest transitions a complaint's status, optionally
// attaching a response.
type UpdateComplaintRequest struct {
	Status   string `json:"status" binding:"required" example:"IN_PROGRESS"`
	Response string `json:"response" binding:"omitempty"`
}
