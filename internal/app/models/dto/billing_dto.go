package dto

// CreateBillingRecordRequest raises a platform invoice against a school.
// Super-admin only.
type CreateBillingRecordRequest struct {
	SchoolID int64   `json:"schoolId" binding:"required,min=1"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Period   string  `json:"period" binding:"required,max=20" example:"2024-06"`
	DueDate  string  `json:"dueDate" binding:"required" example:"2024-06-30"`
}

// UpdateBillingStatusRequest transitions an invoice's status.
type UpdateBillingStatusRequest struct {
	Status string `json:"status" binding:"required" example:"PAID"`
}

// UpdateSchoolRequest updates tenant metadata. Super-admin only.
type UpdateSchoolRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Plan     *string `json:"plan" binding:"omitempty,max=40"`
	IsActive *bool   `json:"isActive"`
}
