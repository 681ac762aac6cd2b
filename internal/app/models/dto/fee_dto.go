package dto

// CreateFeeStructureRequest defines a fee for a (class, academic year).
type CreateFeeStructureRequest struct {
	ClassName    string  `json:"className" binding:"required,max=20" example:"5"`
	AcademicYear string  `json:"academicYear" binding:"required,academicyear" example:"2024-2025"`
	Name         string  `json:"name" binding:"required,max=100" example:"Tuition"`
	Amount       float64 `json:"amount" binding:"required,gt=0" example:"1000"`
	Frequency    string  `json:"frequency" binding:"required" example:"TERMLY"`
	Category     string  `json:"category" binding:"omitempty,max=50" example:"academic"`
	IsOptional   bool    `json:"isOptional"`
}

// RecordPaymentRequest records a payment against a fee structure.
type RecordPaymentRequest struct {
	StudentID      int64   `json:"studentId" binding:"required,min=1"`
	FeeStructureID int64   `json:"feeStructureId" binding:"required,min=1"`
	Amount         float64 `json:"amount" binding:"required,gt=0" example:"600"`
	Method         string  `json:"method" binding:"omitempty,max=30" example:"cash"`
}

// StudentFeeSummaryResponse is the per-student fee roll-up.
type StudentFeeSummaryResponse struct {
	StudentID     int64   `json:"studentId"`
	TotalAmount   float64 `json:"totalAmount" example:"1000"`
	TotalPaid     float64 `json:"totalPaid" example:"600"`
	PendingAmount float64 `json:"pendingAmount" example:"400"`
}
