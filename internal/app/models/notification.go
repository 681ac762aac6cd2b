package models

import "time"

// Notification defines a message targeted at a role or a specific user.
// Rows are written synchronously; the outbox dispatcher marks them sent.
type Notification struct {
	ID           int64      `json:"id" db:"id"`
	SchoolID     int64      `json:"schoolId" db:"school_id"`
	Title        string     `json:"title" db:"title" example:"Fee reminder"`
	Message      string     `json:"message" db:"message"`
	TargetRole   *RoleType  `json:"targetRole,omitempty" db:"target_role"`      // Role-wide target (nullable)
	TargetUserID *int64     `json:"targetUserId,omitempty" db:"target_user_id"` // Specific user target (nullable)
	IsSent       bool       `json:"isSent" db:"is_sent"`
	SentAt       *time.Time `json:"sentAt,omitempty" db:"sent_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// Complaint defines a parent-submitted complaint with a status lifecycle.
type Complaint struct {
	ID             int64           `json:"id" db:"id"`
	SchoolID       int64           `json:"schoolId" db:"school_id"`
	ParentUserID   int64           `json:"parentUserId" db:"parent_user_id"`
	Subject        string          `json:"subject" db:"subject"`
	Message        string          `json:"message" db:"message"`
	Status         ComplaintStatus `json:"status" db:"status" example:"OPEN"`
	Response       *string         `json:"response,omitempty" db:"response"`
	ResolverUserID *int64          `json:"resolverUserId,omitempty" db:"resolver_user_id"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

// BillingRecord defines a platform-level invoice against a school.
type BillingRecord struct {
	ID        int64         `json:"id" db:"id"`
	SchoolID  int64         `json:"schoolId" db:"school_id"`
	InvoiceNo string        `json:"invoiceNo" db:"invoice_no" example:"INV-2024-001"`
	Amount    float64       `json:"amount" db:"amount"`
	Period    string        `json:"period" db:"period" example:"2024-06"`
	Status    BillingStatus `json:"status" db:"status" example:"PENDING"`
	DueDate   time.Time     `json:"dueDate" db:"due_date"`
	PaidAt    *time.Time    `json:"paidAt,omitempty" db:"paid_at"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}
