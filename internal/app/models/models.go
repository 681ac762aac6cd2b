package models

// RoleType defines the user role type
type RoleType string

const (
	RoleSuperAdmin RoleType = "SUPER_ADMIN"
	RoleAdmin      RoleType = "ADMIN"
	RoleTeacher    RoleType = "TEACHER"
	RoleParent     RoleType = "PARENT"
	RoleStudent    RoleType = "STUDENT"
	RoleAccountant RoleType = "ACCOUNTANT"
)

// Valid reports whether the role is one of the supported values.
func (r RoleType) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleTeacher, RoleParent, RoleStudent, RoleAccountant:
		return true
	default:
		return false
	}
}

// AttendanceStatus represents the recorded status for a single day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// Valid reports whether the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	default:
		return false
	}
}

// ComplaintStatus tracks the lifecycle of a parent complaint.
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "OPEN"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
	ComplaintClosed     ComplaintStatus = "CLOSED"
)

// Valid reports whether the complaint status is a supported value.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	default:
		return false
	}
}

// BillingStatus tracks the lifecycle of a platform invoice.
type BillingStatus string

const (
	BillingPending BillingStatus = "PENDING"
	BillingPaid    BillingStatus = "PAID"
	BillingOverdue BillingStatus = "OVERDUE"
	BillingFailed  BillingStatus = "FAILED"
)

// FeeFrequency defines how often a fee structure applies.
type FeeFrequency string

const (
	FrequencyOneTime  FeeFrequency = "ONE_TIME"
	FrequencyMonthly  FeeFrequency = "MONTHLY"
	FrequencyTermly   FeeFrequency = "TERMLY"
	FrequencyAnnually FeeFrequency = "ANNUALLY"
)

// ExamType identifies the kind of assessment behind a grade.
type ExamType string

const (
	ExamMidterm    ExamType = "MIDTERM"
	ExamFinal      ExamType = "FINAL"
	ExamQuiz       ExamType = "QUIZ"
	ExamAssignment ExamType = "ASSIGNMENT"
)

// Term represents an academic term
type Term string

const (
	TermFirst  Term = "FIRST"
	TermSecond Term = "SECOND"
	TermThird  Term = "THIRD"
)
