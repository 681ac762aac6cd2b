package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrTenantNotResolved  = errors.New("tenant could not be resolved")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Tenant/user errors
var (
	ErrSchoolNotFound          = errors.New("school not found")
	ErrSubdomainAlreadyExists  = errors.New("subdomain already exists")
	ErrSchoolSuspended         = errors.New("school is suspended")
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailAlreadyExists      = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound          = errors.New("student not found")
	ErrAdmissionNoAlreadyExists = errors.New("admission number already exists")
)

// Attendance errors
var (
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this student and date")
)

// Fee errors
var (
	ErrFeeStructureNotFound   = errors.New("fee structure not found")
	ErrDuplicateReceiptNumber = errors.New("receipt number already exists")
)

// Complaint errors
var (
	ErrComplaintNotFound          = errors.New("complaint not found")
	ErrInvalidComplaintTransition = errors.New("invalid complaint status transition")
)

// Billing errors
var (
	ErrBillingRecordNotFound     = errors.New("billing record not found")
	ErrInvalidBillingTransition  = errors.New("invalid billing status transition")
	ErrInvoiceNoAlreadyExists    = errors.New("invoice number already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}
