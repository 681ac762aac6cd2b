package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call it
// for every non-nil service error so mappings live in exactly one place.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && errors.Is(err, apperrors.ErrValidationFailed) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, customErr.Message)
		if field, ok := customErr.Details["field"].(string); ok {
			detail = detail.WithField(field)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenNotFound):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTenantNotResolved):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeTenantUnresolved, "Tenant could not be resolved")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrSubdomainAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Subdomain already exists")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrAdmissionNoAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Admission number already exists")
	case errors.Is(err, apperrors.ErrAttendanceAlreadyMarked):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Attendance already marked for this student and date")
	case errors.Is(err, apperrors.ErrDuplicateReceiptNumber):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Receipt number already exists")
	case errors.Is(err, apperrors.ErrInvoiceNoAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Invoice number already exists")
	case errors.Is(err, apperrors.ErrInvalidComplaintTransition):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Invalid complaint status transition")
	case errors.Is(err, apperrors.ErrInvalidBillingTransition):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Invalid billing status transition")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, err.Error())

	case errors.Is(err, apperrors.ErrSchoolNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "School not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrFeeStructureNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Fee structure not found")
	case errors.Is(err, apperrors.ErrComplaintNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Complaint not found")
	case errors.Is(err, apperrors.ErrBillingRecordNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Billing record not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError translates gin binding failures into the standard
// validation error response.
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request validation failed").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
