// Package controllers contains the HTTP handlers. Controllers bind and
// validate request payloads, delegate to the service layer, and translate
// service errors through middleware.HandleAPIError. They never touch the
// database directly.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// parseIDParam parses a positive int64 path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// requireSchoolID reads the tenant scope placed in the context by the auth
// or tenant-resolution middleware.
func requireSchoolID(ctx *gin.Context) (int64, bool) {
	schoolID, ok := middleware.GetSchoolID(ctx)
	if !ok || schoolID < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeTenantUnresolved, "Tenant could not be resolved")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return schoolID, true
}

// requireUserID reads the authenticated user ID placed in the context by the
// auth middleware.
func requireUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok || userID < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authorization required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return userID, true
}
