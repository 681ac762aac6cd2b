package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// AuthController handles registration, login and session management
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterSchool handles new tenant registration
// @Summary Register a new school
// @Description Creates a new school tenant together with its first admin user and returns a token pair for that admin. Default reference data (classes, subjects, current academic year) is seeded for the new school.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterSchoolRequest true "School and admin information"
// @Success 201 {object} dto.APIResponse{data=dto.TokenResponse} "School registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Subdomain or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) RegisterSchool(ctx *gin.Context) {
	var req dto.RegisterSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	_, tokens, err := c.authService.RegisterSchool(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(tokens))
}

// Login authenticates a user within the tenant from the X-Tenant header
// @Summary Log in
// @Description Authenticates a user scoped to the school resolved from the X-Tenant subdomain header and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Tenant header string true "School subdomain"
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials or unresolved tenant"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tokens, err := c.authService.Login(ctx, schoolID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}

// RefreshToken rotates a refresh token
// @Summary Refresh tokens
// @Description Exchanges a valid refresh token for a new token pair. The old refresh token is invalidated.
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Tenant header string true "School subdomain"
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Tokens refreshed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired refresh token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tokens, err := c.authService.RefreshToken(ctx, schoolID, req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}

// Logout invalidates the caller's refresh tokens
// @Summary Log out
// @Description Deletes the authenticated user's stored refresh tokens.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Logged out"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	if err := c.authService.Logout(ctx, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Logged out"}))
}

// GetProfile returns the authenticated user's profile
// @Summary Get profile
// @Description Returns the authenticated user's profile within their school.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.authService.GetProfile(ctx, schoolID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}
