package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/pkg/auth"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

// Context keys set by the middleware stack
const (
	ContextUserID   = "userID"
	ContextSchoolID = "schoolID"
	ContextEmail    = "email"
	ContextRoleType = "roleType"
)

// TenantHeader carries the school subdomain on unauthenticated requests
const TenantHeader = "X-Tenant"

// AuthMiddleware handles authentication for protected routes
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	authService services.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtService *auth.JWTService, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		authService: authService,
	}
}

// JWTAuth validates the bearer token and stores the caller's identity in the
// request context. The schoolID from the token claims is the only tenant
// scope the rest of the request pipeline trusts.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil || tokenString == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authorization required")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextSchoolID, claims.SchoolID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRoleType, claims.RoleType)

		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated user's
// role is one of the given roles. Must run after JWTAuth.
func (m *AuthMiddleware) RequireRoles(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRoleType(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authorization required")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		logger.Warn().
			Str("role", string(role)).
			Str("path", c.FullPath()).
			Msg("Role not permitted for route")
		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
	}
}

// ResolveTenant resolves the school from the X-Tenant subdomain header on
// unauthenticated routes (login, token refresh) and stores its ID in the
// context. Suspended or unknown subdomains are rejected.
func (m *AuthMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		subdomain := c.GetHeader(TenantHeader)
		if subdomain == "" {
			abortUnauthorized(c, dto.ErrorCodeTenantUnresolved, "Tenant header missing")
			return
		}

		school, err := m.authService.ResolveTenant(c.Request.Context(), subdomain)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeTenantUnresolved, "Tenant could not be resolved")
			return
		}

		c.Set(ContextSchoolID, school.ID)
		c.Next()
	}
}

// GetUserID returns the authenticated user ID from the request context.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// GetSchoolID returns the tenant scope from the request context.
func GetSchoolID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextSchoolID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// GetRoleType returns the authenticated user's role from the request context.
func GetRoleType(c *gin.Context) (models.RoleType, bool) {
	v, exists := c.Get(ContextRoleType)
	if !exists {
		return "", false
	}
	role, ok := v.(models.RoleType)
	return role, ok
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
