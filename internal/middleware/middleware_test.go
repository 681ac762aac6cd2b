package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

// stubAuthService satisfies services.AuthService for tenant resolution tests.
type stubAuthService struct {
	school *models.School
	err    error
}

func (s *stubAuthService) RegisterSchool(context.Context, *dto.RegisterSchoolRequest) (*models.School, *dto.TokenResponse, error) {
	return nil, nil, nil
}
func (s *stubAuthService) Login(context.Context, int64, *dto.LoginRequest) (*dto.TokenResponse, error) {
	return nil, nil
}
func (s *stubAuthService) RefreshToken(context.Context, int64, string) (*dto.TokenResponse, error) {
	return nil, nil
}
func (s *stubAuthService) Logout(context.Context, int64) error { return nil }
func (s *stubAuthService) GetProfile(context.Context, int64, int64) (*dto.ProfileResponse, error) {
	return nil, nil
}
func (s *stubAuthService) ResolveTenant(context.Context, string) (*models.School, error) {
	return s.school, s.err
}

func TestJWTAuthSetsIdentityFromClaims(t *testing.T) {
	t.Parallel()

	jwtService := testJWTService()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:       7,
		SchoolID: 3,
		Email:    "admin@greenwood.edu",
		RoleType: models.RoleAdmin,
	})
	require.NoError(t, err)

	m := NewAuthMiddleware(jwtService, &stubAuthService{})

	router := gin.New()
	router.GET("/probe", m.JWTAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		schoolID, _ := GetSchoolID(c)
		role, _ := GetRoleType(c)
		require.Equal(t, int64(7), userID)
		require.Equal(t, int64(3), schoolID)
		require.Equal(t, models.RoleAdmin, role)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(testJWTService(), &stubAuthService{})

	router := gin.New()
	router.GET("/probe", m.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	cases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRolesEnforcesRole(t *testing.T) {
	t.Parallel()

	jwtService := testJWTService()
	m := NewAuthMiddleware(jwtService, &stubAuthService{})

	router := gin.New()
	router.GET("/admin-only", m.JWTAuth(), m.RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tokenFor := func(role models.RoleType) string {
		accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
			ID: 1, SchoolID: 1, Email: "u@x.test", RoleType: role,
		})
		require.NoError(t, err)
		return accessToken
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(models.RoleAdmin))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(models.RoleParent))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestResolveTenantReadsHeader(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(testJWTService(), &stubAuthService{
		school: &models.School{ID: 9, Subdomain: "greenwood"},
	})

	router := gin.New()
	router.POST("/login", m.ResolveTenant(), func(c *gin.Context) {
		schoolID, ok := GetSchoolID(c)
		require.True(t, ok)
		require.Equal(t, int64(9), schoolID)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set(TenantHeader, "greenwood")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Missing header is rejected before the service is consulted
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResolveTenantRejectsUnknownSubdomain(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(testJWTService(), &stubAuthService{err: apperrors.ErrTenantNotResolved})

	router := gin.New()
	router.POST("/login", m.ResolveTenant(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set(TenantHeader, "nope")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "student not found", err: apperrors.ErrStudentNotFound, want: http.StatusNotFound},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "permission denied", err: apperrors.ErrPermissionDenied, want: http.StatusForbidden},
		{name: "admission number taken", err: apperrors.ErrAdmissionNoAlreadyExists, want: http.StatusConflict},
		{name: "complaint transition", err: apperrors.ErrInvalidComplaintTransition, want: http.StatusConflict},
		{name: "billing transition", err: apperrors.ErrInvalidBillingTransition, want: http.StatusConflict},
		{name: "validation", err: apperrors.NewValidationError("date", "invalid date"), want: http.StatusBadRequest},
		{name: "conflict with message", err: apperrors.NewConflictError("boom"), want: http.StatusConflict},
		{name: "unknown error", err: context.DeadlineExceeded, want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tc.err)
			require.Equal(t, tc.want, w.Code)
		})
	}
}

func TestHandleAPIErrorCarriesValidationField(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	HandleAPIError(c, apperrors.NewValidationError("admissionNo", "admission number is malformed"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"field":"admissionNo"`)
	require.Contains(t, w.Body.String(), "admission number is malformed")
}
