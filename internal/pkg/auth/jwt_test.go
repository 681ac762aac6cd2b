package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edupulse/schoolerp/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "schoolerp.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	svc := testService(time.Hour)
	user := &models.User{
		ID:       42,
		SchoolID: 7,
		Email:    "admin@greenwood.edu",
		RoleType: models.RoleAdmin,
	}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.Equal(t, int(time.Hour.Seconds()), expiresIn)
	require.Equal(t, int((24 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, int64(7), claims.SchoolID)
	require.Equal(t, "admin@greenwood.edu", claims.Email)
	require.Equal(t, models.RoleAdmin, claims.RoleType)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()

	svc := testService(-time.Minute)
	user := &models.User{ID: 1, SchoolID: 1, Email: "x@y.z", RoleType: models.RoleTeacher}

	access, _, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Parallel()

	svc := testService(time.Hour)
	user := &models.User{ID: 1, SchoolID: 1, Email: "x@y.z", RoleType: models.RoleParent}

	access, _, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "schoolerp.test",
	})
	_, err = other.ValidateToken(access)
	require.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", tok)

	tok, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", tok)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}
