package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/auth"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

// AuthService defines school registration and user authentication operations
type AuthService interface {
	RegisterSchool(ctx context.Context, req *dto.RegisterSchoolRequest) (*models.School, *dto.TokenResponse, error)
	Login(ctx context.Context, schoolID int64, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, schoolID int64, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int64) error
	GetProfile(ctx context.Context, schoolID, userID int64) (*dto.ProfileResponse, error)
	ResolveTenant(ctx context.Context, subdomain string) (*models.School, error)
}

type authServiceImpl struct {
	tx              txRunner
	schoolRepo      schoolStore
	userRepo        userStore
	tokenRepo       tokenStore
	jwtService      *auth.JWTService
	academicService AcademicService
}

// NewAuthService creates a new authentication service
func NewAuthService(tx txRunner, schoolRepo schoolStore, userRepo userStore, tokenRepo tokenStore,
	jwtService *auth.JWTService, academicService AcademicService) AuthService {
	return &authServiceImpl{
		tx:              tx,
		schoolRepo:      schoolRepo,
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		jwtService:      jwtService,
		academicService: academicService,
	}
}

// RegisterSchool creates a new tenant school together with its first admin
// user in one transaction, then issues a token pair for the admin.
func (s *authServiceImpl) RegisterSchool(ctx context.Context, req *dto.RegisterSchoolRequest) (*models.School, *dto.TokenResponse, error) {
	hashedPassword, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	plan := req.Plan
	if plan == "" {
		plan = "standard"
	}

	school := &models.School{
		Name:      req.SchoolName,
		Subdomain: strings.ToLower(req.Subdomain),
		Plan:      plan,
		Status:    models.SchoolActive,
		IsActive:  true,
	}

	admin := &models.User{
		Email:     strings.ToLower(req.AdminEmail),
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleType:  models.RoleAdmin,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.schoolRepo.CreateTx(ctx, tx, school); err != nil {
			return err
		}
		admin.SchoolID = school.ID
		return s.userRepo.CreateTx(ctx, tx, admin)
	})
	if err != nil {
		return nil, nil, err
	}

	// Starter reference data. A seed failure leaves a usable but empty
	// school, so it is logged rather than rolled into the registration.
	if err := s.academicService.SeedDefaults(ctx, school.ID); err != nil {
		logger.Error().Err(err).Int64("schoolId", school.ID).Msg("Failed to seed school defaults")
	}

	tokens, err := s.issueTokens(ctx, admin)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().Int64("schoolId", school.ID).Str("subdomain", school.Subdomain).Msg("School registered")
	return school, tokens, nil
}

// Login authenticates a user inside the resolved tenant.
func (s *authServiceImpl) Login(ctx context.Context, schoolID int64, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, schoolID, strings.ToLower(req.Email))
	if err != nil {
		// Same failure for unknown email and wrong password.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, schoolID, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to stamp last login")
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token for a new token pair.
func (s *authServiceImpl) RefreshToken(ctx context.Context, schoolID int64, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenRepo.GetUserID(ctx, refreshToken)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, schoolID, userID)
	if err != nil {
		// Token belongs to another tenant or a deleted user.
		return nil, apperrors.ErrTokenInvalid
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes all refresh tokens for a user.
func (s *authServiceImpl) Logout(ctx context.Context, userID int64) error {
	return s.tokenRepo.DeleteForUser(ctx, userID)
}

// GetProfile returns the authenticated user's profile.
func (s *authServiceImpl) GetProfile(ctx context.Context, schoolID, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, schoolID, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:        user.ID,
		SchoolID:  user.SchoolID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RoleType:  string(user.RoleType),
	}, nil
}

// ResolveTenant maps a subdomain to an active school. Suspended and unknown
// subdomains both fail with the same error.
func (s *authServiceImpl) ResolveTenant(ctx context.Context, subdomain string) (*models.School, error) {
	school, err := s.schoolRepo.GetBySubdomain(ctx, strings.ToLower(strings.TrimSpace(subdomain)))
	if err != nil {
		return nil, apperrors.ErrTenantNotResolved
	}
	return school, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.tokenRepo.Store(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}
