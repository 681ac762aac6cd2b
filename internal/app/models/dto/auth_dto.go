package dto

// RegisterSchoolRequest registers a new tenant school together with its
// first admin user. Used on the unauthenticated path with no tenant header.
type RegisterSchoolRequest struct {
	SchoolName    string `json:"schoolName" binding:"required,min=2,max=100" example:"Greenwood High"`
	Subdomain     string `json:"subdomain" binding:"required,subdomain" example:"greenwood"`
	Plan          string `json:"plan" binding:"omitempty,max=40" example:"standard"`
	AdminEmail    string `json:"adminEmail" binding:"required,email" example:"admin@greenwood.edu"`
	AdminPassword string `json:"adminPassword" binding:"required,min=8"`
	FirstName     string `json:"firstName" binding:"required,min=2,max=100" example:"Priya"`
	LastName      string `json:"lastName" binding:"required,min=2,max=100" example:"Nair"`
}

// LoginRequest authenticates a user within the tenant resolved from the
// X-Tenant subdomain header.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@greenwood.edu"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// ProfileResponse describes the authenticated user.
type ProfileResponse struct {
	ID        int64  `json:"id"`
	SchoolID  int64  `json:"schoolId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	RoleType  string `json:"roleType"`
}
