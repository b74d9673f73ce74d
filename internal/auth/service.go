package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/logger"
	"zfast-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes
	maxPasswordLength = 72
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	AdminID  uint   `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
	// Version must match the admin's token version for the token to be accepted
	Version              int `json:"ver" example:"0"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"zfast2024"`
}

// LoginResponse represents the response from the login endpoint
type LoginResponse struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Username string `json:"username" example:"admin"`
}

// VerifyResponse represents the response from the token verification endpoint
type VerifyResponse struct {
	Valid    bool   `json:"valid" example:"true"`
	Username string `json:"username" example:"admin"`
}

// ChangePasswordRequest represents the change password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePasswordResponse carries a fresh token; tokens issued before the change stop working
type ChangePasswordResponse struct {
	Success bool   `json:"success" example:"true"`
	Token   string `json:"token"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config    *AuthConfig
	admins    repository.AdminRepositoryInterface
	dummyHash []byte
	now       func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, admins repository.AdminRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	// Compared against when the username is unknown so a miss costs as much as a hit
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("zfast-timing-equalizer"), config.cost())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}

	return &AuthService{
		config:    config,
		admins:    admins,
		dummyHash: dummyHash,
		now:       time.Now,
	}, nil
}

// Login checks the credentials and issues a token
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load admin: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		logger.WithContext(ctx).WithField("username", username).Warn("Login failed: unknown user")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.WithContext(ctx).WithField("username", username).Warn("Login failed: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.WithContext(ctx).WithField("username", admin.Username).Info("Admin logged in")
	return &LoginResponse{Token: token, Username: admin.Username}, nil
}

// Authenticate validates the token and checks it against the stored admin.
// Any failure is reported as ErrTokenInvalid.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*AuthClaims, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	admin, err := s.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if admin.TokenVersion != claims.Version || admin.Username != claims.Username {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// ChangePassword replaces the password of adminID, revokes all earlier tokens and issues a new one
func (s *AuthService) ChangePassword(ctx context.Context, adminID uint, req *ChangePasswordRequest) (*ChangePasswordResponse, error) {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return nil, apperrors.NewValidationError("newPassword", "Current and new password are required")
	}
	if len(req.NewPassword) < minPasswordLength || len(req.NewPassword) > maxPasswordLength {
		return nil, apperrors.NewValidationError("newPassword",
			fmt.Sprintf("New password must be between %d and %d characters", minPasswordLength, maxPasswordLength))
	}

	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return nil, apperrors.ErrCurrentPasswordIncorrect
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.config.cost())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.admins.UpdatePassword(ctx, admin.ID, string(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to store password: %w", err)
	}

	token, err := s.GenerateJWT(updated)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.WithContext(ctx).Info("Admin password changed, earlier tokens revoked")
	return &ChangePasswordResponse{Success: true, Token: token}, nil
}

// GenerateJWT creates a signed token for admin
func (s *AuthService) GenerateJWT(admin *models.Admin) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Version:  admin.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.issuer(),
			Subject:   strconv.FormatUint(uint64(admin.ID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.issuer()), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
