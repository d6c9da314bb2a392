package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/adapters/persistence/repositories"
	"rokto-connect/internal/config"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/jwt"
	"rokto-connect/internal/pkg/password"
)

// AuthService handles registration, login and the refresh token rotation
type AuthService struct {
	accountRepo repositories.AccountRepository
	tokenRepo   repositories.RefreshTokenRepository
	jwtConfig   config.JWTConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(accountRepo repositories.AccountRepository, tokenRepo repositories.RefreshTokenRepository, jwtConfig config.JWTConfig) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		jwtConfig:   jwtConfig,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Name, when supplied, refreshes the stored display name on login.
	Name string `json:"name,omitempty"`
}

// AuthOutput represents authentication output
type AuthOutput struct {
	Account      *models.AccountResponse `json:"account"`
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token"`
}

// Register creates a new account with plain user privilege. Accounts are
// keyed by email; privilege is only ever granted later by a superAdmin.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrInvalidArgument)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if err := password.ValidatePassword(input.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	exists, err := s.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAccountAlreadyExists
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Email:    email,
		Name:     input.Name,
		Password: hashed,
		Role:     string(domain.RoleUser),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	log.Printf("✅ Account registered: %s", account.Email)
	return s.issueTokens(ctx, account)
}

// Login verifies credentials and issues a fresh token pair. A supplied
// display name updates the stored one, keeping the account record current
// with each sign-in.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthOutput, error) {
	email := normalizeEmail(input.Email)

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Verify(input.Password, account.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if input.Name != "" && input.Name != account.Name {
		account.Name = input.Name
		if err := s.accountRepo.Update(ctx, account); err != nil {
			log.Printf("⚠️ Failed to refresh display name for %s: %v", email, err)
		}
	}

	log.Printf("✅ Login: %s [%s]", account.Email, account.Role)
	return s.issueTokens(ctx, account)
}

// RefreshToken rotates a refresh token: the presented token is validated
// against its stored hash, revoked, and replaced along with a new access
// token. The new access token carries the role stored now, not the role
// at original issue time.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthOutput, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.jwtConfig.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	stored, err := s.tokenRepo.GetByTokenHash(ctx, password.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	if stored.IsRevoked() || stored.IsExpired() {
		return nil, domain.ErrTokenInvalid
	}

	account, err := s.accountRepo.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	// Rotation: the old token is single-use.
	if err := s.tokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, account)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokenRepo.RevokeByTokenHash(ctx, password.HashToken(refreshToken))
}

// LogoutAll revokes every refresh token the account holds
func (s *AuthService) LogoutAll(ctx context.Context, accountID uint) error {
	return s.tokenRepo.RevokeAllByAccountID(ctx, accountID)
}

// CleanupExpiredTokens removes expired refresh tokens from storage
func (s *AuthService) CleanupExpiredTokens(ctx context.Context) error {
	return s.tokenRepo.DeleteExpired(ctx)
}

func (s *AuthService) issueTokens(ctx context.Context, account *models.Account) (*AuthOutput, error) {
	accessToken, err := jwt.GenerateAccessToken(
		account.ID, account.Email, account.Name, account.Role,
		s.jwtConfig.Secret, s.jwtConfig.AccessTokenMins,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	tokenID := uuid.New().String()
	refreshToken, err := jwt.GenerateRefreshToken(
		account.ID, tokenID,
		s.jwtConfig.RefreshSecret, s.jwtConfig.RefreshTokenDays,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	record := &models.RefreshToken{
		AccountID: account.ID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.jwtConfig.RefreshTokenDays),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &AuthOutput{
		Account:      account.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
