package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/config"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/jwt"
	"rokto-connect/internal/pkg/password"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:           "test-access-secret",
		RefreshSecret:    "test-refresh-secret",
		AccessTokenMins:  15,
		RefreshTokenDays: 7,
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	accounts := &mockAccountRepo{}
	accounts.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewAuthService(accounts, &mockTokenRepo{}, testJWTConfig())
	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:    "taken@example.com",
		Name:     "Someone",
		Password: "correct-horse",
	})

	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	svc := NewAuthService(&mockAccountRepo{}, &mockTokenRepo{}, testJWTConfig())

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:    "new@example.com",
		Name:     "Someone",
		Password: "short",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRegister_CreatesPlainUser(t *testing.T) {
	accounts := &mockAccountRepo{}
	tokens := &mockTokenRepo{}

	accounts.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	accounts.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
		return a.Email == "new@example.com" && a.Role == string(domain.RoleUser)
	})).Return(nil)
	tokens.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	svc := NewAuthService(accounts, tokens, testJWTConfig())
	output, err := svc.Register(context.Background(), &RegisterInput{
		Email:    "New@Example.com",
		Name:     "Someone",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, string(domain.RoleUser), output.Account.Role)
	accounts.AssertExpectations(t)
}

func TestLogin_InvalidPassword(t *testing.T) {
	hashed, _ := password.Hash("the-right-one")
	accounts := &mockAccountRepo{}
	accounts.On("GetByEmail", mock.Anything, "user@example.com").Return(&models.Account{
		ID: 1, Email: "user@example.com", Password: hashed, Role: string(domain.RoleUser),
	}, nil)

	svc := NewAuthService(accounts, &mockTokenRepo{}, testJWTConfig())
	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "user@example.com",
		Password: "the-wrong-one",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	accounts := &mockAccountRepo{}
	accounts.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(accounts, &mockTokenRepo{}, testJWTConfig())
	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever-it-is",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_RefreshesDisplayName(t *testing.T) {
	hashed, _ := password.Hash("the-right-one")
	accounts := &mockAccountRepo{}
	tokens := &mockTokenRepo{}

	accounts.On("GetByEmail", mock.Anything, "user@example.com").Return(&models.Account{
		ID: 1, Email: "user@example.com", Name: "Old Name", Password: hashed, Role: string(domain.RoleUser),
	}, nil)
	accounts.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
		return a.Name == "New Name"
	})).Return(nil)
	tokens.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	svc := NewAuthService(accounts, tokens, testJWTConfig())
	output, err := svc.Login(context.Background(), &LoginInput{
		Email:    "user@example.com",
		Password: "the-right-one",
		Name:     "New Name",
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", output.Account.Name)
	accounts.AssertExpectations(t)
}

func TestRefreshToken_RotationRevokesOldToken(t *testing.T) {
	cfg := testJWTConfig()
	refreshToken, err := jwt.GenerateRefreshToken(1, "token-id-1", cfg.RefreshSecret, cfg.RefreshTokenDays)
	assert.NoError(t, err)

	accounts := &mockAccountRepo{}
	tokens := &mockTokenRepo{}

	tokens.On("GetByTokenHash", mock.Anything, password.HashToken(refreshToken)).Return(&models.RefreshToken{
		ID:        9,
		AccountID: 1,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}, nil)
	accounts.On("GetByID", mock.Anything, uint(1)).Return(&models.Account{
		ID: 1, Email: "user@example.com", Name: "Someone", Role: string(domain.RoleUser),
	}, nil)
	tokens.On("Revoke", mock.Anything, uint(9)).Return(nil)
	tokens.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	svc := NewAuthService(accounts, tokens, cfg)
	output, err := svc.RefreshToken(context.Background(), refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.NotEqual(t, refreshToken, output.RefreshToken)
	tokens.AssertExpectations(t)
}

func TestRefreshToken_RevokedStoredTokenRejected(t *testing.T) {
	cfg := testJWTConfig()
	refreshToken, err := jwt.GenerateRefreshToken(1, "token-id-2", cfg.RefreshSecret, cfg.RefreshTokenDays)
	assert.NoError(t, err)

	revokedAt := time.Now().Add(-time.Hour)
	tokens := &mockTokenRepo{}
	tokens.On("GetByTokenHash", mock.Anything, password.HashToken(refreshToken)).Return(&models.RefreshToken{
		ID:        9,
		AccountID: 1,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		RevokedAt: &revokedAt,
	}, nil)

	svc := NewAuthService(&mockAccountRepo{}, tokens, cfg)
	_, err = svc.RefreshToken(context.Background(), refreshToken)

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRefreshToken_ExpiredStoredTokenRejected(t *testing.T) {
	cfg := testJWTConfig()
	refreshToken, err := jwt.GenerateRefreshToken(1, "token-id-3", cfg.RefreshSecret, cfg.RefreshTokenDays)
	assert.NoError(t, err)

	tokens := &mockTokenRepo{}
	tokens.On("GetByTokenHash", mock.Anything, password.HashToken(refreshToken)).Return(&models.RefreshToken{
		ID:        9,
		AccountID: 1,
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)

	svc := NewAuthService(&mockAccountRepo{}, tokens, cfg)
	_, err = svc.RefreshToken(context.Background(), refreshToken)

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	svc := NewAuthService(&mockAccountRepo{}, &mockTokenRepo{}, testJWTConfig())

	_, err := svc.RefreshToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestLogout_EmptyTokenIsNoOp(t *testing.T) {
	svc := NewAuthService(&mockAccountRepo{}, &mockTokenRepo{}, testJWTConfig())

	assert.NoError(t, svc.Logout(context.Background(), ""))
}
