package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"rokto-connect/internal/adapters/http/middleware"
	"rokto-connect/internal/config"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/core/services"
	"rokto-connect/internal/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService    *services.AuthService
	accountService *services.AccountService
	cfg            *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, accountService *services.AccountService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		accountService: accountService,
		cfg:            cfg,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	output, err := h.authService.Register(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrAccountAlreadyExists) {
			return response.Conflict(c, "An account with this email already exists")
		}
		return response.FromDomainError(c, err, "Registration failed")
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)
	return response.Created(c, "Account registered successfully", output)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	output, err := h.authService.Login(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.FromDomainError(c, err, "Login failed")
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)
	return response.Success(c, "Login successful", output)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}

	if refreshToken == "" {
		return response.Unauthorized(c, "Missing refresh token")
	}

	output, err := h.authService.RefreshToken(c.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return response.Unauthorized(c, "Refresh token has expired")
		}
		if errors.Is(err, domain.ErrTokenInvalid) {
			return response.Unauthorized(c, "Invalid refresh token")
		}
		return response.FromDomainError(c, err, "Token refresh failed")
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)
	return response.Success(c, "Token refreshed", output)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")

	if err := h.authService.Logout(c.Context(), refreshToken); err != nil {
		return response.FromDomainError(c, err, "Logout failed")
	}

	h.clearAuthCookies(c)
	return response.Success(c, "Logged out successfully", nil)
}

// LogoutAll handles POST /api/auth/logout-all
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	accountID := middleware.CallerAccountID(c)
	if accountID == 0 {
		return response.Unauthorized(c, "Missing authentication token")
	}

	if err := h.authService.LogoutAll(c.Context(), accountID); err != nil {
		return response.FromDomainError(c, err, "Logout failed")
	}

	h.clearAuthCookies(c)
	return response.Success(c, "Logged out from all sessions", nil)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	email := middleware.CallerEmail(c)
	if email == "" {
		return response.Unauthorized(c, "Missing authentication token")
	}

	account, err := h.accountService.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.FromDomainError(c, err, "Failed to load account")
	}

	return response.Success(c, "Account retrieved", account.ToResponse())
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	secure := h.cfg.IsProd()

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.AccessTokenMins) * time.Minute),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.RefreshTokenDays) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)

	c.Cookie(&fiber.Cookie{
		Name: "access_token", Value: "", Expires: expired,
		HTTPOnly: true, Path: "/",
	})
	c.Cookie(&fiber.Cookie{
		Name: "refresh_token", Value: "", Expires: expired,
		HTTPOnly: true, Path: "/api/auth",
	})
}
