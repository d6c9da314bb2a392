package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/jwt"
	"rokto-connect/internal/pkg/response"
)

// Locals keys set by AuthMiddleware
const (
	LocalAccountID = "accountID"
	LocalEmail     = "email"
	LocalName      = "name"
	LocalRole      = "role"
)

// AuthMiddleware validates the access token and stores the caller's
// identity in locals. The token is read from the access_token cookie
// first, then the Authorization header.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("access_token")

		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" {
			return response.Unauthorized(c, "Missing authentication token")
		}

		claims, err := jwt.ValidateAccessToken(tokenString, jwtSecret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Invalid authentication token")
		}

		c.Locals(LocalAccountID, claims.AccountID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

// RequireRole enforces a minimum role from the token claims. Privilege
// escalation paths re-check the stored role in the service layer on top
// of this; the middleware only filters the obvious cases early.
func RequireRole(min domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok || role == "" {
			return response.Unauthorized(c, "Missing authentication token")
		}

		if !domain.Role(role).AtLeast(min) {
			return response.Forbidden(c, "Insufficient privileges")
		}

		return c.Next()
	}
}

// AdminOrAbove allows admin and superAdmin callers
func AdminOrAbove() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// SuperAdminOnly allows only superAdmin callers
func SuperAdminOnly() fiber.Handler {
	return RequireRole(domain.RoleSuperAdmin)
}

// OptionalAuth extracts identity if a valid token is present, but never
// rejects the request
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("access_token")

		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString != "" {
			if claims, err := jwt.ValidateAccessToken(tokenString, jwtSecret); err == nil {
				c.Locals(LocalAccountID, claims.AccountID)
				c.Locals(LocalEmail, claims.Email)
				c.Locals(LocalName, claims.Name)
				c.Locals(LocalRole, claims.Role)
			}
		}

		return c.Next()
	}
}

// CallerEmail returns the authenticated caller's email, if any
func CallerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(LocalEmail).(string)
	return email
}

// CallerAccountID returns the authenticated caller's account ID, if any
func CallerAccountID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalAccountID).(uint)
	return id
}
