package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/jwt"
)

const testSecret = "middleware-test-secret"

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	route := make([]fiber.Handler, 0, len(handlers)+1)
	route = append(route, handlers...)
	route = append(route, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/protected", route...)
	return app
}

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken(1, "user@example.com", "Test User", role, testSecret, 15)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := newTestApp(AuthMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	app := newTestApp(AuthMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerToken(t, "user"))
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	app := newTestApp(AuthMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	app := newTestApp(AuthMiddleware(testSecret))

	token, err := jwt.GenerateAccessToken(1, "user@example.com", "Test User", "user", testSecret, -1)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_UserBlockedFromAdminRoute(t *testing.T) {
	app := newTestApp(AuthMiddleware(testSecret), AdminOrAbove())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerToken(t, "user"))
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	app := newTestApp(AuthMiddleware(testSecret), AdminOrAbove())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerToken(t, "admin"))
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_SuperAdminPassesAdminGate(t *testing.T) {
	app := newTestApp(AuthMiddleware(testSecret), RequireRole(domain.RoleAdmin))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerToken(t, "superAdmin"))
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_AdminBlockedFromSuperAdminRoute(t *testing.T) {
	app := newTestApp(AuthMiddleware(testSecret), SuperAdminOnly())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerToken(t, "admin"))
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOptionalAuth_NoTokenStillPasses(t *testing.T) {
	app := newTestApp(OptionalAuth(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
