package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rokto-connect/internal/adapters/http/middleware"
	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/core/services"
	"rokto-connect/internal/pkg/pagination"
	"rokto-connect/internal/pkg/response"
)

// AccountHandler handles account and role management endpoints
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RoleOf handles GET /api/accounts/role?email=...
func (h *AccountHandler) RoleOf(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		email = middleware.CallerEmail(c)
	}
	if email == "" {
		return response.BadRequest(c, "email is required")
	}

	info, err := h.accountService.RoleOf(c.Context(), email)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to resolve role")
	}

	return response.Success(c, "Role resolved", info)
}

// List handles GET /api/accounts
func (h *AccountHandler) List(c *fiber.Ctx) error {
	page, err := pagination.GetParams(c)
	if err != nil {
		return response.FromDomainError(c, err, "Invalid pagination")
	}

	output, err := h.accountService.List(c.Context(), page)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list accounts")
	}

	return response.Success(c, "Accounts retrieved", fiber.Map{
		"accounts": toAccountResponses(output.Accounts),
		"meta":     output.Meta,
	})
}

// ListAdmins handles GET /api/accounts/admins
func (h *AccountHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.accountService.ListAdmins(c.Context())
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list admins")
	}

	return response.Success(c, "Admins retrieved", toAccountResponses(admins))
}

// roleChangeBody carries the target of a promote/demote call
type roleChangeBody struct {
	Email string `json:"email" validate:"required,email"`
}

// Promote handles POST /api/accounts/promote
func (h *AccountHandler) Promote(c *fiber.Ctx) error {
	var body roleChangeBody
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return response.BadRequest(c, "email is required")
	}

	account, err := h.accountService.Promote(c.Context(), middleware.CallerEmail(c), body.Email)
	if err != nil {
		return h.roleChangeError(c, err, "Failed to promote account")
	}

	return response.Success(c, "Account promoted to admin", account.ToResponse())
}

// Demote handles POST /api/accounts/demote
func (h *AccountHandler) Demote(c *fiber.Ctx) error {
	var body roleChangeBody
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return response.BadRequest(c, "email is required")
	}

	account, err := h.accountService.Demote(c.Context(), middleware.CallerEmail(c), body.Email)
	if err != nil {
		return h.roleChangeError(c, err, "Failed to demote account")
	}

	return response.Success(c, "Account demoted to user", account.ToResponse())
}

// SetRole handles PUT /api/accounts/role
func (h *AccountHandler) SetRole(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email" validate:"required,email"`
		Role  string `json:"role" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Role == "" {
		return response.BadRequest(c, "email and role are required")
	}

	account, err := h.accountService.SetRole(c.Context(), middleware.CallerEmail(c), body.Email, domain.Role(body.Role))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return response.BadRequest(c, "Unknown role")
		}
		return h.roleChangeError(c, err, "Failed to change role")
	}

	return response.Success(c, "Role updated", account.ToResponse())
}

// Delete handles DELETE /api/accounts?email=...
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return response.BadRequest(c, "email is required")
	}

	if err := h.accountService.Delete(c.Context(), middleware.CallerEmail(c), email); err != nil {
		return h.roleChangeError(c, err, "Failed to delete account")
	}

	return response.Success(c, "Account deleted", nil)
}

func (h *AccountHandler) roleChangeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "Only a superAdmin may manage accounts")
	case errors.Is(err, domain.ErrAccountNotFound):
		return response.NotFound(c, "Account not found")
	default:
		return response.FromDomainError(c, err, fallback)
	}
}

func toAccountResponses(accounts []*models.Account) []*models.AccountResponse {
	out := make([]*models.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.ToResponse())
	}
	return out
}
