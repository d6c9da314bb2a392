package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/core/services"
	"rokto-connect/internal/pkg/response"
)

// ContactHandler handles the published admin contact endpoints
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// List handles GET /api/contacts
func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.contactService.List(c.Context())
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list contacts")
	}

	return response.Success(c, "Contacts retrieved", contacts)
}

// Create handles POST /api/contacts
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var input services.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contact, err := h.contactService.Create(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to create contact")
	}

	return response.Created(c, "Contact created", contact)
}

// Update handles PUT /api/contacts/:id
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid contact ID")
	}

	var input services.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contact, err := h.contactService.Update(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Contact not found")
		}
		return response.FromDomainError(c, err, "Failed to update contact")
	}

	return response.Success(c, "Contact updated", contact)
}

// Delete handles DELETE /api/contacts/:id
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid contact ID")
	}

	if err := h.contactService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Contact not found")
		}
		return response.FromDomainError(c, err, "Failed to delete contact")
	}

	return response.Success(c, "Contact deleted", nil)
}
