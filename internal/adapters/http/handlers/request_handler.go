package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/core/services"
	"rokto-connect/internal/pkg/pagination"
	"rokto-connect/internal/pkg/response"
)

// RequestHandler handles blood request endpoints
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// Submit handles POST /api/requests
func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	var input services.SubmitRequestInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.requestService.Submit(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to submit blood request")
	}

	return response.Created(c, "Blood request submitted", request)
}

// Get handles GET /api/requests/:id
func (h *RequestHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	request, err := h.requestService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return response.NotFound(c, "Blood request not found")
		}
		return response.FromDomainError(c, err, "Failed to load blood request")
	}

	return response.Success(c, "Blood request retrieved", request)
}

// List handles GET /api/requests with ?status=incomplete|done
func (h *RequestHandler) List(c *fiber.Ctx) error {
	page, err := pagination.GetParams(c)
	if err != nil {
		return response.FromDomainError(c, err, "Invalid pagination")
	}

	status := c.Query("status", domain.RequestStatusIncomplete)

	output, err := h.requestService.ListByStatus(c.Context(), status, page)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list blood requests")
	}

	return response.Success(c, "Blood requests retrieved", output)
}

// Complete handles POST /api/requests/:id/complete
func (h *RequestHandler) Complete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	var body struct {
		SubmissionTime *time.Time `json:"submission_time"`
	}
	_ = c.BodyParser(&body)

	request, err := h.requestService.Complete(c.Context(), id, body.SubmissionTime)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return response.NotFound(c, "Blood request not found")
		}
		return response.FromDomainError(c, err, "Failed to complete blood request")
	}

	return response.Success(c, "Blood request completed", request)
}

// Remove handles DELETE /api/requests/:id
func (h *RequestHandler) Remove(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	if err := h.requestService.Remove(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return response.NotFound(c, "Blood request not found")
		}
		return response.FromDomainError(c, err, "Failed to remove blood request")
	}

	return response.Success(c, "Blood request removed", nil)
}
