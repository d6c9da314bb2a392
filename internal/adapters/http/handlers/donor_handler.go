package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/core/services"
	"rokto-connect/internal/pkg/pagination"
	"rokto-connect/internal/pkg/response"
)

// DonorHandler handles donor lifecycle endpoints
type DonorHandler struct {
	donorService *services.DonorService
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(donorService *services.DonorService) *DonorHandler {
	return &DonorHandler{donorService: donorService}
}

// Register handles POST /api/donors
func (h *DonorHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterDonorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	donor, err := h.donorService.Register(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to register donor")
	}

	return response.Created(c, "Donor registered successfully", donor)
}

// Get handles GET /api/donors/:id
func (h *DonorHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donor ID")
	}

	donor, err := h.donorService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDonorNotFound) {
			return response.NotFound(c, "Donor not found")
		}
		return response.FromDomainError(c, err, "Failed to load donor")
	}

	return response.Success(c, "Donor retrieved", donor)
}

// List handles GET /api/donors
func (h *DonorHandler) List(c *fiber.Ctx) error {
	page, err := pagination.GetParams(c)
	if err != nil {
		return response.FromDomainError(c, err, "Invalid pagination")
	}

	input := &services.ListDonorsInput{
		Status:     c.Query("status"),
		BloodGroup: c.Query("bloodGroup"),
		Division:   c.Query("division"),
		District:   c.Query("district"),
		Upazila:    c.Query("upazila"),
		Union:      c.Query("union"),
		Village:    c.Query("village"),
		Search:     c.Query("search"),
		SortField:  c.Query("sortBy"),
		SortDir:    c.Query("order"),
		Page:       page,
	}

	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "available must be true or false")
		}
		input.Available = &available
	}

	output, err := h.donorService.List(c.Context(), input)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list donors")
	}

	return response.Success(c, "Donors retrieved", output)
}

// Top handles GET /api/donors/top
func (h *DonorHandler) Top(c *fiber.Ctx) error {
	donors, err := h.donorService.TopDonors(c.Context())
	if err != nil {
		return response.FromDomainError(c, err, "Failed to load top donors")
	}

	return response.Success(c, "Top donors retrieved", donors)
}

// Verify handles POST /api/donors/:id/verify
func (h *DonorHandler) Verify(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donor ID")
	}

	var body struct {
		AcceptedTime *time.Time `json:"accepted_time"`
	}
	// Body is optional; accepted time defaults to now.
	_ = c.BodyParser(&body)

	acceptedTime := time.Now()
	if body.AcceptedTime != nil {
		acceptedTime = *body.AcceptedTime
	}

	donor, err := h.donorService.Verify(c.Context(), id, acceptedTime)
	if err != nil {
		if errors.Is(err, domain.ErrDonorNotFound) {
			return response.NotFound(c, "Donor not found")
		}
		return response.FromDomainError(c, err, "Failed to verify donor")
	}

	return response.Success(c, "Donor verified", donor)
}

// RecordDonation handles POST /api/donors/:id/donate
func (h *DonorHandler) RecordDonation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donor ID")
	}

	var input services.RecordDonationInput
	_ = c.BodyParser(&input)

	donor, err := h.donorService.RecordDonation(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDonorNotFound):
			return response.NotFound(c, "Donor not found")
		case errors.Is(err, domain.ErrDonorNotVerified):
			return response.Conflict(c, "Donor is not verified")
		case errors.Is(err, domain.ErrDonorNotAvailable):
			return response.Conflict(c, "Donor is not currently available")
		default:
			return response.FromDomainError(c, err, "Failed to record donation")
		}
	}

	return response.Success(c, "Donation recorded", donor)
}

// ResetAvailability handles POST /api/donors/:id/reset
func (h *DonorHandler) ResetAvailability(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donor ID")
	}

	donor, err := h.donorService.ResetAvailability(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDonorNotFound):
			return response.NotFound(c, "Donor not found")
		case errors.Is(err, domain.ErrDonorNotVerified):
			return response.Conflict(c, "Donor is not verified")
		default:
			return response.FromDomainError(c, err, "Failed to reset availability")
		}
	}

	return response.Success(c, "Donor availability reset", donor)
}

// UpdateProfile handles PATCH /api/donors/:id
func (h *DonorHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donor ID")
	}

	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	donor, err := h.donorService.UpdateProfile(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrDonorNotFound) {
			return response.NotFound(c, "Donor not found")
		}
		return response.FromDomainError(c, err, "Failed to update donor")
	}

	return response.Success(c, "Donor updated", donor)
}

// Remove handles DELETE /api/donors/:id
func (h *DonorHandler) Remove(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donor ID")
	}

	if err := h.donorService.Remove(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrDonorNotFound) {
			return response.NotFound(c, "Donor not found")
		}
		return response.FromDomainError(c, err, "Failed to remove donor")
	}

	return response.Success(c, "Donor removed", nil)
}

// parseID extracts the :id route parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidArgument
	}
	return uint(id), nil
}
