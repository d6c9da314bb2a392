package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/core/services"
	"rokto-connect/internal/pkg/response"
)

// GeoHandler handles the geographic reference endpoints
type GeoHandler struct {
	geoService *services.GeoService
}

// NewGeoHandler creates a new geo handler
func NewGeoHandler(geoService *services.GeoService) *GeoHandler {
	return &GeoHandler{geoService: geoService}
}

// geoCreateBody carries a name plus an optional parent reference
type geoCreateBody struct {
	Name     string `json:"name" validate:"required"`
	ParentID uint   `json:"parent_id,omitempty"`
}

// ListDivisions handles GET /api/geo/divisions
func (h *GeoHandler) ListDivisions(c *fiber.Ctx) error {
	divisions, err := h.geoService.ListDivisions(c.Context())
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list divisions")
	}
	return response.Success(c, "Divisions retrieved", divisions)
}

// CreateDivision handles POST /api/geo/divisions
func (h *GeoHandler) CreateDivision(c *fiber.Ctx) error {
	var body geoCreateBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	division, err := h.geoService.CreateDivision(c.Context(), body.Name)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to create division")
	}
	return response.Created(c, "Division created", division)
}

// DeleteDivision handles DELETE /api/geo/divisions/:id
func (h *GeoHandler) DeleteDivision(c *fiber.Ctx) error {
	return h.deleteGeo(c, h.geoService.DeleteDivision, "Division")
}

// ListDistricts handles GET /api/geo/districts?divisionId=...
func (h *GeoHandler) ListDistricts(c *fiber.Ctx) error {
	districts, err := h.geoService.ListDistricts(c.Context(), parentID(c, "divisionId"))
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list districts")
	}
	return response.Success(c, "Districts retrieved", districts)
}

// CreateDistrict handles POST /api/geo/districts
func (h *GeoHandler) CreateDistrict(c *fiber.Ctx) error {
	var body geoCreateBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	district, err := h.geoService.CreateDistrict(c.Context(), body.ParentID, body.Name)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to create district")
	}
	return response.Created(c, "District created", district)
}

// DeleteDistrict handles DELETE /api/geo/districts/:id
func (h *GeoHandler) DeleteDistrict(c *fiber.Ctx) error {
	return h.deleteGeo(c, h.geoService.DeleteDistrict, "District")
}

// ListUpazilas handles GET /api/geo/upazilas?districtId=...
func (h *GeoHandler) ListUpazilas(c *fiber.Ctx) error {
	upazilas, err := h.geoService.ListUpazilas(c.Context(), parentID(c, "districtId"))
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list upazilas")
	}
	return response.Success(c, "Upazilas retrieved", upazilas)
}

// CreateUpazila handles POST /api/geo/upazilas
func (h *GeoHandler) CreateUpazila(c *fiber.Ctx) error {
	var body geoCreateBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	upazila, err := h.geoService.CreateUpazila(c.Context(), body.ParentID, body.Name)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to create upazila")
	}
	return response.Created(c, "Upazila created", upazila)
}

// DeleteUpazila handles DELETE /api/geo/upazilas/:id
func (h *GeoHandler) DeleteUpazila(c *fiber.Ctx) error {
	return h.deleteGeo(c, h.geoService.DeleteUpazila, "Upazila")
}

// ListUnions handles GET /api/geo/unions?upazilaId=...
func (h *GeoHandler) ListUnions(c *fiber.Ctx) error {
	unions, err := h.geoService.ListUnions(c.Context(), parentID(c, "upazilaId"))
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list unions")
	}
	return response.Success(c, "Unions retrieved", unions)
}

// CreateUnion handles POST /api/geo/unions
func (h *GeoHandler) CreateUnion(c *fiber.Ctx) error {
	var body geoCreateBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	union, err := h.geoService.CreateUnion(c.Context(), body.ParentID, body.Name)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to create union")
	}
	return response.Created(c, "Union created", union)
}

// DeleteUnion handles DELETE /api/geo/unions/:id
func (h *GeoHandler) DeleteUnion(c *fiber.Ctx) error {
	return h.deleteGeo(c, h.geoService.DeleteUnion, "Union")
}

// ListVillages handles GET /api/geo/villages?unionId=...
func (h *GeoHandler) ListVillages(c *fiber.Ctx) error {
	villages, err := h.geoService.ListVillages(c.Context(), parentID(c, "unionId"))
	if err != nil {
		return response.FromDomainError(c, err, "Failed to list villages")
	}
	return response.Success(c, "Villages retrieved", villages)
}

// CreateVillage handles POST /api/geo/villages
func (h *GeoHandler) CreateVillage(c *fiber.Ctx) error {
	var body geoCreateBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	village, err := h.geoService.CreateVillage(c.Context(), body.ParentID, body.Name)
	if err != nil {
		return response.FromDomainError(c, err, "Failed to create village")
	}
	return response.Created(c, "Village created", village)
}

// DeleteVillage handles DELETE /api/geo/villages/:id
func (h *GeoHandler) DeleteVillage(c *fiber.Ctx) error {
	return h.deleteGeo(c, h.geoService.DeleteVillage, "Village")
}

func (h *GeoHandler) deleteGeo(c *fiber.Ctx, del func(ctx context.Context, id uint) error, label string) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid "+strings.ToLower(label)+" ID")
	}

	if err := del(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, label+" not found")
		}
		return response.FromDomainError(c, err, "Failed to delete "+strings.ToLower(label))
	}

	return response.Success(c, label+" deleted", nil)
}

// parentID reads an optional numeric query parameter; 0 means unscoped
func parentID(c *fiber.Ctx, key string) uint {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
