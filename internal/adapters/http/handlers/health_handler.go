package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rokto-connect/internal/config"
	"rokto-connect/internal/pkg/cache"
	"rokto-connect/internal/pkg/response"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db        *gorm.DB
	cache     *cache.Cache
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, c *cache.Cache) *HealthHandler {
	return &HealthHandler{
		db:        db,
		cache:     c,
		startTime: time.Now(),
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := fiber.Map{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	}

	if err := config.HealthCheck(h.db); err != nil {
		status["status"] = "degraded"
		status["database"] = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	status["database"] = "up"

	if h.cache.Enabled() {
		if err := h.cache.Ping(c.Context()); err != nil {
			status["cache"] = "down"
		} else {
			status["cache"] = "up"
		}
	}

	return c.JSON(status)
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := config.HealthCheck(h.db); err != nil {
		return response.ServiceUnavailable(c, "Database not ready")
	}
	return response.Success(c, "Ready", nil)
}
