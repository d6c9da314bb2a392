package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"rokto-connect/internal/adapters/http/handlers"
	"rokto-connect/internal/adapters/http/middleware"
	"rokto-connect/internal/adapters/persistence/repositories"
	"rokto-connect/internal/config"
	"rokto-connect/internal/core/services"
	"rokto-connect/internal/pkg/cache"
)

// Setup wires repositories, services and handlers, and registers all routes
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.CooldownService {
	// Optional Redis cache
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	appCache := cache.New(redisClient)

	// Repositories
	donorRepo := repositories.NewDonorRepository(db)
	requestRepo := repositories.NewRequestRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	geoRepo := repositories.NewGeoRepository(db)

	// Services
	authService := services.NewAuthService(accountRepo, tokenRepo, cfg.JWT)
	accountService := services.NewAccountService(accountRepo, tokenRepo)
	donorService := services.NewDonorService(donorRepo, appCache, cfg.Policy.TopDonorLimit)
	requestService := services.NewRequestService(requestRepo)
	contactService := services.NewContactService(contactRepo)
	geoService := services.NewGeoService(geoRepo, appCache)
	cooldownService := services.NewCooldownService(donorRepo, cfg.Policy.CooldownDays, cfg.Policy.CooldownSpec)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, accountService, cfg)
	accountHandler := handlers.NewAccountHandler(accountService)
	donorHandler := handlers.NewDonorHandler(donorService)
	requestHandler := handlers.NewRequestHandler(requestService)
	contactHandler := handlers.NewContactHandler(contactService)
	geoHandler := handlers.NewGeoHandler(geoService)
	healthHandler := handlers.NewHealthHandler(db, appCache)

	// Auth middleware
	auth := middleware.AuthMiddleware(cfg.JWT.Secret)
	adminOnly := middleware.AdminOrAbove()
	superOnly := middleware.SuperAdminOnly()

	// Health
	app.Get("/health", healthHandler.Check)
	app.Get("/ready", healthHandler.Ready)

	api := app.Group("/api")

	// Authentication
	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authGroup.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/logout-all", auth, authHandler.LogoutAll)
	authGroup.Get("/me", auth, authHandler.Me)

	// Accounts and roles
	accounts := api.Group("/accounts")
	accounts.Get("/role", auth, accountHandler.RoleOf)
	accounts.Get("/", auth, adminOnly, accountHandler.List)
	accounts.Get("/admins", auth, accountHandler.ListAdmins)
	accounts.Post("/promote", auth, superOnly, accountHandler.Promote)
	accounts.Post("/demote", auth, superOnly, accountHandler.Demote)
	accounts.Put("/role", auth, superOnly, accountHandler.SetRole)
	accounts.Delete("/", auth, superOnly, accountHandler.Delete)

	// Donors
	donors := api.Group("/donors")
	if cfg.Policy.PublicDonorSignup {
		donors.Post("/", middleware.SubmitRateLimiter(), donorHandler.Register)
	} else {
		donors.Post("/", auth, donorHandler.Register)
	}
	donors.Get("/", auth, donorHandler.List)
	donors.Get("/top", donorHandler.Top)
	donors.Get("/:id", auth, donorHandler.Get)
	donors.Post("/:id/verify", auth, adminOnly, donorHandler.Verify)
	donors.Post("/:id/donate", auth, donorHandler.RecordDonation)
	donors.Post("/:id/reset", auth, adminOnly, donorHandler.ResetAvailability)
	donors.Patch("/:id", auth, donorHandler.UpdateProfile)
	donors.Delete("/:id", auth, adminOnly, donorHandler.Remove)

	// Blood requests
	requests := api.Group("/requests")
	if cfg.Policy.PublicRequestSubmit {
		requests.Post("/", middleware.SubmitRateLimiter(), requestHandler.Submit)
	} else {
		requests.Post("/", auth, requestHandler.Submit)
	}
	requests.Get("/", auth, requestHandler.List)
	requests.Get("/:id", auth, requestHandler.Get)
	requests.Post("/:id/complete", auth, adminOnly, requestHandler.Complete)
	requests.Delete("/:id", auth, adminOnly, requestHandler.Remove)

	// Admin contacts
	contacts := api.Group("/contacts")
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", middleware.SubmitRateLimiter(), contactHandler.Create)
	contacts.Put("/:id", auth, superOnly, contactHandler.Update)
	contacts.Delete("/:id", auth, superOnly, contactHandler.Delete)

	// Geographic reference data. Reads are public and cacheable; writes
	// require privilege, deletes the highest.
	geo := api.Group("/geo", middleware.CacheControl(3600))
	geo.Get("/divisions", geoHandler.ListDivisions)
	geo.Post("/divisions", auth, adminOnly, geoHandler.CreateDivision)
	geo.Delete("/divisions/:id", auth, superOnly, geoHandler.DeleteDivision)

	geo.Get("/districts", geoHandler.ListDistricts)
	geo.Post("/districts", auth, adminOnly, geoHandler.CreateDistrict)
	geo.Delete("/districts/:id", auth, superOnly, geoHandler.DeleteDistrict)

	geo.Get("/upazilas", geoHandler.ListUpazilas)
	geo.Post("/upazilas", auth, adminOnly, geoHandler.CreateUpazila)
	geo.Delete("/upazilas/:id", auth, superOnly, geoHandler.DeleteUpazila)

	geo.Get("/unions", geoHandler.ListUnions)
	geo.Post("/unions", auth, adminOnly, geoHandler.CreateUnion)
	geo.Delete("/unions/:id", auth, superOnly, geoHandler.DeleteUnion)

	geo.Get("/villages", geoHandler.ListVillages)
	geo.Post("/villages", auth, adminOnly, geoHandler.CreateVillage)
	geo.Delete("/villages/:id", auth, superOnly, geoHandler.DeleteVillage)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Route not found",
		})
	})

	return cooldownService
}
