package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"rokto-connect/internal/adapters/http/middleware"
	"rokto-connect/internal/adapters/http/routes"
	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Seed bootstrap data
	if err := config.SeedData(db, cfg); err != nil {
		log.Fatalf("❌ Failed to seed data: %v", err)
	}

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Rokto Connect API",
		ErrorHandler: middleware.CustomErrorHandler,
		BodyLimit:    1 * 1024 * 1024,
	})

	// Global middleware
	middleware.Setup(app, cfg)

	// Routes and dependency wiring
	cooldownService := routes.Setup(app, db, cfg)

	// Scheduled availability reset
	if err := cooldownService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cooldown sweep: %v", err)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("🛑 Shutting down server...")
		cooldownService.Stop()

		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server shutdown error: %v", err)
		}

		if err := config.CloseDatabase(db); err != nil {
			log.Printf("❌ Database close error: %v", err)
		}
	}()

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
