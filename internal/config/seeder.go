package config

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/password"
)

// SeedData seeds the bootstrap superAdmin account and the division
// reference table.
func SeedData(db *gorm.DB, cfg *Config) error {
	if err := seedSuperAdmin(db, cfg); err != nil {
		return err
	}

	if err := seedDivisions(db); err != nil {
		return err
	}

	log.Println("✅ Seed data applied successfully")
	return nil
}

// seedSuperAdmin creates the bootstrap superAdmin from env. Role escalation
// is otherwise only possible for an existing superAdmin, so the first one
// has to come from configuration.
func seedSuperAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.Seed.SuperAdminEmail == "" || cfg.Seed.SuperAdminPassword == "" {
		log.Println("   Skipping superAdmin seed (SUPER_ADMIN_EMAIL/PASSWORD not set)")
		return nil
	}

	var existing models.Account
	err := db.Where("email = ?", cfg.Seed.SuperAdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := password.Hash(cfg.Seed.SuperAdminPassword)
	if err != nil {
		return err
	}

	account := models.Account{
		Email:    cfg.Seed.SuperAdminEmail,
		Name:     cfg.Seed.SuperAdminName,
		Password: hashed,
		Role:     string(domain.RoleSuperAdmin),
	}

	if err := db.Create(&account).Error; err != nil {
		return err
	}

	log.Printf("   Created superAdmin account: %s", account.Email)
	return nil
}

func seedDivisions(db *gorm.DB) error {
	divisions := []string{
		"Dhaka",
		"Chattogram",
		"Rajshahi",
		"Khulna",
		"Barishal",
		"Sylhet",
		"Rangpur",
		"Mymensingh",
	}

	for _, name := range divisions {
		var existing models.Division
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&models.Division{Name: name}).Error; err != nil {
			return err
		}
		log.Printf("   Created division: %s", name)
	}
	return nil
}
