package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"rokto-connect/internal/adapters/persistence/repositories"
)

// CooldownService periodically returns donors to the available pool once
// their donation cool-down window has elapsed. A zero cool-down disables
// the sweep entirely; availability is then managed by hand.
type CooldownService struct {
	donorRepo    repositories.DonorRepository
	cooldownDays int
	spec         string
	cron         *cron.Cron
}

// NewCooldownService creates a new cooldown sweep service
func NewCooldownService(donorRepo repositories.DonorRepository, cooldownDays int, spec string) *CooldownService {
	return &CooldownService{
		donorRepo:    donorRepo,
		cooldownDays: cooldownDays,
		spec:         spec,
	}
}

// Start schedules the sweep. Safe to call when the sweep is disabled.
func (s *CooldownService) Start() error {
	if s.cooldownDays <= 0 {
		log.Println("⏸️ Cooldown sweep disabled (DONATION_COOLDOWN_DAYS=0)")
		return nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.spec, s.Sweep); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("🕐 Cooldown sweep scheduled [%s], window %d days", s.spec, s.cooldownDays)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *CooldownService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	log.Println("🛑 Cooldown sweep stopped")
}

// Sweep resets availability for every verified donor whose last donation
// is older than the cool-down window.
func (s *CooldownService) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.cooldownDays)
	rows, err := s.donorRepo.ResetAvailabilityBefore(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Cooldown sweep failed: %v", err)
		return
	}

	if rows > 0 {
		log.Printf("✅ Cooldown sweep: %d donor(s) available again", rows)
	}
}
