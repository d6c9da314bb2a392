package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/adapters/persistence/repositories"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/cache"
)

const (
	divisionsCacheKey = "geo:divisions"
	geoCacheTTL       = time.Hour
)

// GeoService serves the hierarchical geographic reference data:
// division → district → upazila → union → village.
type GeoService struct {
	geoRepo repositories.GeoRepository
	cache   *cache.Cache
}

// NewGeoService creates a new geo service
func NewGeoService(geoRepo repositories.GeoRepository, c *cache.Cache) *GeoService {
	return &GeoService{geoRepo: geoRepo, cache: c}
}

// ListDivisions returns all divisions, name-sorted. Divisions change
// rarely, so the list is cached aggressively.
func (s *GeoService) ListDivisions(ctx context.Context) ([]*models.Division, error) {
	var cached []*models.Division
	if err := s.cache.GetJSON(ctx, divisionsCacheKey, &cached); err == nil {
		return cached, nil
	}

	divisions, err := s.geoRepo.ListDivisions(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, divisionsCacheKey, divisions, geoCacheTTL); err != nil {
		log.Printf("⚠️ Failed to cache divisions: %v", err)
	}

	return divisions, nil
}

// CreateDivision adds a new division
func (s *GeoService) CreateDivision(ctx context.Context, name string) (*models.Division, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}

	division := &models.Division{Name: name}
	if err := s.geoRepo.CreateDivision(ctx, division); err != nil {
		return nil, err
	}

	s.invalidateDivisions(ctx)
	return division, nil
}

// DeleteDivision removes a division
func (s *GeoService) DeleteDivision(ctx context.Context, id uint) error {
	rows, err := s.geoRepo.DeleteDivision(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	s.invalidateDivisions(ctx)
	return nil
}

// ListDistricts returns districts, optionally scoped to a division
func (s *GeoService) ListDistricts(ctx context.Context, divisionID uint) ([]*models.District, error) {
	return s.geoRepo.ListDistricts(ctx, divisionID)
}

// CreateDistrict adds a new district under a division
func (s *GeoService) CreateDistrict(ctx context.Context, divisionID uint, name string) (*models.District, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if divisionID == 0 {
		return nil, fmt.Errorf("%w: division id is required", domain.ErrInvalidArgument)
	}

	district := &models.District{DivisionID: divisionID, Name: name}
	if err := s.geoRepo.CreateDistrict(ctx, district); err != nil {
		return nil, err
	}
	return district, nil
}

// DeleteDistrict removes a district
func (s *GeoService) DeleteDistrict(ctx context.Context, id uint) error {
	rows, err := s.geoRepo.DeleteDistrict(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListUpazilas returns upazilas, optionally scoped to a district
func (s *GeoService) ListUpazilas(ctx context.Context, districtID uint) ([]*models.Upazila, error) {
	return s.geoRepo.ListUpazilas(ctx, districtID)
}

// CreateUpazila adds a new upazila under a district
func (s *GeoService) CreateUpazila(ctx context.Context, districtID uint, name string) (*models.Upazila, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if districtID == 0 {
		return nil, fmt.Errorf("%w: district id is required", domain.ErrInvalidArgument)
	}

	upazila := &models.Upazila{DistrictID: districtID, Name: name}
	if err := s.geoRepo.CreateUpazila(ctx, upazila); err != nil {
		return nil, err
	}
	return upazila, nil
}

// DeleteUpazila removes an upazila
func (s *GeoService) DeleteUpazila(ctx context.Context, id uint) error {
	rows, err := s.geoRepo.DeleteUpazila(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListUnions returns unions, optionally scoped to an upazila
func (s *GeoService) ListUnions(ctx context.Context, upazilaID uint) ([]*models.Union, error) {
	return s.geoRepo.ListUnions(ctx, upazilaID)
}

// CreateUnion adds a new union under an upazila
func (s *GeoService) CreateUnion(ctx context.Context, upazilaID uint, name string) (*models.Union, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if upazilaID == 0 {
		return nil, fmt.Errorf("%w: upazila id is required", domain.ErrInvalidArgument)
	}

	union := &models.Union{UpazilaID: upazilaID, Name: name}
	if err := s.geoRepo.CreateUnion(ctx, union); err != nil {
		return nil, err
	}
	return union, nil
}

// DeleteUnion removes a union
func (s *GeoService) DeleteUnion(ctx context.Context, id uint) error {
	rows, err := s.geoRepo.DeleteUnion(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListVillages returns villages, optionally scoped to a union
func (s *GeoService) ListVillages(ctx context.Context, unionID uint) ([]*models.Village, error) {
	return s.geoRepo.ListVillages(ctx, unionID)
}

// CreateVillage adds a new village under a union
func (s *GeoService) CreateVillage(ctx context.Context, unionID uint, name string) (*models.Village, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if unionID == 0 {
		return nil, fmt.Errorf("%w: union id is required", domain.ErrInvalidArgument)
	}

	village := &models.Village{UnionID: unionID, Name: name}
	if err := s.geoRepo.CreateVillage(ctx, village); err != nil {
		return nil, err
	}
	return village, nil
}

// DeleteVillage removes a village
func (s *GeoService) DeleteVillage(ctx context.Context, id uint) error {
	rows, err := s.geoRepo.DeleteVillage(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *GeoService) invalidateDivisions(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, divisionsCacheKey); err != nil {
		log.Printf("⚠️ Failed to invalidate division cache: %v", err)
	}
}
