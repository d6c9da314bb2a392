package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/adapters/persistence/repositories"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/cache"
	"rokto-connect/internal/pkg/listing"
	"rokto-connect/internal/pkg/pagination"
)

const (
	topDonorsCacheKey = "donors:top"
	topDonorsCacheTTL = 5 * time.Minute
)

// DonorService owns the donor lifecycle state machine:
// pending → verified, and within verified: available ⇄ unavailable.
type DonorService struct {
	donorRepo repositories.DonorRepository
	cache     *cache.Cache
	topLimit  int
}

// NewDonorService creates a new donor service
func NewDonorService(donorRepo repositories.DonorRepository, c *cache.Cache, topLimit int) *DonorService {
	if topLimit < 1 {
		topLimit = 10
	}
	return &DonorService{
		donorRepo: donorRepo,
		cache:     c,
		topLimit:  topLimit,
	}
}

// RegisterDonorInput represents donor self-registration input
type RegisterDonorInput struct {
	Name           string `json:"name" validate:"required"`
	BloodGroup     string `json:"blood_group" validate:"required"`
	ContactNumber  string `json:"contact_number" validate:"required"`
	ContactNumber2 string `json:"contact_number2,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Age            int    `json:"age,omitempty"`
	Division       string `json:"division,omitempty"`
	District       string `json:"district,omitempty"`
	Upazila        string `json:"upazila,omitempty"`
	Union          string `json:"union,omitempty"`
	Village        string `json:"village,omitempty"`
}

// Register inserts a new pending donor. Availability and the donation
// counter stay unset until verification makes them meaningful.
func (s *DonorService) Register(ctx context.Context, input *RegisterDonorInput) (*models.Donor, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if input.BloodGroup == "" {
		return nil, fmt.Errorf("%w: blood group is required", domain.ErrInvalidArgument)
	}
	if input.ContactNumber == "" {
		return nil, fmt.Errorf("%w: contact number is required", domain.ErrInvalidArgument)
	}
	if input.Age < 0 {
		return nil, fmt.Errorf("%w: age must not be negative", domain.ErrInvalidArgument)
	}

	donor := &models.Donor{
		Name:           input.Name,
		BloodGroup:     input.BloodGroup,
		ContactNumber:  input.ContactNumber,
		ContactNumber2: input.ContactNumber2,
		Gender:         input.Gender,
		Age:            input.Age,
		Division:       input.Division,
		District:       input.District,
		Upazila:        input.Upazila,
		Union:          input.Union,
		Village:        input.Village,
	}

	if err := s.donorRepo.Create(ctx, donor); err != nil {
		return nil, err
	}

	log.Printf("🩸 Donor registered: %s (%s)", donor.Name, donor.BloodGroup)
	return donor, nil
}

// GetByID gets a donor by ID
func (s *DonorService) GetByID(ctx context.Context, id uint) (*models.Donor, error) {
	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, err
	}
	return donor, nil
}

// Verify transitions a pending donor to verified: available becomes true,
// the donation counter resets to zero and acceptedTime is stamped.
// Re-applying to an already verified donor intentionally resets the counter.
func (s *DonorService) Verify(ctx context.Context, id uint, acceptedTime time.Time) (*models.Donor, error) {
	if acceptedTime.IsZero() {
		acceptedTime = time.Now()
	}

	// Existence check first: a no-change update reports zero rows on MySQL,
	// so row counts alone cannot distinguish "absent" here.
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if _, err := s.donorRepo.Verify(ctx, id, acceptedTime); err != nil {
		return nil, err
	}

	s.invalidateTopDonors(ctx)
	log.Printf("✅ Donor %d verified", id)

	return s.GetByID(ctx, id)
}

// RecordDonationInput represents donation recording input
type RecordDonationInput struct {
	DonateTime      *time.Time `json:"donate_time,omitempty"`
	DonateClickTime *time.Time `json:"donate_click_time,omitempty"`
	Note            string     `json:"note,omitempty"`
}

// RecordDonation marks an available donor unavailable and increments the
// donation counter by exactly one. The precondition (verified AND
// available) travels inside the storage update, so two concurrent calls
// can only ever produce a single increment.
func (s *DonorService) RecordDonation(ctx context.Context, id uint, input *RecordDonationInput) (*models.Donor, error) {
	now := time.Now()
	donateTime := now
	if input.DonateTime != nil {
		donateTime = *input.DonateTime
	}
	clickTime := now
	if input.DonateClickTime != nil {
		clickTime = *input.DonateClickTime
	}

	rows, err := s.donorRepo.RecordDonation(ctx, id, donateTime, clickTime, input.Note)
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		// The conditional update missed: either no such donor, or the
		// donor is not currently in the verified+available state.
		donor, err := s.donorRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrDonorNotFound
			}
			return nil, err
		}
		if donor.Status != domain.DonorStatusVerified {
			return nil, domain.ErrDonorNotVerified
		}
		return nil, domain.ErrDonorNotAvailable
	}

	s.invalidateTopDonors(ctx)
	log.Printf("🩸 Donation recorded for donor %d", id)

	return s.GetByID(ctx, id)
}

// ResetAvailability marks a verified donor available again after the
// cool-down has elapsed. The cool-down duration itself is deployment
// policy; this only flips the flag and clears the note.
func (s *DonorService) ResetAvailability(ctx context.Context, id uint) (*models.Donor, error) {
	rows, err := s.donorRepo.ResetAvailability(ctx, id)
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		donor, err := s.donorRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrDonorNotFound
			}
			return nil, err
		}
		if donor.Status != domain.DonorStatusVerified {
			return nil, domain.ErrDonorNotVerified
		}
		// Already available: the reset is a no-op, not a failure.
	}

	s.invalidateTopDonors(ctx)
	return s.GetByID(ctx, id)
}

// UpdateProfileInput represents donor profile update input.
// Lifecycle columns are deliberately absent.
type UpdateProfileInput struct {
	Name           *string `json:"name,omitempty"`
	BloodGroup     *string `json:"blood_group,omitempty"`
	ContactNumber  *string `json:"contact_number,omitempty"`
	ContactNumber2 *string `json:"contact_number2,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Age            *int    `json:"age,omitempty"`
	Division       *string `json:"division,omitempty"`
	District       *string `json:"district,omitempty"`
	Upazila        *string `json:"upazila,omitempty"`
	Union          *string `json:"union,omitempty"`
	Village        *string `json:"village,omitempty"`
}

// UpdateProfile mutates descriptive donor fields without touching
// lifecycle state.
func (s *DonorService) UpdateProfile(ctx context.Context, id uint, input *UpdateProfileInput) (*models.Donor, error) {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.BloodGroup != nil {
		fields["blood_group"] = *input.BloodGroup
	}
	if input.ContactNumber != nil {
		fields["contact_number"] = *input.ContactNumber
	}
	if input.ContactNumber2 != nil {
		fields["contact_number2"] = *input.ContactNumber2
	}
	if input.Gender != nil {
		fields["gender"] = *input.Gender
	}
	if input.Age != nil {
		fields["age"] = *input.Age
	}
	if input.Division != nil {
		fields["division"] = *input.Division
	}
	if input.District != nil {
		fields["district"] = *input.District
	}
	if input.Upazila != nil {
		fields["upazila"] = *input.Upazila
	}
	if input.Village != nil {
		fields["village"] = *input.Village
	}
	if input.Union != nil {
		fields["union"] = *input.Union
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrInvalidArgument)
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if _, err := s.donorRepo.UpdateProfile(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Remove deletes a donor record
func (s *DonorService) Remove(ctx context.Context, id uint) error {
	rows, err := s.donorRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDonorNotFound
	}

	s.invalidateTopDonors(ctx)
	log.Printf("🗑️ Donor %d removed", id)
	return nil
}

// ListDonorsInput represents donor listing input
type ListDonorsInput struct {
	Status     string
	Available  *bool
	BloodGroup string
	Division   string
	District   string
	Upazila    string
	Union      string
	Village    string
	Search     string
	SortField  string
	SortDir    string
	Page       *pagination.Params
}

// ListDonorsOutput represents donor listing output
type ListDonorsOutput struct {
	Donors []*models.Donor  `json:"donors"`
	Meta   *pagination.Meta `json:"meta"`
}

// List returns donors matching the composed filter, sorted and paginated
func (s *DonorService) List(ctx context.Context, input *ListDonorsInput) (*ListDonorsOutput, error) {
	if input.Status != "" &&
		input.Status != domain.DonorStatusPending &&
		input.Status != domain.DonorStatusVerified {
		return nil, fmt.Errorf("%w: unknown donor status %q", domain.ErrInvalidArgument, input.Status)
	}

	sort, err := listing.NewDonorSort(input.SortField, input.SortDir)
	if err != nil {
		return nil, err
	}

	filter := &listing.DonorFilter{
		Status:     input.Status,
		Available:  input.Available,
		BloodGroup: input.BloodGroup,
		Division:   input.Division,
		District:   input.District,
		Upazila:    input.Upazila,
		Union:      input.Union,
		Village:    input.Village,
		Search:     input.Search,
	}

	donors, total, err := s.donorRepo.List(ctx, filter, sort, input.Page.Offset, input.Page.Limit)
	if err != nil {
		return nil, err
	}

	return &ListDonorsOutput{
		Donors: donors,
		Meta:   pagination.GetMeta(input.Page, total),
	}, nil
}

// TopDonors returns verified donors ordered by donation count descending.
// The result is served from cache when one is configured.
func (s *DonorService) TopDonors(ctx context.Context) ([]*models.Donor, error) {
	var cached []*models.Donor
	if err := s.cache.GetJSON(ctx, topDonorsCacheKey, &cached); err == nil {
		return cached, nil
	}

	donors, err := s.donorRepo.Top(ctx, s.topLimit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, topDonorsCacheKey, donors, topDonorsCacheTTL); err != nil {
		log.Printf("⚠️ Failed to cache top donors: %v", err)
	}

	return donors, nil
}

func (s *DonorService) invalidateTopDonors(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, topDonorsCacheKey); err != nil {
		log.Printf("⚠️ Failed to invalidate top donor cache: %v", err)
	}
}
