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
	"rokto-connect/internal/pkg/pagination"
)

// RequestService owns the blood request lifecycle: incomplete → done.
type RequestService struct {
	requestRepo repositories.RequestRepository
}

// NewRequestService creates a new request service
func NewRequestService(requestRepo repositories.RequestRepository) *RequestService {
	return &RequestService{requestRepo: requestRepo}
}

// SubmitRequestInput represents blood request submission input
type SubmitRequestInput struct {
	PatientName   string     `json:"patient_name" validate:"required"`
	BloodGroup    string     `json:"blood_group" validate:"required"`
	AmountBags    int        `json:"amount_bags,omitempty"`
	Hospital      string     `json:"hospital,omitempty"`
	District      string     `json:"district,omitempty"`
	ContactNumber string     `json:"contact_number" validate:"required"`
	NeededBy      *time.Time `json:"needed_by,omitempty"`
	Description   string     `json:"description,omitempty"`
}

// Submit creates a new blood request in the incomplete state
func (s *RequestService) Submit(ctx context.Context, input *SubmitRequestInput) (*models.BloodRequest, error) {
	if input.PatientName == "" {
		return nil, fmt.Errorf("%w: patient name is required", domain.ErrInvalidArgument)
	}
	if input.BloodGroup == "" {
		return nil, fmt.Errorf("%w: blood group is required", domain.ErrInvalidArgument)
	}
	if input.ContactNumber == "" {
		return nil, fmt.Errorf("%w: contact number is required", domain.ErrInvalidArgument)
	}
	if input.AmountBags < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidArgument)
	}

	request := &models.BloodRequest{
		PatientName:   input.PatientName,
		BloodGroup:    input.BloodGroup,
		AmountBags:    input.AmountBags,
		Hospital:      input.Hospital,
		District:      input.District,
		ContactNumber: input.ContactNumber,
		NeededBy:      input.NeededBy,
		Description:   input.Description,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	log.Printf("🆘 Blood request submitted for %s (%s)", request.PatientName, request.BloodGroup)
	return request, nil
}

// GetByID gets a blood request by ID
func (s *RequestService) GetByID(ctx context.Context, id uint) (*models.BloodRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

// Complete marks a request done and stamps its submission time. Completing
// an already done request simply restamps the time.
func (s *RequestService) Complete(ctx context.Context, id uint, submissionTime *time.Time) (*models.BloodRequest, error) {
	at := time.Now()
	if submissionTime != nil {
		at = *submissionTime
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if _, err := s.requestRepo.Complete(ctx, id, at); err != nil {
		return nil, err
	}

	log.Printf("✅ Blood request %d completed", id)
	return s.GetByID(ctx, id)
}

// Remove deletes a blood request
func (s *RequestService) Remove(ctx context.Context, id uint) error {
	rows, err := s.requestRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}

	log.Printf("🗑️ Blood request %d removed", id)
	return nil
}

// ListRequestsOutput represents blood request listing output
type ListRequestsOutput struct {
	Requests []*models.BloodRequest `json:"requests"`
	Meta     *pagination.Meta       `json:"meta"`
}

// ListByStatus returns requests in the given lifecycle state, paginated.
// Done requests come back newest completion first.
func (s *RequestService) ListByStatus(ctx context.Context, status string, page *pagination.Params) (*ListRequestsOutput, error) {
	if status != domain.RequestStatusIncomplete && status != domain.RequestStatusDone {
		return nil, fmt.Errorf("%w: unknown request status %q", domain.ErrInvalidArgument, status)
	}

	requests, total, err := s.requestRepo.ListByStatus(ctx, status, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	return &ListRequestsOutput{
		Requests: requests,
		Meta:     pagination.GetMeta(page, total),
	}, nil
}
