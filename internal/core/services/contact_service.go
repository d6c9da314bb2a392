package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/adapters/persistence/repositories"
	"rokto-connect/internal/core/domain"
)

// ContactService manages the published admin contact numbers
type ContactService struct {
	contactRepo repositories.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repositories.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// ContactInput represents admin contact input
type ContactInput struct {
	Name           string `json:"name" validate:"required"`
	ContactNumber1 string `json:"contact_number1" validate:"required"`
	ContactNumber2 string `json:"contact_number2,omitempty"`
}

// Create adds a new admin contact
func (s *ContactService) Create(ctx context.Context, input *ContactInput) (*models.AdminContact, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if input.ContactNumber1 == "" {
		return nil, fmt.Errorf("%w: contact number is required", domain.ErrInvalidArgument)
	}

	contact := &models.AdminContact{
		Name:           input.Name,
		ContactNumber1: input.ContactNumber1,
		ContactNumber2: input.ContactNumber2,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// List returns all admin contacts
func (s *ContactService) List(ctx context.Context) ([]*models.AdminContact, error) {
	return s.contactRepo.List(ctx)
}

// Update replaces an admin contact's fields
func (s *ContactService) Update(ctx context.Context, id uint, input *ContactInput) (*models.AdminContact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		contact.Name = input.Name
	}
	if input.ContactNumber1 != "" {
		contact.ContactNumber1 = input.ContactNumber1
	}
	contact.ContactNumber2 = input.ContactNumber2

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes an admin contact
func (s *ContactService) Delete(ctx context.Context, id uint) error {
	rows, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
