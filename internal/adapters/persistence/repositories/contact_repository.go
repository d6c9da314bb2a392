package repositories

import (
	"context"

	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
)

// contactRepository implements ContactRepository
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new admin contact repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new admin contact
func (r *contactRepository) Create(ctx context.Context, contact *models.AdminContact) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrapErr(r.db.WithContext(ctx).Create(contact).Error)
}

// GetByID gets an admin contact by ID
func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.AdminContact, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var contact models.AdminContact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &contact, nil
}

// List lists all admin contacts
func (r *contactRepository) List(ctx context.Context) ([]*models.AdminContact, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var contacts []*models.AdminContact
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, wrapErr(err)
	}
	return contacts, nil
}

// Update updates an admin contact
func (r *contactRepository) Update(ctx context.Context, contact *models.AdminContact) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrapErr(r.db.WithContext(ctx).Save(contact).Error)
}

// Delete removes an admin contact
func (r *contactRepository) Delete(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.AdminContact{}, id)
	return res.RowsAffected, wrapErr(res.Error)
}
