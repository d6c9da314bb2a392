package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
)

// accountRepository implements AccountRepository
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrapErr(r.db.WithContext(ctx).Create(account).Error)
}

// GetByID gets an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &account, nil
}

// GetByEmail gets an account by its unique email key
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var account models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &account, nil
}

// ExistsByEmail checks if an account email exists
func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, wrapErr(err)
}

// Update updates an account
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrapErr(r.db.WithContext(ctx).Save(account).Error)
}

// SetRole mutates the role of the account keyed by email. The admin
// creation time travels in the same update so a promotion is one write.
func (r *accountRepository) SetRole(ctx context.Context, email, role string, adminCreationTime *time.Time) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"role":                role,
			"admin_creation_time": adminCreationTime,
		})
	return res.RowsAffected, wrapErr(res.Error)
}

// DeleteByEmail removes an account
func (r *accountRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.Account{})
	return res.RowsAffected, wrapErr(res.Error)
}

// List lists accounts with pagination
func (r *accountRepository) List(ctx context.Context, offset, limit int) ([]*models.Account, int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var accounts []*models.Account
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&total).Error; err != nil {
		return nil, 0, wrapErr(err)
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&accounts).Error; err != nil {
		return nil, 0, wrapErr(err)
	}

	return accounts, total, nil
}

// ListByRoles lists all accounts holding one of the given roles
func (r *accountRepository) ListByRoles(ctx context.Context, roles ...string) ([]*models.Account, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var accounts []*models.Account
	err := r.db.WithContext(ctx).
		Where("role IN ?", roles).
		Order("admin_creation_time DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return accounts, nil
}
