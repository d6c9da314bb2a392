package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/listing"
)

// donorRepository implements DonorRepository
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

// Create inserts a new donor. Status defaults to pending.
func (r *donorRepository) Create(ctx context.Context, donor *models.Donor) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	donor.Status = domain.DonorStatusPending
	return wrapErr(r.db.WithContext(ctx).Create(donor).Error)
}

// GetByID gets a donor by ID
func (r *donorRepository) GetByID(ctx context.Context, id uint) (*models.Donor, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var donor models.Donor
	if err := r.db.WithContext(ctx).First(&donor, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &donor, nil
}

// UpdateProfile mutates descriptive fields only; lifecycle columns are
// never part of the patch map (the service filters them).
func (r *donorRepository) UpdateProfile(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Donor{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, wrapErr(res.Error)
}

// Verify transitions a donor to verified in one update: available becomes
// true, the donation counter resets to zero and the acceptance time is
// stamped. Re-applying intentionally resets the counter again.
func (r *donorRepository) Verify(ctx context.Context, id uint, acceptedTime time.Time) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Donor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         domain.DonorStatusVerified,
			"available":      true,
			"donation_count": 0,
			"accepted_time":  acceptedTime,
		})
	return res.RowsAffected, wrapErr(res.Error)
}

// RecordDonation is a compare-and-swap on availability: the precondition
// (verified AND available) is part of the same UPDATE, so two concurrent
// calls cannot both increment the counter.
func (r *donorRepository) RecordDonation(ctx context.Context, id uint, donateTime, clickTime time.Time, note string) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Donor{}).
		Where("id = ? AND status = ? AND available = ?", id, domain.DonorStatusVerified, true).
		Updates(map[string]interface{}{
			"available":          false,
			"donation_count":     gorm.Expr("donation_count + 1"),
			"last_donation_time": donateTime,
			"donate_click_time":  clickTime,
			"note":               note,
		})
	return res.RowsAffected, wrapErr(res.Error)
}

// ResetAvailability marks a verified donor as available again and clears
// the note left by the last donation.
func (r *donorRepository) ResetAvailability(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Donor{}).
		Where("id = ? AND status = ?", id, domain.DonorStatusVerified).
		Updates(map[string]interface{}{
			"available": true,
			"note":      "",
		})
	return res.RowsAffected, wrapErr(res.Error)
}

// ResetAvailabilityBefore resets every unavailable verified donor whose last
// donation happened before the cutoff. Used by the cool-down sweep.
func (r *donorRepository) ResetAvailabilityBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.Donor{}).
		Where("status = ? AND available = ? AND last_donation_time < ?",
			domain.DonorStatusVerified, false, cutoff).
		Updates(map[string]interface{}{
			"available": true,
			"note":      "",
		})
	return res.RowsAffected, wrapErr(res.Error)
}

// Delete removes a donor record
func (r *donorRepository) Delete(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Donor{}, id)
	return res.RowsAffected, wrapErr(res.Error)
}

// List applies the composed filter, sort and pagination and returns the
// page plus the total matching count.
func (r *donorRepository) List(ctx context.Context, filter *listing.DonorFilter, sort *listing.Sort, offset, limit int) ([]*models.Donor, int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var donors []*models.Donor
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.Donor{}).
		Scopes(filter.Scope()).
		Count(&total).Error; err != nil {
		return nil, 0, wrapErr(err)
	}

	err := r.db.WithContext(ctx).
		Scopes(filter.Scope()).
		Order(sort.OrderClause()).
		Offset(offset).
		Limit(limit).
		Find(&donors).Error
	if err != nil {
		return nil, 0, wrapErr(err)
	}

	return donors, total, nil
}

// Top returns verified donors ordered by donation count descending
func (r *donorRepository) Top(ctx context.Context, limit int) ([]*models.Donor, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var donors []*models.Donor
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.DonorStatusVerified).
		Order("donation_count DESC").
		Limit(limit).
		Find(&donors).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return donors, nil
}
