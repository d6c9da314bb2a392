package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/core/domain"
)

// requestRepository implements RequestRepository
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new blood request repository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create inserts a new blood request. Status defaults to incomplete.
func (r *requestRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	request.Status = domain.RequestStatusIncomplete
	request.SubmissionTime = nil
	return wrapErr(r.db.WithContext(ctx).Create(request).Error)
}

// GetByID gets a blood request by ID
func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.BloodRequest, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var request models.BloodRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &request, nil
}

// Complete stamps the request done in one update. Re-applying restamps the
// submission time; the final state stays done either way.
func (r *requestRepository) Complete(ctx context.Context, id uint, submissionTime time.Time) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&models.BloodRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          domain.RequestStatusDone,
			"submission_time": submissionTime,
		})
	return res.RowsAffected, wrapErr(res.Error)
}

// Delete removes a blood request
func (r *requestRepository) Delete(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.BloodRequest{}, id)
	return res.RowsAffected, wrapErr(res.Error)
}

// ListByStatus lists requests in the given status. Done requests come back
// most recently completed first; incomplete listing keeps storage order.
func (r *requestRepository) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.BloodRequest, int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var requests []*models.BloodRequest
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.BloodRequest{}).
		Where("status = ?", status).
		Count(&total).Error; err != nil {
		return nil, 0, wrapErr(err)
	}

	query := r.db.WithContext(ctx).Where("status = ?", status)
	if status == domain.RequestStatusDone {
		query = query.Order("submission_time DESC")
	}

	if err := query.Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, wrapErr(err)
	}

	return requests, total, nil
}
