package repositories

import (
	"context"

	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
)

// geoRepository implements GeoRepository for the five reference tables
type geoRepository struct {
	db *gorm.DB
}

// NewGeoRepository creates a new geographic reference repository
func NewGeoRepository(db *gorm.DB) GeoRepository {
	return &geoRepository{db: db}
}

func (r *geoRepository) ListDivisions(ctx context.Context) ([]*models.Division, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var divisions []*models.Division
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&divisions).Error; err != nil {
		return nil, wrapErr(err)
	}
	return divisions, nil
}

func (r *geoRepository) CreateDivision(ctx context.Context, division *models.Division) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrapErr(r.db.WithContext(ctx).Create(division).Error)
}

func (r *geoRepository) DeleteDivision(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Division{}, id)
	return res.RowsAffected, wrapErr(res.Error)
}

func (r *geoRepository) ListDistricts(ctx context.Context, divisionID uint) ([]*models.District, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("name ASC")
	if divisionID != 0 {
		query = query.Where("division_id = ?", divisionID)
	}

	var districts []*models.District
	if err := query.Find(&districts).Error; err != nil {
		return nil, wrapErr(err)
	}
	return districts, nil
}

func (r *geoRepository) CreateDistrict(ctx context.Context, district *models.District) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrapErr(r.db.WithContext(ctx).Create(district).Error)
}

func (r *geoRepository) DeleteDistrict(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.District{}, id)
	return res.RowsAffected, wrapErr(res.Error)
}

func (r *geoRepository) ListUpazilas(ctx context.Context, districtID uint) ([]*models.Upazila, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("name ASC")
	if districtID != 0 {
		query = query.Where("district_id = ?", districtID)
	}

	var upazilas []*models.Upazila
	if err := query.Find(&upazilas).Error; err != nil {
		return nil, wrapErr(err)
	}
	return upazilas, nil
}

func (r *geoRepository) CreateUpazila(ctx context.Context, upazila *models.Upazila) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrapErr(r.db.WithContext(ctx).Create(upazila).Error)
}

func (r *geoRepository) DeleteUpazila(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Upazila{}, id)
	return res.RowsAffected, wrapErr(res.Error)
}

func (r *geoRepository) ListUnions(ctx context.Context, upazilaID uint) ([]*models.Union, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("name ASC")
	if upazilaID != 0 {
		query = query.Where("upazila_id = ?", upazilaID)
	}

	var unions []*models.Union
	if err := query.Find(&unions).Error; err != nil {
		return nil, wrapErr(err)
	}
	return unions, nil
}

func (r *geoRepository) CreateUnion(ctx context.Context, union *models.Union) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrapErr(r.db.WithContext(ctx).Create(union).Error)
}

func (r *geoRepository) DeleteUnion(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Union{}, id)
	return res.RowsAffected, wrapErr(res.Error)
}

func (r *geoRepository) ListVillages(ctx context.Context, unionID uint) ([]*models.Village, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("name ASC")
	if unionID != 0 {
		query = query.Where("union_id = ?", unionID)
	}

	var villages []*models.Village
	if err := query.Find(&villages).Error; err != nil {
		return nil, wrapErr(err)
	}
	return villages, nil
}

func (r *geoRepository) CreateVillage(ctx context.Context, village *models.Village) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrapErr(r.db.WithContext(ctx).Create(village).Error)
}

func (r *geoRepository) DeleteVillage(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Village{}, id)
	return res.RowsAffected, wrapErr(res.Error)
}
