package repositories

import (
	"context"
	"time"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/pkg/listing"
)

// DonorRepository defines donor data access. Lifecycle transitions are
// single conditional updates: each returns the number of rows the condition
// matched so the caller can tell a missed precondition from a missing record.
type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	GetByID(ctx context.Context, id uint) (*models.Donor, error)
	UpdateProfile(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	Verify(ctx context.Context, id uint, acceptedTime time.Time) (int64, error)
	RecordDonation(ctx context.Context, id uint, donateTime, clickTime time.Time, note string) (int64, error)
	ResetAvailability(ctx context.Context, id uint) (int64, error)
	ResetAvailabilityBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	List(ctx context.Context, filter *listing.DonorFilter, sort *listing.Sort, offset, limit int) ([]*models.Donor, int64, error)
	Top(ctx context.Context, limit int) ([]*models.Donor, error)
}

// RequestRepository defines blood request data access
type RequestRepository interface {
	Create(ctx context.Context, request *models.BloodRequest) error
	GetByID(ctx context.Context, id uint) (*models.BloodRequest, error)
	Complete(ctx context.Context, id uint, submissionTime time.Time) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.BloodRequest, int64, error)
}

// AccountRepository defines account data access
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, account *models.Account) error
	SetRole(ctx context.Context, email, role string, adminCreationTime *time.Time) (int64, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	List(ctx context.Context, offset, limit int) ([]*models.Account, int64, error)
	ListByRoles(ctx context.Context, roles ...string) ([]*models.Account, error)
}

// RefreshTokenRepository defines refresh token data access
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByAccountID(ctx context.Context, accountID uint) error
	DeleteExpired(ctx context.Context) error
}

// ContactRepository defines admin contact data access
type ContactRepository interface {
	Create(ctx context.Context, contact *models.AdminContact) error
	GetByID(ctx context.Context, id uint) (*models.AdminContact, error)
	List(ctx context.Context) ([]*models.AdminContact, error)
	Update(ctx context.Context, contact *models.AdminContact) error
	Delete(ctx context.Context, id uint) (int64, error)
}

// GeoRepository defines the hierarchical geographic reference lookups
type GeoRepository interface {
	ListDivisions(ctx context.Context) ([]*models.Division, error)
	CreateDivision(ctx context.Context, division *models.Division) error
	DeleteDivision(ctx context.Context, id uint) (int64, error)

	ListDistricts(ctx context.Context, divisionID uint) ([]*models.District, error)
	CreateDistrict(ctx context.Context, district *models.District) error
	DeleteDistrict(ctx context.Context, id uint) (int64, error)

	ListUpazilas(ctx context.Context, districtID uint) ([]*models.Upazila, error)
	CreateUpazila(ctx context.Context, upazila *models.Upazila) error
	DeleteUpazila(ctx context.Context, id uint) (int64, error)

	ListUnions(ctx context.Context, upazilaID uint) ([]*models.Union, error)
	CreateUnion(ctx context.Context, union *models.Union) error
	DeleteUnion(ctx context.Context, id uint) (int64, error)

	ListVillages(ctx context.Context, unionID uint) ([]*models.Village, error)
	CreateVillage(ctx context.Context, village *models.Village) error
	DeleteVillage(ctx context.Context, id uint) (int64, error)
}
