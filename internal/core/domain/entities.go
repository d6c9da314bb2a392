package domain

import "time"

// Role represents an account role in the system
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// roleLevels orders roles by privilege: user < admin < superAdmin
var roleLevels = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// Valid reports whether the role is one of the three known roles
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether the role holds at least the given privilege level
func (r Role) AtLeast(min Role) bool {
	return roleLevels[r] >= roleLevels[min]
}

// Donor status values
const (
	DonorStatusPending  = "pending"
	DonorStatusVerified = "verified"
)

// Blood request status values
const (
	RequestStatusIncomplete = "incomplete"
	RequestStatusDone       = "done"
)

// Account represents a user account in the domain layer
type Account struct {
	ID                uint
	Email             string
	Name              string
	Role              Role
	AdminCreationTime *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RefreshToken represents a refresh token in the domain
type RefreshToken struct {
	ID        uint
	AccountID uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
