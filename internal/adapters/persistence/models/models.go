package models

import (
	"time"

	"gorm.io/gorm"

	"rokto-connect/internal/core/domain"
)

// ============================================================
// Accounts & sessions
// ============================================================

// Account represents the accounts table (keyed by email)
type Account struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Email             string     `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Name              string     `gorm:"size:100" json:"name"`
	Password          string     `gorm:"size:255;not null" json:"-"`
	Role              string     `gorm:"size:20;default:'user'" json:"role"`
	AdminCreationTime *time.Time `json:"admin_creation_time"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountResponse DTO
type AccountResponse struct {
	ID                uint       `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Role              string     `json:"role"`
	AdminCreationTime *time.Time `json:"admin_creation_time,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (a *Account) ToResponse() *AccountResponse {
	return &AccountResponse{
		ID:                a.ID,
		Email:             a.Email,
		Name:              a.Name,
		Role:              a.Role,
		AdminCreationTime: a.AdminCreationTime,
		CreatedAt:         a.CreatedAt,
	}
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	AccountID uint       `gorm:"index;not null" json:"account_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	Account   Account    `gorm:"foreignKey:AccountID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Donors
// ============================================================

// Donor represents the donors table
type Donor struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:100;not null" json:"name"`
	BloodGroup     string `gorm:"size:5;not null;index" json:"blood_group"`
	ContactNumber  string `gorm:"size:20" json:"contact_number"`
	ContactNumber2 string `gorm:"size:20" json:"contact_number2"`
	Gender         string `gorm:"size:10" json:"gender"`
	Age            int    `json:"age"`

	Division string `gorm:"size:50;index" json:"division"`
	District string `gorm:"size:50;index" json:"district"`
	Upazila  string `gorm:"size:50" json:"upazila"`
	Union    string `gorm:"size:50" json:"union"`
	Village  string `gorm:"size:50" json:"village"`

	// Lifecycle. Available and DonationCount are meaningful only once
	// Status is "verified".
	Status           string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Available        bool       `gorm:"default:false" json:"available"`
	DonationCount    uint       `gorm:"default:0" json:"donation_count"`
	AcceptedTime     *time.Time `json:"accepted_time"`
	LastDonationTime *time.Time `json:"last_donation_time"`
	DonateClickTime  *time.Time `json:"donate_click_time"`
	Note             string     `gorm:"type:text" json:"note"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Donor) TableName() string {
	return "donors"
}

// ============================================================
// Blood requests
// ============================================================

// BloodRequest represents the blood_requests table
type BloodRequest struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	PatientName   string     `gorm:"size:100;not null" json:"patient_name"`
	BloodGroup    string     `gorm:"size:5;not null;index" json:"blood_group"`
	AmountBags    int        `json:"amount_bags"`
	Hospital      string     `gorm:"size:200" json:"hospital"`
	District      string     `gorm:"size:50" json:"district"`
	ContactNumber string     `gorm:"size:20" json:"contact_number"`
	NeededBy      *time.Time `json:"needed_by"`
	Description   string     `gorm:"type:text" json:"description"`

	// SubmissionTime is stamped when Status becomes "done".
	Status         string     `gorm:"size:20;not null;default:'incomplete';index" json:"status"`
	SubmissionTime *time.Time `gorm:"index" json:"submission_time"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BloodRequest) TableName() string {
	return "blood_requests"
}

// ============================================================
// Admin contacts
// ============================================================

// AdminContact represents the admin_contacts table
type AdminContact struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	ContactNumber1 string    `gorm:"size:20;not null" json:"contact_number1"`
	ContactNumber2 string    `gorm:"size:20" json:"contact_number2"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdminContact) TableName() string {
	return "admin_contacts"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&RefreshToken{},
		&Donor{},
		&BloodRequest{},
		&AdminContact{},
		&Division{},
		&District{},
		&Upazila{},
		&Union{},
		&Village{},
	)
}

// RoleOf returns the account role as a domain Role
func (a *Account) RoleOf() domain.Role {
	return domain.Role(a.Role)
}
