package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/adapters/persistence/repositories"
	"rokto-connect/internal/core/domain"
	"rokto-connect/internal/pkg/pagination"
)

// AccountService is the role authority. Every privilege decision that
// matters re-reads the actor's stored role rather than trusting whatever
// a token claimed at issue time.
type AccountService struct {
	accountRepo repositories.AccountRepository
	tokenRepo   repositories.RefreshTokenRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repositories.AccountRepository, tokenRepo repositories.RefreshTokenRepository) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
	}
}

// RoleInfo represents an account's resolved privilege
type RoleInfo struct {
	Email        string `json:"email"`
	Role         string `json:"role"`
	IsAdmin      bool   `json:"is_admin"`
	IsSuperAdmin bool   `json:"is_super_admin"`
}

// GetByEmail gets an account by email
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// RoleOf resolves the stored role for an email. Unknown emails resolve to
// plain user privilege rather than an error, so the probe can be used for
// UI gating without leaking which accounts exist.
func (s *AccountService) RoleOf(ctx context.Context, email string) (*RoleInfo, error) {
	account, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return &RoleInfo{Email: normalizeEmail(email), Role: string(domain.RoleUser)}, nil
		}
		return nil, err
	}

	role := account.RoleOf()
	return &RoleInfo{
		Email:        account.Email,
		Role:         string(role),
		IsAdmin:      role.AtLeast(domain.RoleAdmin),
		IsSuperAdmin: role == domain.RoleSuperAdmin,
	}, nil
}

// RequireRole re-reads the actor's stored role and fails with ErrForbidden
// unless it meets the minimum. Token claims are never enough on their own
// for the operations that call this.
func (s *AccountService) RequireRole(ctx context.Context, actorEmail string, min domain.Role) (*models.Account, error) {
	actor, err := s.GetByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if !actor.RoleOf().AtLeast(min) {
		return nil, domain.ErrForbidden
	}
	return actor, nil
}

// SetRole changes a target account's role. Only a superAdmin may grant or
// revoke privilege, and no account may change its own role.
func (s *AccountService) SetRole(ctx context.Context, actorEmail, targetEmail string, role domain.Role) (*models.Account, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}

	actor, err := s.RequireRole(ctx, actorEmail, domain.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	targetEmail = normalizeEmail(targetEmail)
	if actor.Email == targetEmail {
		return nil, fmt.Errorf("%w: cannot change own role", domain.ErrForbidden)
	}

	target, err := s.GetByEmail(ctx, targetEmail)
	if err != nil {
		return nil, err
	}

	var adminCreationTime *time.Time
	if role.AtLeast(domain.RoleAdmin) {
		now := time.Now()
		adminCreationTime = &now
		if target.RoleOf().AtLeast(domain.RoleAdmin) {
			// Keep the original grant time on lateral changes.
			adminCreationTime = target.AdminCreationTime
		}
	}

	rows, err := s.accountRepo.SetRole(ctx, targetEmail, string(role), adminCreationTime)
	if err != nil {
		return nil, err
	}
	if rows == 0 && target.RoleOf() != role {
		return nil, domain.ErrAccountNotFound
	}

	log.Printf("🔑 Role of %s set to %s by %s", targetEmail, role, actor.Email)
	return s.GetByEmail(ctx, targetEmail)
}

// Promote grants admin privilege to a target account
func (s *AccountService) Promote(ctx context.Context, actorEmail, targetEmail string) (*models.Account, error) {
	return s.SetRole(ctx, actorEmail, targetEmail, domain.RoleAdmin)
}

// Demote strips a target account back to plain user privilege
func (s *AccountService) Demote(ctx context.Context, actorEmail, targetEmail string) (*models.Account, error) {
	return s.SetRole(ctx, actorEmail, targetEmail, domain.RoleUser)
}

// Delete removes a target account and revokes its refresh tokens.
// Superadmin only, and self-deletion is refused.
func (s *AccountService) Delete(ctx context.Context, actorEmail, targetEmail string) error {
	actor, err := s.RequireRole(ctx, actorEmail, domain.RoleSuperAdmin)
	if err != nil {
		return err
	}

	targetEmail = normalizeEmail(targetEmail)
	if actor.Email == targetEmail {
		return fmt.Errorf("%w: cannot delete own account", domain.ErrForbidden)
	}

	target, err := s.GetByEmail(ctx, targetEmail)
	if err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllByAccountID(ctx, target.ID); err != nil {
		log.Printf("⚠️ Failed to revoke tokens for %s: %v", targetEmail, err)
	}

	rows, err := s.accountRepo.DeleteByEmail(ctx, targetEmail)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	log.Printf("🗑️ Account %s deleted by %s", targetEmail, actor.Email)
	return nil
}

// ListAdmins returns all admin and superAdmin accounts, most recent
// grant first
func (s *AccountService) ListAdmins(ctx context.Context) ([]*models.Account, error) {
	return s.accountRepo.ListByRoles(ctx, string(domain.RoleAdmin), string(domain.RoleSuperAdmin))
}

// ListAccountsOutput represents account listing output
type ListAccountsOutput struct {
	Accounts []*models.Account `json:"accounts"`
	Meta     *pagination.Meta  `json:"meta"`
}

// List returns all accounts, paginated
func (s *AccountService) List(ctx context.Context, page *pagination.Params) (*ListAccountsOutput, error) {
	accounts, total, err := s.accountRepo.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	return &ListAccountsOutput{
		Accounts: accounts,
		Meta:     pagination.GetMeta(page, total),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
