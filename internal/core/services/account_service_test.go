package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rokto-connect/internal/adapters/persistence/models"
	"rokto-connect/internal/core/domain"
)

func superAdminAccount() *models.Account {
	return &models.Account{ID: 1, Email: "root@example.com", Role: string(domain.RoleSuperAdmin)}
}

func adminAccount() *models.Account {
	now := time.Now()
	return &models.Account{ID: 2, Email: "admin@example.com", Role: string(domain.RoleAdmin), AdminCreationTime: &now}
}

func userAccount() *models.Account {
	return &models.Account{ID: 3, Email: "user@example.com", Role: string(domain.RoleUser)}
}

func TestSetRole_AdminCannotPromote(t *testing.T) {
	accounts := &mockAccountRepo{}
	accounts.On("GetByEmail", mock.Anything, "admin@example.com").Return(adminAccount(), nil)

	svc := NewAccountService(accounts, &mockTokenRepo{})
	_, err := svc.Promote(context.Background(), "admin@example.com", "user@example.com")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSetRole_UserCannotPromote(t *testing.T) {
	accounts := &mockAccountRepo{}
	accounts.On("GetByEmail", mock.Anything, "user@example.com").Return(userAccount(), nil)

	svc := NewAccountService(accounts, &mockTokenRepo{})
	_, err := svc.Promote(context.Background(), "user@example.com", "other@example.com")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSetRole_SuperAdminPromotes(t *testing.T) {
	accounts := &mockAccountRepo{}
	target := userAccount()
	now := time.Now()
	promoted := &models.Account{ID: 3, Email: "user@example.com", Role: string(domain.RoleAdmin), AdminCreationTime: &now}

	accounts.On("GetByEmail", mock.Anything, "root@example.com").Return(superAdminAccount(), nil)
	accounts.On("GetByEmail", mock.Anything, "user@example.com").Return(target, nil).Once()
	accounts.On("SetRole", mock.Anything, "user@example.com", string(domain.RoleAdmin), mock.AnythingOfType("*time.Time")).
		Return(int64(1), nil)
	accounts.On("GetByEmail", mock.Anything, "user@example.com").Return(promoted, nil).Once()

	svc := NewAccountService(accounts, &mockTokenRepo{})
	account, err := svc.Promote(context.Background(), "root@example.com", "user@example.com")

	assert.NoError(t, err)
	assert.Equal(t, string(domain.RoleAdmin), account.Role)
	assert.NotNil(t, account.AdminCreationTime)
	accounts.AssertExpectations(t)
}

func TestSetRole_CannotChangeOwnRole(t *testing.T) {
	accounts := &mockAccountRepo{}
	accounts.On("GetByEmail", mock.Anything, "root@example.com").Return(superAdminAccount(), nil)

	svc := NewAccountService(accounts, &mockTokenRepo{})
	_, err := svc.Demote(context.Background(), "root@example.com", "root@example.com")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSetRole_RejectsUnknownRole(t *testing.T) {
	svc := NewAccountService(&mockAccountRepo{}, &mockTokenRepo{})

	_, err := svc.SetRole(context.Background(), "root@example.com", "user@example.com", domain.Role("owner"))

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestSetRole_DemoteClearsAdminCreationTime(t *testing.T) {
	accounts := &mockAccountRepo{}
	demoted := &models.Account{ID: 2, Email: "admin@example.com", Role: string(domain.RoleUser)}

	accounts.On("GetByEmail", mock.Anything, "root@example.com").Return(superAdminAccount(), nil)
	accounts.On("GetByEmail", mock.Anything, "admin@example.com").Return(adminAccount(), nil).Once()
	accounts.On("SetRole", mock.Anything, "admin@example.com", string(domain.RoleUser), (*time.Time)(nil)).
		Return(int64(1), nil)
	accounts.On("GetByEmail", mock.Anything, "admin@example.com").Return(demoted, nil).Once()

	svc := NewAccountService(accounts, &mockTokenRepo{})
	account, err := svc.Demote(context.Background(), "root@example.com", "admin@example.com")

	assert.NoError(t, err)
	assert.Equal(t, string(domain.RoleUser), account.Role)
	assert.Nil(t, account.AdminCreationTime)
}

func TestRoleOf_UnknownEmailResolvesToUser(t *testing.T) {
	accounts := &mockAccountRepo{}
	accounts.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAccountService(accounts, &mockTokenRepo{})
	info, err := svc.RoleOf(context.Background(), "Ghost@Example.com")

	assert.NoError(t, err)
	assert.Equal(t, string(domain.RoleUser), info.Role)
	assert.False(t, info.IsAdmin)
}

func TestRoleOf_SuperAdmin(t *testing.T) {
	accounts := &mockAccountRepo{}
	accounts.On("GetByEmail", mock.Anything, "root@example.com").Return(superAdminAccount(), nil)

	svc := NewAccountService(accounts, &mockTokenRepo{})
	info, err := svc.RoleOf(context.Background(), "root@example.com")

	assert.NoError(t, err)
	assert.True(t, info.IsAdmin)
	assert.True(t, info.IsSuperAdmin)
}

func TestDeleteAccount_RevokesTokens(t *testing.T) {
	accounts := &mockAccountRepo{}
	tokens := &mockTokenRepo{}
	target := userAccount()

	accounts.On("GetByEmail", mock.Anything, "root@example.com").Return(superAdminAccount(), nil)
	accounts.On("GetByEmail", mock.Anything, "user@example.com").Return(target, nil)
	tokens.On("RevokeAllByAccountID", mock.Anything, uint(3)).Return(nil)
	accounts.On("DeleteByEmail", mock.Anything, "user@example.com").Return(int64(1), nil)

	svc := NewAccountService(accounts, tokens)
	err := svc.Delete(context.Background(), "root@example.com", "user@example.com")

	assert.NoError(t, err)
	tokens.AssertExpectations(t)
	accounts.AssertExpectations(t)
}

func TestDeleteAccount_SelfDeletionRefused(t *testing.T) {
	accounts := &mockAccountRepo{}
	accounts.On("GetByEmail", mock.Anything, "root@example.com").Return(superAdminAccount(), nil)

	svc := NewAccountService(accounts, &mockTokenRepo{})
	err := svc.Delete(context.Background(), "root@example.com", "root@example.com")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRequireRole_UnknownActorForbidden(t *testing.T) {
	accounts := &mockAccountRepo{}
	accounts.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAccountService(accounts, &mockTokenRepo{})
	_, err := svc.RequireRole(context.Background(), "ghost@example.com", domain.RoleAdmin)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
