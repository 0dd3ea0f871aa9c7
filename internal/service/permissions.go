package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/accounts/internal/logger"
	"github.com/dtroode/accounts/internal/model"
)

var _ model.PermissionBackend = (*Permissions)(nil)

// Permissions resolves permissions granted directly to accounts.
// Inactive accounts hold no permissions, and object-level checks are
// never granted.
type Permissions struct {
	store  model.PermissionStore
	logger *logger.Logger
}

// NewPermissions creates the default permission backend over store.
func NewPermissions(store model.PermissionStore, logger *logger.Logger) *Permissions {
	return &Permissions{store: store, logger: logger}
}

// HasPermission reports whether perm was granted to account. Inactive
// accounts and checks against a non-nil target always get false.
func (p *Permissions) HasPermission(ctx context.Context, account model.Account, perm string, target any) (bool, error) {
	if !account.IsActive || target != nil {
		return false, nil
	}

	perms, err := p.AllPermissions(ctx, account)
	if err != nil {
		return false, err
	}
	return slices.Contains(perms, perm), nil
}

// HasModulePermissions reports whether an active account holds any
// permission labelled "<label>.".
func (p *Permissions) HasModulePermissions(ctx context.Context, account model.Account, label string) (bool, error) {
	if !account.IsActive {
		return false, nil
	}

	perms, err := p.AllPermissions(ctx, account)
	if err != nil {
		return false, err
	}
	prefix := label + "."
	for _, perm := range perms {
		if strings.HasPrefix(perm, prefix) {
			return true, nil
		}
	}
	return false, nil
}

// AllPermissions lists the permissions granted to account.
func (p *Permissions) AllPermissions(ctx context.Context, account model.Account) ([]string, error) {
	if !account.IsActive {
		return nil, nil
	}

	perms, err := p.store.ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return perms, nil
}

func (p *Permissions) Grant(ctx context.Context, accountID uuid.UUID, perm string) error {
	if err := model.ValidatePermission(perm); err != nil {
		return err
	}
	if err := p.store.Grant(ctx, accountID, perm); err != nil {
		return err
	}

	p.logger.Info("Permissions service: permission granted",
		"account_id", accountID,
		"permission", perm)
	return nil
}

func (p *Permissions) Revoke(ctx context.Context, accountID uuid.UUID, perm string) error {
	if err := model.ValidatePermission(perm); err != nil {
		return err
	}
	if err := p.store.Revoke(ctx, accountID, perm); err != nil {
		return err
	}

	p.logger.Info("Permissions service: permission revoked",
		"account_id", accountID,
		"permission", perm)
	return nil
}
