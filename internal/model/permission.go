package model

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// PermissionStore persists permissions granted directly to accounts.
type PermissionStore interface {
	Grant(ctx context.Context, accountID uuid.UUID, perm string) error
	Revoke(ctx context.Context, accountID uuid.UUID, perm string) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]string, error)
}

// PermissionBackend resolves permissions for accounts that are not superusers.
type PermissionBackend interface {
	HasPermission(ctx context.Context, account Account, perm string, target any) (bool, error)
	HasModulePermissions(ctx context.Context, account Account, label string) (bool, error)
}

// Permission names used by the accounts API.
const (
	PermAddAccount  = "accounts.add_account"
	PermViewAccount = "accounts.view_account"
)

// ValidatePermission checks that perm is "app_label.codename".
func ValidatePermission(perm string) error {
	label, codename, ok := strings.Cut(perm, ".")
	if !ok || label == "" || codename == "" || strings.Contains(codename, ".") {
		return ErrInvalidPermission
	}
	return nil
}
