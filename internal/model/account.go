package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountStore defines persistence operations for accounts.
type AccountStore interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	Update(ctx context.Context, account Account) (Account, error)
	List(ctx context.Context) ([]Account, error)
}

// Role describes what kind of member an account belongs to.
// It carries no permissions of its own.
type Role string

const (
	// RoleStudent is the default role.
	RoleStudent Role = "student"
	// RoleTeacher marks teaching staff.
	RoleTeacher Role = "teacher"
	// RoleAdmin marks school administrators.
	RoleAdmin Role = "admin"
)

// DefaultRole is assigned when no role is given.
const DefaultRole = RoleStudent

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// Account is a user identity keyed by email.
type Account struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountFields lists the optional fields accepted when creating or
// updating an account. Nil flags mean "not set by the caller".
type AccountFields struct {
	FirstName   string
	LastName    string
	Role        Role
	IsActive    *bool
	IsStaff     *bool
	IsSuperuser *bool
}

// Bool returns a pointer to v, for filling AccountFields flags.
func Bool(v bool) *bool {
	return &v
}

// String returns the account email.
func (a Account) String() string {
	return a.Email
}

// FullName joins first and last name.
func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// HasPermission reports whether the account holds perm, optionally on target.
// Superusers hold every permission.
func (a Account) HasPermission(ctx context.Context, backend PermissionBackend, perm string, target any) (bool, error) {
	if a.IsSuperuser {
		return true, nil
	}
	return backend.HasPermission(ctx, a, perm, target)
}

// HasPermissions reports whether the account holds every permission in perms.
func (a Account) HasPermissions(ctx context.Context, backend PermissionBackend, perms []string, target any) (bool, error) {
	for _, perm := range perms {
		ok, err := a.HasPermission(ctx, backend, perm, target)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// HasModulePermissions reports whether the account holds any permission
// in the module identified by label.
func (a Account) HasModulePermissions(ctx context.Context, backend PermissionBackend, label string) (bool, error) {
	if a.IsSuperuser {
		return true, nil
	}
	return backend.HasModulePermissions(ctx, a, label)
}

// SetPassword replaces the stored credential. An empty raw password leaves
// the account with an unusable credential.
func (a *Account) SetPassword(hasher PasswordHasher, raw string) error {
	if raw == "" {
		unusable, err := hasher.Unusable()
		if err != nil {
			return err
		}
		a.PasswordHash = unusable
		return nil
	}

	hash, err := hasher.Hash(raw)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

// CheckPassword reports whether raw matches the stored credential.
func (a Account) CheckPassword(hasher PasswordHasher, raw string) bool {
	if !hasher.IsUsable(a.PasswordHash) {
		return false
	}
	return hasher.Compare(a.PasswordHash, raw) == nil
}

// HasUsablePassword reports whether the account can log in with a password.
func (a Account) HasUsablePassword(hasher PasswordHasher) bool {
	return hasher.IsUsable(a.PasswordHash)
}

// NormalizeEmail trims the address and lowercases its domain part.
// The local part is kept as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
