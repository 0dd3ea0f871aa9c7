package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingEmail is returned when an account is created without an email.
	ErrMissingEmail = errors.New("the email field must be set")
	// ErrEmailTaken is returned by stores when the email unique constraint fires.
	ErrEmailTaken = errors.New("email is already taken")
	// ErrInvalidRole is returned for roles outside the known set.
	ErrInvalidRole = errors.New("invalid role")

	// ErrPrivilegedFlags groups the errors raised when a privileged account
	// is requested with staff or superuser explicitly disabled.
	ErrPrivilegedFlags     = errors.New("privileged account flags")
	ErrPrivilegedStaff     = fmt.Errorf("%w: superuser must have is_staff=true", ErrPrivilegedFlags)
	ErrPrivilegedSuperuser = fmt.Errorf("%w: superuser must have is_superuser=true", ErrPrivilegedFlags)

	// ErrInvalidPermission is returned for permissions not in "app_label.codename" form.
	ErrInvalidPermission = errors.New("permission must be in app_label.codename form")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrPermissionDenied   = errors.New("permission denied")

	// ErrExportDisabled is returned when no snapshot storage is configured.
	ErrExportDisabled = errors.New("account export is not configured")
)
