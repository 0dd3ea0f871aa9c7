package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/accounts/internal/logger"
	"github.com/dtroode/accounts/internal/model"
)

// Accounts builds, looks up and authenticates accounts.
type Accounts struct {
	store   model.AccountStore
	hasher  model.PasswordHasher
	storage model.Storage
	logger  *logger.Logger
	now     func() time.Time
}

// NewAccounts creates the account service. storage may be nil, in which
// case Export is unavailable.
func NewAccounts(
	store model.AccountStore,
	hasher model.PasswordHasher,
	storage model.Storage,
	logger *logger.Logger,
) *Accounts {
	return &Accounts{
		store:   store,
		hasher:  hasher,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateAccount validates and normalizes the email, applies field defaults,
// hashes the password and persists the account. An empty password leaves
// the account without a usable credential.
func (s *Accounts) CreateAccount(ctx context.Context, email, password string, fields model.AccountFields) (model.Account, error) {
	email = model.NormalizeEmail(email)
	if email == "" {
		return model.Account{}, model.ErrMissingEmail
	}

	s.logger.Debug("Accounts service: creating account",
		"email", email)

	role := fields.Role
	if role == "" {
		role = model.DefaultRole
	}
	if !role.Valid() {
		return model.Account{}, fmt.Errorf("%w: %q", model.ErrInvalidRole, role)
	}

	now := s.now()
	account := model.Account{
		ID:          uuid.New(),
		Email:       email,
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Role:        role,
		IsActive:    boolOr(fields.IsActive, true),
		IsStaff:     boolOr(fields.IsStaff, false),
		IsSuperuser: boolOr(fields.IsSuperuser, false),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := account.SetPassword(s.hasher, password); err != nil {
		s.logger.Error("Accounts service: failed to set password",
			"email", email,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to set password: %w", err)
	}

	saved, err := s.store.Create(ctx, account)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			s.logger.Info("Accounts service: email already taken",
				"email", email)
			return model.Account{}, err
		}
		s.logger.Error("Accounts service: failed to create account",
			"email", email,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("Accounts service: account created",
		"account_id", saved.ID,
		"email", saved.Email,
		"role", saved.Role,
		"is_staff", saved.IsStaff,
		"is_superuser", saved.IsSuperuser)

	return saved, nil
}

// CreatePrivilegedAccount creates a staff superuser. Staff and superuser
// default to true and may not be explicitly disabled. The account is
// always active.
func (s *Accounts) CreatePrivilegedAccount(ctx context.Context, email, password string, fields model.AccountFields) (model.Account, error) {
	if fields.IsStaff == nil {
		fields.IsStaff = model.Bool(true)
	}
	if fields.IsSuperuser == nil {
		fields.IsSuperuser = model.Bool(true)
	}

	if !*fields.IsStaff {
		return model.Account{}, model.ErrPrivilegedStaff
	}
	if !*fields.IsSuperuser {
		return model.Account{}, model.ErrPrivilegedSuperuser
	}
	fields.IsActive = model.Bool(true)

	return s.CreateAccount(ctx, email, password, fields)
}

// GetByEmail looks an account up by its normalized email.
func (s *Accounts) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	email = model.NormalizeEmail(email)
	if email == "" {
		return model.Account{}, model.ErrMissingEmail
	}
	return s.store.GetByEmail(ctx, email)
}

// GetByID returns the account with the given ID or model.ErrNotFound.
func (s *Accounts) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	return s.store.GetByID(ctx, id)
}

// SetPassword replaces the credential of an existing account.
func (s *Accounts) SetPassword(ctx context.Context, id uuid.UUID, password string) (model.Account, error) {
	account, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Account{}, err
	}

	if err := account.SetPassword(s.hasher, password); err != nil {
		return model.Account{}, fmt.Errorf("failed to set password: %w", err)
	}

	saved, err := s.store.Update(ctx, account)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to save account: %w", err)
	}

	s.logger.Info("Accounts service: password changed",
		"account_id", id,
		"usable", saved.HasUsablePassword(s.hasher))

	return saved, nil
}

// UpdateProfile applies the non-empty names, the role and any flags set in fields.
func (s *Accounts) UpdateProfile(ctx context.Context, id uuid.UUID, fields model.AccountFields) (model.Account, error) {
	if fields.Role != "" && !fields.Role.Valid() {
		return model.Account{}, fmt.Errorf("%w: %q", model.ErrInvalidRole, fields.Role)
	}

	account, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Account{}, err
	}

	if fields.FirstName != "" {
		account.FirstName = fields.FirstName
	}
	if fields.LastName != "" {
		account.LastName = fields.LastName
	}
	if fields.Role != "" {
		account.Role = fields.Role
	}
	account.IsActive = boolOr(fields.IsActive, account.IsActive)
	account.IsStaff = boolOr(fields.IsStaff, account.IsStaff)
	account.IsSuperuser = boolOr(fields.IsSuperuser, account.IsSuperuser)

	saved, err := s.store.Update(ctx, account)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to save account: %w", err)
	}

	return saved, nil
}

// Authenticate returns the active account matching email and password.
func (s *Accounts) Authenticate(ctx context.Context, email, password string) (model.Account, error) {
	email = model.NormalizeEmail(email)
	if email == "" || password == "" {
		return model.Account{}, model.ErrInvalidCredentials
	}

	account, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("Accounts service: unknown email on login",
			"email", email)
		// Match the timing of the known-email path.
		_, _ = s.hasher.Hash(password)
		return model.Account{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if !account.CheckPassword(s.hasher, password) {
		s.logger.Info("Accounts service: password mismatch",
			"email", email)
		return model.Account{}, model.ErrInvalidCredentials
	}

	if !account.IsActive {
		s.logger.Info("Accounts service: inactive account tried to log in",
			"email", email)
		return model.Account{}, model.ErrInactiveAccount
	}

	return account, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
