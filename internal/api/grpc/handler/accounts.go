package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/accounts/internal/api/grpc/accountsapi"
	"github.com/dtroode/accounts/internal/logger"
	"github.com/dtroode/accounts/internal/model"
)

// AccountService defines account creation, lookup and export.
type AccountService interface {
	CreateAccount(ctx context.Context, email, password string, fields model.AccountFields) (model.Account, error)
	CreatePrivilegedAccount(ctx context.Context, email, password string, fields model.AccountFields) (model.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Account, error)
	GetByEmail(ctx context.Context, email string) (model.Account, error)
	Export(ctx context.Context) (string, error)
}

// PermissionService resolves and manages granted permissions.
type PermissionService interface {
	model.PermissionBackend
	Grant(ctx context.Context, accountID uuid.UUID, perm string) error
	Revoke(ctx context.Context, accountID uuid.UUID, perm string) error
}

var _ accountsapi.AccountsServer = (*Accounts)(nil)

// Accounts handles the accounts gRPC endpoints. Every call is made on
// behalf of the authenticated caller found in the context.
type Accounts struct {
	accounts       AccountService
	permissions    PermissionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAccounts creates a new Accounts handler.
func NewAccounts(
	accounts AccountService,
	permissions PermissionService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Accounts {
	return &Accounts{
		accounts:       accounts,
		permissions:    permissions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// CreateAccount creates a regular account. The caller needs accounts.add_account.
func (h *Accounts) CreateAccount(ctx context.Context, req *accountsapi.CreateAccountRequest) (*accountsapi.Account, error) {
	caller, err := h.authorize(ctx, model.PermAddAccount)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("Accounts handler: processing create account request",
		"caller_id", caller.ID,
		"email", req.Email)

	account, err := h.accounts.CreateAccount(ctx, req.Email, req.Password, toFields(req.Fields))
	if err != nil {
		h.logger.Warn("Accounts handler: create account failed",
			"caller_id", caller.ID,
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return toAPIAccount(account), nil
}

// CreatePrivilegedAccount creates a staff superuser. Only superusers may call it.
func (h *Accounts) CreatePrivilegedAccount(ctx context.Context, req *accountsapi.CreateAccountRequest) (*accountsapi.Account, error) {
	caller, err := h.requireSuperuser(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	account, err := h.accounts.CreatePrivilegedAccount(ctx, req.Email, req.Password, toFields(req.Fields))
	if err != nil {
		h.logger.Warn("Accounts handler: create privileged account failed",
			"caller_id", caller.ID,
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Accounts handler: privileged account created",
		"caller_id", caller.ID,
		"account_id", account.ID)

	return toAPIAccount(account), nil
}

// GetAccount returns an account by ID or email. The caller needs accounts.view_account.
func (h *Accounts) GetAccount(ctx context.Context, req *accountsapi.GetAccountRequest) (*accountsapi.Account, error) {
	if _, err := h.authorize(ctx, model.PermViewAccount); err != nil {
		return nil, handleError(err)
	}

	var (
		account model.Account
		err     error
	)
	switch {
	case req.ID != "":
		id, parseErr := parseID(req.ID)
		if parseErr != nil {
			return nil, parseErr
		}
		account, err = h.accounts.GetByID(ctx, id)
	case req.Email != "":
		account, err = h.accounts.GetByEmail(ctx, req.Email)
	default:
		return nil, status.Error(codes.InvalidArgument, "id or email is required")
	}
	if err != nil {
		return nil, handleError(err)
	}

	return toAPIAccount(account), nil
}

// GrantPermission grants a permission to an account. Only superusers may call it.
func (h *Accounts) GrantPermission(ctx context.Context, req *accountsapi.PermissionRequest) (*accountsapi.Empty, error) {
	caller, err := h.requireSuperuser(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	id, err := parseID(req.AccountID)
	if err != nil {
		return nil, err
	}

	if err := h.permissions.Grant(ctx, id, req.Permission); err != nil {
		h.logger.Warn("Accounts handler: grant permission failed",
			"caller_id", caller.ID,
			"account_id", id,
			"permission", req.Permission,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &accountsapi.Empty{}, nil
}

// RevokePermission removes a granted permission. Only superusers may call it.
func (h *Accounts) RevokePermission(ctx context.Context, req *accountsapi.PermissionRequest) (*accountsapi.Empty, error) {
	if _, err := h.requireSuperuser(ctx); err != nil {
		return nil, handleError(err)
	}

	id, err := parseID(req.AccountID)
	if err != nil {
		return nil, err
	}

	if err := h.permissions.Revoke(ctx, id, req.Permission); err != nil {
		return nil, handleError(err)
	}

	return &accountsapi.Empty{}, nil
}

// HasPermission reports whether the target account holds a permission.
// The caller needs accounts.view_account.
func (h *Accounts) HasPermission(ctx context.Context, req *accountsapi.PermissionRequest) (*accountsapi.HasPermissionResponse, error) {
	if _, err := h.authorize(ctx, model.PermViewAccount); err != nil {
		return nil, handleError(err)
	}

	id, err := parseID(req.AccountID)
	if err != nil {
		return nil, err
	}

	target, err := h.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, handleError(err)
	}

	allowed, err := target.HasPermission(ctx, h.permissions, req.Permission, nil)
	if err != nil {
		return nil, handleError(err)
	}

	return &accountsapi.HasPermissionResponse{Allowed: allowed}, nil
}

// ExportAccounts writes an account snapshot to object storage. Only superusers may call it.
func (h *Accounts) ExportAccounts(ctx context.Context, _ *accountsapi.Empty) (*accountsapi.ExportResponse, error) {
	caller, err := h.requireSuperuser(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	key, err := h.accounts.Export(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Info("Accounts handler: accounts exported",
		"caller_id", caller.ID,
		"key", key)

	return &accountsapi.ExportResponse{Key: key}, nil
}

func (h *Accounts) caller(ctx context.Context) (model.Account, error) {
	id, ok := h.contextManager.GetAccountIDFromContext(ctx)
	if !ok {
		return model.Account{}, status.Error(codes.Unauthenticated, "caller is not authenticated")
	}

	account, err := h.accounts.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, status.Error(codes.Unauthenticated, "caller account no longer exists")
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to load caller: %w", err)
	}
	return account, nil
}

func (h *Accounts) authorize(ctx context.Context, perm string) (model.Account, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return model.Account{}, err
	}

	ok, err := caller.HasPermission(ctx, h.permissions, perm, nil)
	if err != nil {
		return model.Account{}, err
	}
	if !ok {
		return model.Account{}, fmt.Errorf("%w: %s required", model.ErrPermissionDenied, perm)
	}
	return caller, nil
}

func (h *Accounts) requireSuperuser(ctx context.Context) (model.Account, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return model.Account{}, err
	}
	if !caller.IsSuperuser {
		return model.Account{}, fmt.Errorf("%w: superuser required", model.ErrPermissionDenied)
	}
	return caller, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "invalid account id")
	}
	return id, nil
}

func toFields(f accountsapi.AccountFields) model.AccountFields {
	return model.AccountFields{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Role:        model.Role(f.Role),
		IsActive:    f.IsActive,
		IsStaff:     f.IsStaff,
		IsSuperuser: f.IsSuperuser,
	}
}

func toAPIAccount(a model.Account) *accountsapi.Account {
	return &accountsapi.Account{
		ID:          a.ID.String(),
		Email:       a.Email,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Role:        string(a.Role),
		IsActive:    a.IsActive,
		IsStaff:     a.IsStaff,
		IsSuperuser: a.IsSuperuser,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
