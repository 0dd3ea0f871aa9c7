package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/accounts/internal/logger"
	"github.com/dtroode/accounts/internal/model"
)

const basicScheme = "basic"

// Authenticator verifies account credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (model.Account, error)
}

// Authenticate checks basic credentials and injects the account ID into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// AuthFunc reads "authorization: Basic base64(email:password)" from metadata,
// authenticates the account and returns a context carrying its ID.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, basicScheme)
	if err != nil {
		return nil, err
	}

	email, password, ok := parseBasic(token)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "malformed basic credentials")
	}

	account, err := m.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) || errors.Is(err, model.ErrInactiveAccount) {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		m.logger.Error("Authenticate middleware: failed to authenticate",
			"email", email,
			"error", err.Error())
		return nil, status.Error(codes.Internal, "internal server error")
	}

	return m.contextManager.SetAccountIDToContext(ctx, account.ID), nil
}

func parseBasic(token string) (email, password string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", "", false
	}
	return strings.Cut(string(raw), ":")
}
