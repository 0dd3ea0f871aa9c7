package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// accountIDKey is the incoming metadata key carrying the authenticated account ID.
const accountIDKey = "x-account-id"

// Manager stores the authenticated account ID in incoming gRPC metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAccountIDToContext returns a context whose incoming metadata carries
// accountID. Metadata already present is kept, except any client supplied
// account ID, which is overwritten.
func (m *Manager) SetAccountIDToContext(ctx context.Context, accountID uuid.UUID) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{accountIDKey: accountID.String()})
	} else {
		md = md.Copy()
		md.Set(accountIDKey, accountID.String())
	}

	return metadata.NewIncomingContext(ctx, md)
}

// GetAccountIDFromContext returns the account ID set by SetAccountIDToContext.
func (m *Manager) GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, false
	}

	ids := md.Get(accountIDKey)
	if len(ids) == 0 {
		return uuid.Nil, false
	}

	accountID, err := uuid.Parse(ids[0])
	if err != nil {
		return uuid.Nil, false
	}

	return accountID, true
}
