package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestManager_SetAndGetAccountID(t *testing.T) {
	m := NewManager()
	id := uuid.New()
	ctx := m.SetAccountIDToContext(stdctx.Background(), id)

	got, ok := m.GetAccountIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestManager_GetAccountID_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetAccountIDFromContext(stdctx.Background())
	assert.False(t, ok)

	ctx := metadata.NewIncomingContext(stdctx.Background(), metadata.New(map[string]string{"x-trace-id": "t"}))
	_, ok = m.GetAccountIDFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_GetAccountID_Malformed(t *testing.T) {
	m := NewManager()
	ctx := metadata.NewIncomingContext(stdctx.Background(), metadata.New(map[string]string{accountIDKey: "not-a-uuid"}))

	_, ok := m.GetAccountIDFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetAccountID_KeepsMetadata(t *testing.T) {
	m := NewManager()
	id := uuid.New()
	base := metadata.New(map[string]string{"x-trace-id": "t", accountIDKey: uuid.NewString()})
	ctx := metadata.NewIncomingContext(stdctx.Background(), base)

	ctx = m.SetAccountIDToContext(ctx, id)

	md, ok := metadata.FromIncomingContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, []string{"t"}, md.Get("x-trace-id"))
	assert.Equal(t, []string{id.String()}, md.Get(accountIDKey))

	got, ok := m.GetAccountIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
