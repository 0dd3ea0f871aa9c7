package accountsapi

import (
	"context"
	"encoding/base64"

	"google.golang.org/grpc"

	"github.com/dtroode/accounts/internal/api/grpc/codec"
)

// Client calls the accounts service over cc using the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, CreateAccountFullMethod, in, opts)
}

func (c *Client) CreatePrivilegedAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, CreatePrivilegedAccountFullMethod, in, opts)
}

func (c *Client) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, GetAccountFullMethod, in, opts)
}

func (c *Client) GrantPermission(ctx context.Context, in *PermissionRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, GrantPermissionFullMethod, in, opts)
}

func (c *Client) RevokePermission(ctx context.Context, in *PermissionRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, RevokePermissionFullMethod, in, opts)
}

func (c *Client) HasPermission(ctx context.Context, in *PermissionRequest, opts ...grpc.CallOption) (*HasPermissionResponse, error) {
	return invoke[HasPermissionResponse](ctx, c.cc, HasPermissionFullMethod, in, opts)
}

func (c *Client) ExportAccounts(ctx context.Context, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke[ExportResponse](ctx, c.cc, ExportAccountsFullMethod, &Empty{}, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.ForceCodec(codec.JSON{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// BasicAuth attaches email and password to every call as a basic
// authorization header.
type BasicAuth struct {
	Email    string
	Password string
	// Insecure allows sending credentials over plaintext connections.
	Insecure bool
}

func (b BasicAuth) GetRequestMetadata(_ context.Context, _ ...string) (map[string]string, error) {
	token := base64.StdEncoding.EncodeToString([]byte(b.Email + ":" + b.Password))
	return map[string]string{"authorization": "Basic " + token}, nil
}

func (b BasicAuth) RequireTransportSecurity() bool {
	return !b.Insecure
}
