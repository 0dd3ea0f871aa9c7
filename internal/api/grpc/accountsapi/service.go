package accountsapi

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "accounts.Accounts"

const (
	CreateAccountFullMethod           = "/" + ServiceName + "/CreateAccount"
	CreatePrivilegedAccountFullMethod = "/" + ServiceName + "/CreatePrivilegedAccount"
	GetAccountFullMethod              = "/" + ServiceName + "/GetAccount"
	GrantPermissionFullMethod         = "/" + ServiceName + "/GrantPermission"
	RevokePermissionFullMethod        = "/" + ServiceName + "/RevokePermission"
	HasPermissionFullMethod           = "/" + ServiceName + "/HasPermission"
	ExportAccountsFullMethod          = "/" + ServiceName + "/ExportAccounts"
)

// AccountsServer is the server API for the accounts service.
type AccountsServer interface {
	CreateAccount(context.Context, *CreateAccountRequest) (*Account, error)
	CreatePrivilegedAccount(context.Context, *CreateAccountRequest) (*Account, error)
	GetAccount(context.Context, *GetAccountRequest) (*Account, error)
	GrantPermission(context.Context, *PermissionRequest) (*Empty, error)
	RevokePermission(context.Context, *PermissionRequest) (*Empty, error)
	HasPermission(context.Context, *PermissionRequest) (*HasPermissionResponse, error)
	ExportAccounts(context.Context, *Empty) (*ExportResponse, error)
}

// ServiceDesc is the grpc.ServiceDesc for the accounts service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateAccount", Handler: unaryHandler(CreateAccountFullMethod, AccountsServer.CreateAccount)},
		{MethodName: "CreatePrivilegedAccount", Handler: unaryHandler(CreatePrivilegedAccountFullMethod, AccountsServer.CreatePrivilegedAccount)},
		{MethodName: "GetAccount", Handler: unaryHandler(GetAccountFullMethod, AccountsServer.GetAccount)},
		{MethodName: "GrantPermission", Handler: unaryHandler(GrantPermissionFullMethod, AccountsServer.GrantPermission)},
		{MethodName: "RevokePermission", Handler: unaryHandler(RevokePermissionFullMethod, AccountsServer.RevokePermission)},
		{MethodName: "HasPermission", Handler: unaryHandler(HasPermissionFullMethod, AccountsServer.HasPermission)},
		{MethodName: "ExportAccounts", Handler: unaryHandler(ExportAccountsFullMethod, AccountsServer.ExportAccounts)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "accounts.json",
}

// RegisterAccountsServer registers srv on s.
func RegisterAccountsServer(s grpc.ServiceRegistrar, srv AccountsServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(AccountsServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountsServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountsServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
