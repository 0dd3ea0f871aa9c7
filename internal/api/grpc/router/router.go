package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/dtroode/accounts/internal/api/grpc/accountsapi"
	"github.com/dtroode/accounts/internal/api/grpc/codec"
	"github.com/dtroode/accounts/internal/api/grpc/handler"
	"github.com/dtroode/accounts/internal/api/grpc/middleware"
	"github.com/dtroode/accounts/internal/logger"
	"github.com/dtroode/accounts/internal/model"
)

// AccountService is what the router needs from the account service:
// the handler operations plus credential checks for the auth interceptor.
type AccountService interface {
	handler.AccountService
	middleware.Authenticator
}

// Router wires the accounts service, its interceptors and the JSON codec
// into a gRPC server.
type Router struct {
	accounts       AccountService
	permissions    handler.PermissionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	accounts AccountService,
	permissions handler.PermissionService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		accounts:       accounts,
		permissions:    permissions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// authRequired selects the calls that go through basic authentication.
func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), "/"+accountsapi.ServiceName+"/")
}

// Register builds the gRPC server with logging and authentication
// interceptors and registers the accounts service on it.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.accounts, r.contextManager, r.logger)

	opts = append([]grpc.ServerOption{
		grpc.ForceServerCodec(codec.JSON{}),
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	}, opts...)

	s := grpc.NewServer(opts...)
	r.registerAccountRoutes(s)

	return s
}

func (r *Router) registerAccountRoutes(server *grpc.Server) {
	accountsHandler := handler.NewAccounts(r.accounts, r.permissions, r.contextManager, r.logger)
	accountsapi.RegisterAccountsServer(server, accountsHandler)
}
