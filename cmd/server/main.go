package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcctx "github.com/dtroode/accounts/internal/api/grpc/context"
	"github.com/dtroode/accounts/internal/api/grpc/router"
	grpcServer "github.com/dtroode/accounts/internal/api/grpc/server"
	"github.com/dtroode/accounts/internal/config"
	"github.com/dtroode/accounts/internal/credential"
	"github.com/dtroode/accounts/internal/logger"
	"github.com/dtroode/accounts/internal/model"
	"github.com/dtroode/accounts/internal/repository/postgres"
	"github.com/dtroode/accounts/internal/server"
	"github.com/dtroode/accounts/internal/service"
	storage "github.com/dtroode/accounts/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	var snapshots model.Storage
	if cfg.Storage.Enabled {
		client, err := storage.New(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize snapshot storage", "error", err)
		}
		snapshots = client
	}

	accountRepo := postgres.NewAccountRepository(db)
	permissionRepo := postgres.NewPermissionRepository(db)
	hasher := credential.NewBcrypt(cfg.Password.BcryptCost)

	accountService := service.NewAccounts(accountRepo, hasher, snapshots, logger)
	permissionService := service.NewPermissions(permissionRepo, logger)

	r := router.New(accountService, permissionService, grpcctx.NewManager(), logger)
	grpcSrv := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		logger.Warn("serving without TLS, basic credentials are sent in clear text")
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcSrv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcSrv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcSrv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
