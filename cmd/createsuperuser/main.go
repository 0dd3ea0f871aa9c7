// Command createsuperuser creates a staff superuser account directly in the
// accounts database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/accounts/internal/config"
	"github.com/dtroode/accounts/internal/credential"
	"github.com/dtroode/accounts/internal/logger"
	"github.com/dtroode/accounts/internal/model"
	"github.com/dtroode/accounts/internal/repository/postgres"
	"github.com/dtroode/accounts/internal/service"
)

// passwordEnv supplies the password when -password is not given.
const passwordEnv = "ACCOUNTS_SUPERUSER_PASSWORD"

type privilegedCreator interface {
	CreatePrivilegedAccount(ctx context.Context, email, password string, fields model.AccountFields) (model.Account, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
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

	accounts := service.NewAccounts(
		postgres.NewAccountRepository(db),
		credential.NewBcrypt(cfg.Password.BcryptCost),
		nil,
		logger,
	)

	if err := run(ctx, os.Args[1:], os.Getenv, accounts, os.Stdout); err != nil {
		logger.Error("failed to create superuser", "error", err)
		db.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, getenv func(string) string, creator privilegedCreator, out io.Writer) error {
	fs := flag.NewFlagSet("createsuperuser", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		email     = fs.String("email", "", "superuser email (required)")
		password  = fs.String("password", "", "superuser password, defaults to $"+passwordEnv)
		firstName = fs.String("first-name", "", "first name")
		lastName  = fs.String("last-name", "", "last name")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" {
		*password = getenv(passwordEnv)
	}
	if *password == "" {
		return errors.New("a password is required: pass -password or set " + passwordEnv)
	}

	account, err := creator.CreatePrivilegedAccount(ctx, *email, *password, model.AccountFields{
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      model.RoleAdmin,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Superuser %s created (id %s)\n", account, account.ID)
	return nil
}
