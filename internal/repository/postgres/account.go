package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/accounts/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

const accountColumns = `id, email, first_name, last_name, role, is_active, is_staff, is_superuser,
			  password_hash, created_at, updated_at`

type AccountRepository struct {
	db querier
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (model.Account, error) {
	var account model.Account
	err := row.Scan(
		&account.ID, &account.Email, &account.FirstName, &account.LastName, &account.Role,
		&account.IsActive, &account.IsStaff, &account.IsSuperuser,
		&account.PasswordHash, &account.CreatedAt, &account.UpdatedAt,
	)
	return account, err
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	account, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (id, email, first_name, last_name, role, is_active, is_staff, is_superuser,
			  password_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING ` + accountColumns

	saved, err := scanAccount(r.db.QueryRow(ctx, query,
		account.ID, account.Email, account.FirstName, account.LastName, account.Role,
		account.IsActive, account.IsStaff, account.IsSuperuser,
		account.PasswordHash, account.CreatedAt, account.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Account{}, fmt.Errorf("failed to create account %q: %w", account.Email, model.ErrEmailTaken)
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return saved, nil
}

// Update saves every mutable field and refreshes updated_at.
func (r *AccountRepository) Update(ctx context.Context, account model.Account) (model.Account, error) {
	query := `UPDATE accounts
			  SET email = $2, first_name = $3, last_name = $4, role = $5,
			      is_active = $6, is_staff = $7, is_superuser = $8, password_hash = $9,
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + accountColumns

	saved, err := scanAccount(r.db.QueryRow(ctx, query,
		account.ID, account.Email, account.FirstName, account.LastName, account.Role,
		account.IsActive, account.IsStaff, account.IsSuperuser, account.PasswordHash,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Account{}, fmt.Errorf("failed to update account %q: %w", account.Email, model.ErrEmailTaken)
		}
		return model.Account{}, fmt.Errorf("failed to update account: %w", err)
	}

	return saved, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
