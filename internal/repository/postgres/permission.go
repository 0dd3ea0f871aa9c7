package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/accounts/internal/model"
)

var _ model.PermissionStore = (*PermissionRepository)(nil)

type PermissionRepository struct {
	db querier
}

func NewPermissionRepository(db *Connection) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// Grant is idempotent.
func (r *PermissionRepository) Grant(ctx context.Context, accountID uuid.UUID, perm string) error {
	const query = `
        INSERT INTO account_permissions (account_id, permission)
        VALUES ($1, $2)
        ON CONFLICT (account_id, permission) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, accountID, perm); err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to grant permission: %w", err)
	}
	return nil
}

func (r *PermissionRepository) Revoke(ctx context.Context, accountID uuid.UUID, perm string) error {
	const query = `
        DELETE FROM account_permissions
        WHERE account_id = $1 AND permission = $2
    `
	if _, err := r.db.Exec(ctx, query, accountID, perm); err != nil {
		return fmt.Errorf("failed to revoke permission: %w", err)
	}
	return nil
}

func (r *PermissionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]string, error) {
	const query = `
        SELECT permission FROM account_permissions
        WHERE account_id = $1
        ORDER BY permission
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	perms, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect permissions: %w", err)
	}
	return perms, nil
}
