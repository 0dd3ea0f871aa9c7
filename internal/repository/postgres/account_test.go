package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts/internal/model"
)

func TestNewAccountRepository(t *testing.T) {
	db := &Connection{}
	repo := NewAccountRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func accountRow(acc model.Account) fakeRow {
	return fakeRow{scan: func(dest ...any) error {
		*dest[0].(*uuid.UUID) = acc.ID
		*dest[1].(*string) = acc.Email
		*dest[2].(*string) = acc.FirstName
		*dest[3].(*string) = acc.LastName
		*dest[4].(*model.Role) = acc.Role
		*dest[5].(*bool) = acc.IsActive
		*dest[6].(*bool) = acc.IsStaff
		*dest[7].(*bool) = acc.IsSuperuser
		*dest[8].(*string) = acc.PasswordHash
		*dest[9].(*time.Time) = acc.CreatedAt
		*dest[10].(*time.Time) = acc.UpdatedAt
		return nil
	}}
}

func TestAccountRepository_Create(t *testing.T) {
	acc := model.Account{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		Role:         model.RoleStudent,
		IsActive:     true,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	tests := []struct {
		name    string
		row     pgx.Row
		wantErr error
	}{
		{
			name: "successful creation",
			row:  accountRow(acc),
		},
		{
			name:    "duplicate email",
			row:     errRow(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}),
			wantErr: model.ErrEmailTaken,
		},
		{
			name:    "other database error",
			row:     errRow(errors.New("connection reset")),
			wantErr: errors.New("failed to create account: connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &AccountRepository{db: &fakeQuerier{row: tt.row}}

			saved, err := repo.Create(context.Background(), acc)
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, acc, saved)
			case errors.Is(tt.wantErr, model.ErrEmailTaken):
				require.ErrorIs(t, err, model.ErrEmailTaken)
				assert.Contains(t, err.Error(), acc.Email)
			default:
				require.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	acc := model.Account{ID: uuid.New(), Email: "jane@example.com", Role: model.RoleTeacher}

	repo := &AccountRepository{db: &fakeQuerier{row: accountRow(acc)}}
	got, err := repo.GetByEmail(context.Background(), acc.Email)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)
	assert.Equal(t, model.RoleTeacher, got.Role)

	repo = &AccountRepository{db: &fakeQuerier{row: errRow(pgx.ErrNoRows)}}
	_, err = repo.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)

	repo = &AccountRepository{db: &fakeQuerier{row: errRow(assert.AnError)}}
	_, err = repo.GetByEmail(context.Background(), "x@example.com")
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

func TestAccountRepository_GetByID(t *testing.T) {
	repo := &AccountRepository{db: &fakeQuerier{row: errRow(pgx.ErrNoRows)}}
	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAccountRepository_Update(t *testing.T) {
	acc := model.Account{ID: uuid.New(), Email: "jane@example.com"}

	repo := &AccountRepository{db: &fakeQuerier{row: accountRow(acc)}}
	saved, err := repo.Update(context.Background(), acc)
	require.NoError(t, err)
	assert.Equal(t, acc.Email, saved.Email)

	repo = &AccountRepository{db: &fakeQuerier{row: errRow(pgx.ErrNoRows)}}
	_, err = repo.Update(context.Background(), acc)
	assert.ErrorIs(t, err, model.ErrNotFound)

	repo = &AccountRepository{db: &fakeQuerier{row: errRow(&pgconn.PgError{Code: "23505"})}}
	_, err = repo.Update(context.Background(), acc)
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAccountRepository_ListQueryError(t *testing.T) {
	repo := &AccountRepository{db: &fakeQuerier{queryErr: assert.AnError}}
	_, err := repo.List(context.Background())
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to list accounts")
}
