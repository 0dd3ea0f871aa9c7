package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts/internal/model"
)

type creatorFunc func(ctx context.Context, email, password string, fields model.AccountFields) (model.Account, error)

func (f creatorFunc) CreatePrivilegedAccount(ctx context.Context, email, password string, fields model.AccountFields) (model.Account, error) {
	return f(ctx, email, password, fields)
}

func noEnv(string) string { return "" }

func TestRun(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var gotFields model.AccountFields
	creator := creatorFunc(func(_ context.Context, email, password string, fields model.AccountFields) (model.Account, error) {
		assert.Equal(t, "root@Example.com", email)
		assert.Equal(t, "s3cret", password)
		gotFields = fields
		return model.Account{ID: id, Email: "root@example.com"}, nil
	})

	var out bytes.Buffer
	err := run(context.Background(), []string{"-email", "root@Example.com", "-password", "s3cret", "-first-name", "Ada"}, noEnv, creator, &out)
	require.NoError(t, err)

	assert.Equal(t, "Ada", gotFields.FirstName)
	assert.Equal(t, model.RoleAdmin, gotFields.Role)
	assert.Nil(t, gotFields.IsStaff)
	assert.Nil(t, gotFields.IsSuperuser)
	assert.Contains(t, out.String(), "Superuser root@example.com created")
	assert.Contains(t, out.String(), id.String())
}

func TestRun_PasswordFromEnv(t *testing.T) {
	t.Parallel()

	getenv := func(key string) string {
		if key == passwordEnv {
			return "from-env"
		}
		return ""
	}
	creator := creatorFunc(func(_ context.Context, _, password string, _ model.AccountFields) (model.Account, error) {
		assert.Equal(t, "from-env", password)
		return model.Account{Email: "root@example.com"}, nil
	})

	err := run(context.Background(), []string{"-email", "root@example.com"}, getenv, creator, &bytes.Buffer{})
	require.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	failing := creatorFunc(func(context.Context, string, string, model.AccountFields) (model.Account, error) {
		return model.Account{}, model.ErrMissingEmail
	})
	unused := creatorFunc(func(context.Context, string, string, model.AccountFields) (model.Account, error) {
		t.Fatal("creator must not be called")
		return model.Account{}, nil
	})

	err := run(context.Background(), []string{"-email", "root@example.com"}, noEnv, unused, &bytes.Buffer{})
	assert.ErrorContains(t, err, passwordEnv)

	err = run(context.Background(), []string{"-password", "x"}, noEnv, failing, &bytes.Buffer{})
	assert.ErrorIs(t, err, model.ErrMissingEmail)

	err = run(context.Background(), []string{"-unknown"}, noEnv, unused, &bytes.Buffer{})
	assert.Error(t, err)
}
