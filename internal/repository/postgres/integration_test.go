//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/accounts/internal/model"
	repo "github.com/dtroode/accounts/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "accounts_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/accounts_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newAccount(email string) model.Account {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return model.Account{
		ID:           uuid.New(),
		Email:        email,
		Role:         model.RoleStudent,
		IsActive:     true,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestAccountRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn, 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ar := repo.NewAccountRepository(conn)

	acc := newAccount("crud@example.com")
	acc.FirstName = "Ada"
	acc.Role = model.RoleTeacher
	saved, err := ar.Create(ctx, acc)
	require.NoError(t, err)
	require.Equal(t, acc.ID, saved.ID)
	require.Equal(t, model.RoleTeacher, saved.Role)

	byEmail, err := ar.GetByEmail(ctx, acc.Email)
	require.NoError(t, err)
	require.Equal(t, acc.ID, byEmail.ID)

	byID, err := ar.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", byID.FirstName)

	time.Sleep(10 * time.Millisecond)
	byID.LastName = "Lovelace"
	updated, err := ar.Update(ctx, byID)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.True(t, updated.UpdatedAt.After(saved.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(saved.CreatedAt))

	_, err = ar.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	list, err := ar.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn, 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ar := repo.NewAccountRepository(conn)

	_, err = ar.Create(ctx, newAccount("dup@example.com"))
	require.NoError(t, err)

	_, err = ar.Create(ctx, newAccount("dup@example.com"))
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAccountRepository_ConcurrentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn, 8)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ar := repo.NewAccountRepository(conn)

	const workers = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		ok    int
		taken int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ar.Create(ctx, newAccount("race@example.com"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, model.ErrEmailTaken):
				taken++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, taken)
}

func TestPermissionRepository_GrantRevoke(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn, 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ar := repo.NewAccountRepository(conn)
	pr := repo.NewPermissionRepository(conn)

	acc, err := ar.Create(ctx, newAccount("perms@example.com"))
	require.NoError(t, err)

	require.NoError(t, pr.Grant(ctx, acc.ID, "courses.view_course"))
	require.NoError(t, pr.Grant(ctx, acc.ID, "courses.view_course"))
	require.NoError(t, pr.Grant(ctx, acc.ID, "accounts.view_account"))

	perms, err := pr.ListByAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"accounts.view_account", "courses.view_course"}, perms)

	require.NoError(t, pr.Revoke(ctx, acc.ID, "courses.view_course"))
	perms, err = pr.ListByAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"accounts.view_account"}, perms)

	require.ErrorIs(t, pr.Grant(ctx, uuid.New(), "courses.view_course"), model.ErrNotFound)
}
