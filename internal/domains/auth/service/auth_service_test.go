package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/internal/domains/auth/repository"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/pkg/jwt"
)

func newTestService(t *testing.T) auth.Service {
	t.Helper()

	db := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, db.Connect(context.Background()))
	t.Cleanup(func() { db.Close() })

	manager := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(repository.NewSQLiteRepository(db.DB), manager)
}

func TestSetup_OnlyOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	configured, err := svc.Configured(ctx)
	require.NoError(t, err)
	assert.False(t, configured)

	require.NoError(t, svc.Setup(ctx, auth.SetupRequest{Username: "admin", Password: "secret123"}))

	configured, err = svc.Configured(ctx)
	require.NoError(t, err)
	assert.True(t, configured)

	// Setup lần 2 phải fail kể cả với credentials khác
	err = svc.Setup(ctx, auth.SetupRequest{Username: "other", Password: "other456"})
	assert.True(t, errors.Is(err, auth.ErrAlreadyConfigured))
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Setup(ctx, auth.SetupRequest{Username: "admin", Password: "secret123"}))

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Username)

	_, err = svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "wrong"})
	assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))

	_, err = svc.Login(ctx, auth.LoginRequest{Username: "ghost", Password: "secret123"})
	assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))
}

func TestLogin_BeforeSetup(t *testing.T) {
	svc := newTestService(t)

	// Chưa có admin row - không được phân biệt với sai password
	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "secret123"})
	assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Setup(ctx, auth.SetupRequest{Username: "admin", Password: "old-pass"}))

	err := svc.ChangePassword(ctx, auth.AdminID, auth.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass",
	})
	assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))

	require.NoError(t, svc.ChangePassword(ctx, auth.AdminID, auth.ChangePasswordRequest{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
	}))

	_, err = svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "old-pass"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "new-pass"})
	assert.NoError(t, err)
}

func TestReset_OverwritesCredential(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Setup(ctx, auth.SetupRequest{Username: "admin", Password: "secret123"}))

	// Reset không cần prior auth - recovery path
	require.NoError(t, svc.Reset(ctx, auth.ResetRequest{Username: "recovered", Password: "new-secret"}))

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret123"})
	assert.Error(t, err)

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "recovered", Password: "new-secret"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Username)
}

func TestReset_WorksWithoutExistingAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Reset(ctx, auth.ResetRequest{Username: "admin", Password: "secret123"}))

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret123"})
	assert.NoError(t, err)
}
