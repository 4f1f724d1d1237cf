package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacarta/backend/internal/testhelpers"
)

func TestLoginSuccess(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "admin", "secret-password", true)

	token, err := svc.Login(ctx, "admin", "secret-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	testhelpers.CreateTestUser(t, db, "admin", "secret-password", true)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user := testhelpers.CreateTestUser(t, db, "admin", "secret-password", true)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err := svc.Login(context.Background(), "admin", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserDuplicate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "admin", "admin@example.com", "secret-password", true)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "admin", "other@example.com", "secret-password", false)
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.CreateUser(ctx, "other", "admin@example.com", "secret-password", false)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	issuer := NewAuthService(db, "secret-a")
	verifier := NewAuthService(db, "secret-b")

	testhelpers.CreateTestUser(t, db, "admin", "secret-password", true)
	token, err := issuer.Login(context.Background(), "admin", "secret-password")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenCarriesExpiry(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	testhelpers.CreateTestUser(t, db, "admin", "secret-password", true)
	token, err := svc.Login(context.Background(), "admin", "secret-password")
	require.NoError(t, err)

	// The token is valid now and carries a forward expiry; a delayed
	// validation within the TTL still succeeds.
	time.Sleep(10 * time.Millisecond)
	_, err = svc.ValidateToken(token)
	assert.NoError(t, err)
}
