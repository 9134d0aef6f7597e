package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard_api/internal/apperrors"
)

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	service := NewAuthService(users, nil, "test-secret")

	user, err := service.Register(RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, user.IsActive)

	_, err = service.Register(RegisterInput{Name: "Other", Email: "alice@example.com", Password: "secret2"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	loggedIn, token, err := service.Login(LoginInput{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	users := newFakeUserRepo()
	service := NewAuthService(users, nil, "test-secret")

	_, err := service.Register(RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = service.Login(LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	_, _, err = service.Login(LoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	users := newFakeUserRepo()
	service := NewAuthService(users, nil, "test-secret")

	user, err := service.Register(RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, users.Update(user))

	_, _, err = service.Login(LoginInput{Email: "alice@example.com", Password: "secret1"})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	users := newFakeUserRepo()
	service := NewAuthService(users, nil, "test-secret")

	_, err := service.Register(RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, token, err := service.Login(LoginInput{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	other := NewAuthService(users, nil, "different-secret")
	_, err = other.ParseToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	_, err = service.ParseToken("not-a-token")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
