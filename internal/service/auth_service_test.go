package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	repos := newTestRepos(t)
	auth := NewAuthService(repos.users, testJWTSecret, 0)
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)

	token, loggedIn, err := auth.Login(ctx, "alice", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Login returns the same identifier the registration produced.
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repos := newTestRepos(t)
	auth := NewAuthService(repos.users, testJWTSecret, 0)
	ctx := context.Background()

	first, err := auth.Register(ctx, "alice", "correct horse battery")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "alice", "another password")
	require.ErrorIs(t, err, ErrUsernameTaken)

	// The first registration still works for login.
	_, user, err := auth.Login(ctx, "alice", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repos := newTestRepos(t)
	auth := NewAuthService(repos.users, testJWTSecret, 0)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "correct horse battery")
	require.NoError(t, err)

	_, _, wrongPassword := auth.Login(ctx, "alice", "wrong password")
	_, _, unknownUser := auth.Login(ctx, "nobody", "correct horse battery")

	// Both failure modes surface the same error so the response does
	// not reveal whether the username exists.
	assert.ErrorIs(t, wrongPassword, ErrAuthenticationFailed)
	assert.ErrorIs(t, unknownUser, ErrAuthenticationFailed)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLoginTokenCarriesUserID(t *testing.T) {
	repos := newTestRepos(t)
	auth := NewAuthService(repos.users, testJWTSecret, 0)
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "correct horse battery")
	require.NoError(t, err)

	token, _, err := auth.Login(ctx, "alice", "correct horse battery")
	require.NoError(t, err)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
}
