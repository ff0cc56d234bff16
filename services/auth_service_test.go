package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIssuesSessionToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	user, err := svc.Register(context.Background(), "Leonardo", "leo@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.SessionToken)
	assert.Equal(t, "Leonardo", user.Name)
	assert.Equal(t, "leo@example.com", user.Email)
}

func TestRegisterTokensAreUnique(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	a, err := svc.Register(context.Background(), "A", "a@example.com")
	require.NoError(t, err)
	b, err := svc.Register(context.Background(), "B", "b@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.SessionToken, b.SessionToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newTestDB(t))
	ctx := context.Background()

	first, err := svc.Register(ctx, "Leonardo", "leo@example.com")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Impostor", "leo@example.com")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The conflict must not touch the existing user or their token.
	got, err := svc.ResolveToken(ctx, first.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Leonardo", got.Name)
}

func TestResolveToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, "Leonardo", "leo@example.com")
	require.NoError(t, err)

	got, err := svc.ResolveToken(ctx, user.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.ResolveToken(ctx, "not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = svc.ResolveToken(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidSession)
}
