package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strive_server/apperr"
)

func TestRequireCallerClaimPriority(t *testing.T) {
	ctx := WithClaims(context.Background(), &Claims{Sub: "S1", Username: "alice"})
	sub, err := RequireCaller(ctx)
	require.NoError(t, err)
	assert.Equal(t, "S1", sub, "sub wins over the username claim")

	ctx = WithClaims(context.Background(), &Claims{Username: "alice"})
	sub, err = RequireCaller(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub, "username is the fallback source")
}

func TestRequireCallerRejectsMissingIdentity(t *testing.T) {
	_, err := RequireCaller(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	_, err = RequireCaller(WithClaims(context.Background(), &Claims{}))
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestRequireOwner(t *testing.T) {
	ctx := WithClaims(context.Background(), &Claims{Sub: "S1"})

	sub, err := RequireOwner(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "S1", sub)

	// Empty target means "the caller's own partition".
	sub, err = RequireOwner(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "S1", sub)

	_, err = RequireOwner(ctx, "S2")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized), "mismatch must not redirect to the caller's data")
}
