package auth

import (
	"context"

	"strive_server/apperr"
)

// RequireCaller returns the caller's subject id or an Unauthorized error.
// Claim sources are checked in priority order: `sub` first, then the
// username claim. An empty or missing subject is unauthenticated.
func RequireCaller(ctx context.Context) (string, error) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return "", apperr.Unauthorized("missing identity")
	}
	if claims.Sub != "" {
		return claims.Sub, nil
	}
	if claims.Username != "" {
		return claims.Username, nil
	}
	return "", apperr.Unauthorized("missing identity")
}

// RequireOwner validates that an explicit target-user argument equals the
// caller's own id. A mismatch fails Unauthorized rather than silently
// redirecting to the caller's partition.
func RequireOwner(ctx context.Context, targetUserID string) (string, error) {
	sub, err := RequireCaller(ctx)
	if err != nil {
		return "", err
	}
	if targetUserID != "" && targetUserID != sub {
		return "", apperr.Unauthorized("caller does not own the requested resource")
	}
	return sub, nil
}
