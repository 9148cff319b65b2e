package auth

import "context"

// Claims holds the identity claims extracted from a request token. It is
// populated by the middleware and read by the access guard; resolvers never
// touch the token themselves.
type Claims struct {
	Sub      string // primary claim source
	Username string // secondary claim source ("cognito:username")
	Email    string
}

// claimsKey is the key type for storing Claims in context.Context.
type claimsKey struct{}

// WithClaims returns a new context with the claims attached.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext retrieves the claims from the context, returning nil if
// the request carried no verified identity.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
