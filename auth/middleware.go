package auth

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Middleware parses a Bearer token and stashes the verified claims in the
// request context. Requests without a token pass through unauthenticated;
// the access guard rejects them at the resolver boundary.
func Middleware(next http.Handler) http.Handler {
	secret := []byte(os.Getenv("STRIVE_JWT_SECRET"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			log.Printf("❌ Rejected invalid token: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		mapClaims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims := &Claims{
			Sub:      stringClaim(mapClaims, "sub"),
			Username: stringClaim(mapClaims, "cognito:username"),
			Email:    stringClaim(mapClaims, "email"),
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}
