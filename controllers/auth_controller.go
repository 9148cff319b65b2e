package controllers

import (
	"log"
	"net/http"

	"strive_server/auth"
)

// AuthController fronts the external authorizer for the one-time
// availability-check flow
type AuthController struct {
	Authorizer *auth.AuthorizerClient
}

// NewAuthController initializes the auth controller
func NewAuthController(authorizer *auth.AuthorizerClient) *AuthController {
	return &AuthController{Authorizer: authorizer}
}

// CheckAvailability - Shape the authorizer payload from request headers and
// surface the typed result
func (c *AuthController) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	headers := map[string]string{
		"Authorization": r.Header.Get("Authorization"),
	}

	sub, err := c.Authorizer.Authorize(r.Context(), auth.ModeAvailability, headers)
	if err != nil {
		log.Printf("❌ Availability check rejected: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"sub": sub})
}
