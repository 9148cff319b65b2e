package routes

import (
	"strive_server/auth"
	"strive_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up the availability-check authorization route
func RegisterAuthRoutes(r *mux.Router, authorizer *auth.AuthorizerClient) {
	controller := controllers.NewAuthController(authorizer)

	r.HandleFunc("/api/auth/availability", controller.CheckAvailability).Methods("POST")
}
