package routes

import (
	"strive_server/controllers"
	"strive_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for profile operations under /api/profile
func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService) {
	controller := controllers.NewProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.HandleFunc("", controller.GetOwnProfile).Methods("GET")
	profileRouter.HandleFunc("", controller.CreateProfile).Methods("POST")
	profileRouter.HandleFunc("", controller.UpdateProfile).Methods("PATCH")
}
