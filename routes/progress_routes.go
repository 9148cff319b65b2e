package routes

import (
	"strive_server/controllers"
	"strive_server/services"

	"github.com/gorilla/mux"
)

// RegisterProgressRoutes sets up routes for quests, badges and the dashboard
func RegisterProgressRoutes(r *mux.Router, quests *services.QuestService, badges *services.BadgeService, dashboard *services.DashboardService) {
	controller := controllers.NewProgressController(quests, badges, dashboard)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/quests", controller.ListQuests).Methods("GET")
	api.HandleFunc("/badges", controller.ListBadges).Methods("GET")
	api.HandleFunc("/dashboard", controller.GetDashboard).Methods("GET")
}
