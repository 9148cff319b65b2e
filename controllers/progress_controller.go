package controllers

import (
	"log"
	"net/http"

	"strive_server/services"
	"strive_server/utils"
)

// ProgressController serves quests, badges and the dashboard aggregation
type ProgressController struct {
	QuestService     *services.QuestService
	BadgeService     *services.BadgeService
	DashboardService *services.DashboardService
}

// NewProgressController initializes the progress controller
func NewProgressController(quests *services.QuestService, badges *services.BadgeService, dashboard *services.DashboardService) *ProgressController {
	return &ProgressController{QuestService: quests, BadgeService: badges, DashboardService: dashboard}
}

// ListQuests - Fetch the caller's quests, optionally filtered by linked goal
func (c *ProgressController) ListQuests(w http.ResponseWriter, r *http.Request) {
	opts := services.ListQuestsOptions{
		GoalID: r.URL.Query().Get("goalId"),
		Limit:  utils.ParseLimit(r, 0),
		SortBy: r.URL.Query().Get("sortBy"),
	}

	quests, err := c.QuestService.ListQuests(r.Context(), opts)
	if err != nil {
		log.Printf("❌ Error fetching quests: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quests)
}

// ListBadges - Fetch the caller's badge awards with optional filters
func (c *ProgressController) ListBadges(w http.ResponseWriter, r *http.Request) {
	opts := services.ListBadgesOptions{
		Category: r.URL.Query().Get("category"),
		Rarity:   r.URL.Query().Get("rarity"),
		Limit:    utils.ParseLimit(r, 0),
		SortBy:   r.URL.Query().Get("sortBy"),
	}

	badges, err := c.BadgeService.ListBadges(r.Context(), opts)
	if err != nil {
		log.Printf("❌ Error fetching badges: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, badges)
}

// GetDashboard - Run the goals+tasks aggregation pipeline
func (c *ProgressController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := c.DashboardService.Dashboard(r.Context())
	if err != nil {
		log.Printf("❌ Dashboard pipeline failed: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
