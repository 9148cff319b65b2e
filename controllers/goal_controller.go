package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"strive_server/services"
	"strive_server/utils"
)

// GoalController struct
type GoalController struct {
	GoalService *services.GoalService
}

// NewGoalController initializes the goal controller
func NewGoalController(service *services.GoalService) *GoalController {
	return &GoalController{GoalService: service}
}

// CreateGoal - Create a goal under the caller's partition
func (c *GoalController) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var input services.CreateGoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	goal, err := c.GoalService.CreateGoal(r.Context(), input)
	if err != nil {
		log.Printf("❌ Failed to create goal: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// ListGoals - Fetch the caller's goals with optional status/limit/sort
func (c *GoalController) ListGoals(w http.ResponseWriter, r *http.Request) {
	opts := services.ListGoalsOptions{
		Statuses: utils.ParseStatuses(r),
		Limit:    utils.ParseLimit(r, 0),
		SortBy:   r.URL.Query().Get("sortBy"),
	}

	goals, err := c.GoalService.ListGoals(r.Context(), opts)
	if err != nil {
		log.Printf("❌ Error fetching goals: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

// GetGoal - Fetch one goal by id after the path-owner check
func (c *GoalController) GetGoal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goal, err := c.GoalService.GetGoal(r.Context(), vars["userId"], vars["goalId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// UpdateGoal - Merge supplied fields into an existing goal
func (c *GoalController) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateGoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	goal, err := c.GoalService.UpdateGoal(r.Context(), mux.Vars(r)["goalId"], input)
	if err != nil {
		log.Printf("❌ Failed to update goal: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// DeleteGoal - Remove a goal from the caller's partition
func (c *GoalController) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := c.GoalService.DeleteGoal(r.Context(), mux.Vars(r)["goalId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
