package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"strive_server/services"
	"strive_server/utils"
)

// TaskController struct
type TaskController struct {
	TaskService *services.TaskService
}

// NewTaskController initializes the task controller
func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{TaskService: service}
}

// CreateTask - Create a task transactionally against its goal
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	task, err := c.TaskService.CreateTask(r.Context(), input)
	if err != nil {
		log.Printf("❌ Failed to create task: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// ListTasks - Fetch the caller's tasks with optional status/limit/sort
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	opts := services.ListTasksOptions{
		Statuses: utils.ParseStatuses(r),
		Limit:    utils.ParseLimit(r, 0),
		SortBy:   r.URL.Query().Get("sortBy"),
	}

	tasks, err := c.TaskService.ListTasks(r.Context(), opts)
	if err != nil {
		log.Printf("❌ Error fetching tasks: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// UpdateTaskStatus - Move a task through its lifecycle
func (c *TaskController) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	task, err := c.TaskService.UpdateTaskStatus(r.Context(), mux.Vars(r)["taskId"], request.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}
