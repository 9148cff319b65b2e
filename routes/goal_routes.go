package routes

import (
	"strive_server/controllers"
	"strive_server/services"

	"github.com/gorilla/mux"
)

// RegisterGoalRoutes sets up routes for goal and task operations under /api
func RegisterGoalRoutes(r *mux.Router, goalService *services.GoalService, taskService *services.TaskService) {
	goals := controllers.NewGoalController(goalService)
	tasks := controllers.NewTaskController(taskService)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/goals", goals.CreateGoal).Methods("POST")
	api.HandleFunc("/goals", goals.ListGoals).Methods("GET")
	api.HandleFunc("/users/{userId}/goals/{goalId}", goals.GetGoal).Methods("GET")
	api.HandleFunc("/goals/{goalId}", goals.UpdateGoal).Methods("PATCH")
	api.HandleFunc("/goals/{goalId}", goals.DeleteGoal).Methods("DELETE")

	api.HandleFunc("/tasks", tasks.CreateTask).Methods("POST")
	api.HandleFunc("/tasks", tasks.ListTasks).Methods("GET")
	api.HandleFunc("/tasks/{taskId}/status", tasks.UpdateTaskStatus).Methods("PATCH")
}
