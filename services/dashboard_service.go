package services

import (
	"context"
	"log"

	"strive_server/apperr"
	"strive_server/auth"
	"strive_server/models"
	"strive_server/pipeline"
)

// DashboardService composes the multi-goal/multi-task aggregation pipeline:
// resolve the caller once, query their active goals, query their tasks, and
// group the tasks by goal back-reference for the final aggregation step.
type DashboardService struct {
	Goals *GoalService
	Tasks *TaskService
}

// DashboardView is the merged result handed to the external aggregation step.
type DashboardView struct {
	UserID      string                   `json:"userId"`
	Goals       []models.Goal            `json:"goals"`
	TasksByGoal map[string][]models.Task `json:"tasksByGoal"`
}

// Steps returns the ordered pipeline. Request phases only read the scratch;
// each Response phase is the sole writer of its own output.
func (ds *DashboardService) Steps() []pipeline.Step {
	return []pipeline.Step{
		{
			Name: "resolve-caller",
			Response: func(ctx context.Context, sc *pipeline.Scratch) error {
				sub, err := auth.RequireCaller(ctx)
				if err != nil {
					return err
				}
				sc.CallerID = sub
				return nil
			},
		},
		{
			Name: "load-goals",
			Request: func(ctx context.Context, sc *pipeline.Scratch) error {
				if sc.CallerID == "" {
					return apperr.Internal("caller missing from pipeline state")
				}
				return nil
			},
			Response: func(ctx context.Context, sc *pipeline.Scratch) error {
				goals, err := ds.Goals.ListGoals(ctx, ListGoalsOptions{
					Statuses: []string{models.GoalStatusActive},
				})
				if err != nil {
					return err
				}
				sc.Goals = goals
				return nil
			},
		},
		{
			Name: "load-tasks",
			Request: func(ctx context.Context, sc *pipeline.Scratch) error {
				if sc.CallerID == "" {
					return apperr.Internal("caller missing from pipeline state")
				}
				return nil
			},
			Response: func(ctx context.Context, sc *pipeline.Scratch) error {
				tasks, err := ds.Tasks.ListTasks(ctx, ListTasksOptions{
					Statuses: []string{
						models.TaskStatusActive,
						models.TaskStatusInProgress,
						models.TaskStatusCompleted,
					},
				})
				if err != nil {
					return err
				}
				sc.Tasks = tasks
				byGoal := make(map[string][]models.Task, len(tasks))
				for _, task := range tasks {
					byGoal[task.GoalID] = append(byGoal[task.GoalID], task)
				}
				sc.TasksByGoal = byGoal
				return nil
			},
		},
	}
}

// Dashboard runs the pipeline for one invocation and merges the scratch into
// the view. A failure in any step aborts the rest.
func (ds *DashboardService) Dashboard(ctx context.Context) (*DashboardView, error) {
	sc := &pipeline.Scratch{}
	if err := pipeline.Run(ctx, sc, ds.Steps()); err != nil {
		return nil, err
	}

	log.Printf("✅ Dashboard built for %s: %d goals, %d tasks", sc.CallerID, len(sc.Goals), len(sc.Tasks))
	return &DashboardView{
		UserID:      sc.CallerID,
		Goals:       sc.Goals,
		TasksByGoal: sc.TasksByGoal,
	}, nil
}
