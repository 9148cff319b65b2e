// Package pipeline sequences multi-step resolver invocations that share one
// scratch context. The scratch lives for a single external invocation only;
// nothing in it is visible across invocations.
package pipeline

import (
	"context"

	"strive_server/models"
)

// Scratch is the shared intermediate state threaded through a pipeline.
// Request phases only read it; each step's Response phase is the sole writer.
type Scratch struct {
	CallerID       string
	AuthorizedRoom string
	Goals          []models.Goal
	Tasks          []models.Task
	TasksByGoal    map[string][]models.Task
}

// Step is one request/response pair. Request validates preconditions against
// the scratch; Response performs the operation and stores its mapped result.
type Step struct {
	Name     string
	Request  func(ctx context.Context, sc *Scratch) error
	Response func(ctx context.Context, sc *Scratch) error
}

// Run executes steps in order. A failure in either phase aborts the rest of
// the pipeline; no step runs after a prior step raised an error.
func Run(ctx context.Context, sc *Scratch, steps []Step) error {
	for _, step := range steps {
		if step.Request != nil {
			if err := step.Request(ctx, sc); err != nil {
				return err
			}
		}
		if step.Response != nil {
			if err := step.Response(ctx, sc); err != nil {
				return err
			}
		}
	}
	return nil
}
