package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strive_server/apperr"
	"strive_server/models"
)

func newDashboardFixture() (*GoalService, *TaskService, *DashboardService) {
	dynamo := &DynamoService{Client: newFakeDynamo()}
	gs := &GoalService{Dynamo: dynamo}
	ts := &TaskService{Dynamo: dynamo}
	return gs, ts, &DashboardService{Goals: gs, Tasks: ts}
}

func TestDashboardGroupsTasksByGoal(t *testing.T) {
	gs, ts, ds := newDashboardFixture()
	ctx := callerCtx("U1")

	first, err := gs.CreateGoal(ctx, CreateGoalInput{Title: "Run a marathon"})
	require.NoError(t, err)
	second, err := gs.CreateGoal(ctx, CreateGoalInput{Title: "Learn piano"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := ts.CreateTask(ctx, CreateTaskInput{GoalID: first.GoalID, Title: "long run"})
		require.NoError(t, err)
	}
	_, err = ts.CreateTask(ctx, CreateTaskInput{GoalID: second.GoalID, Title: "scales"})
	require.NoError(t, err)

	view, err := ds.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "U1", view.UserID)
	assert.Len(t, view.Goals, 2)
	assert.Len(t, view.TasksByGoal[first.GoalID], 2)
	assert.Len(t, view.TasksByGoal[second.GoalID], 1)
}

func TestDashboardOnlyActiveGoals(t *testing.T) {
	gs, _, ds := newDashboardFixture()
	ctx := callerCtx("U1")

	_, err := gs.CreateGoal(ctx, CreateGoalInput{Title: "keep"})
	require.NoError(t, err)
	paused, err := gs.CreateGoal(ctx, CreateGoalInput{Title: "bench"})
	require.NoError(t, err)
	status := models.GoalStatusPaused
	_, err = gs.UpdateGoal(ctx, paused.GoalID, UpdateGoalInput{Status: &status})
	require.NoError(t, err)

	view, err := ds.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, view.Goals, 1)
	assert.Equal(t, "keep", view.Goals[0].Title)
}

func TestDashboardAbortsWithoutCaller(t *testing.T) {
	_, _, ds := newDashboardFixture()

	_, err := ds.Dashboard(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestDashboardEmptyState(t *testing.T) {
	_, _, ds := newDashboardFixture()

	view, err := ds.Dashboard(callerCtx("U1"))
	require.NoError(t, err)
	assert.Empty(t, view.Goals)
	assert.Empty(t, view.TasksByGoal)
}
