package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strive_server/apperr"
	"strive_server/models"
)

func newTaskFixture() (*GoalService, *TaskService, *fakeDynamo) {
	fake := newFakeDynamo()
	dynamo := &DynamoService{Client: fake}
	return &GoalService{Dynamo: dynamo}, &TaskService{Dynamo: dynamo}, fake
}

func TestCreateTaskAgainstExistingGoal(t *testing.T) {
	gs, ts, _ := newTaskFixture()
	ctx := callerCtx("U1")

	goal, err := gs.CreateGoal(ctx, CreateGoalInput{Title: "Ship v1"})
	require.NoError(t, err)

	task, err := ts.CreateTask(ctx, CreateTaskInput{
		GoalID: goal.GoalID,
		Title:  "Write tests",
		DueAt:  1733356800,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusActive, task.Status)
	assert.Equal(t, goal.GoalID, task.GoalID)
	assert.Equal(t, int64(1733356800), task.DueAt)
	assert.NotEmpty(t, task.TaskID)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestCreateTaskValidatesFields(t *testing.T) {
	_, ts, _ := newTaskFixture()
	ctx := callerCtx("U1")

	_, err := ts.CreateTask(ctx, CreateTaskInput{GoalID: "g1"})
	require.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "title")

	_, err = ts.CreateTask(ctx, CreateTaskInput{Title: "orphan"})
	require.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "goalId")
}

func TestCreateTaskMissingGoalPersistsNothing(t *testing.T) {
	_, ts, fake := newTaskFixture()
	ctx := callerCtx("U1")

	_, err := ts.CreateTask(ctx, CreateTaskInput{GoalID: "G-missing", Title: "doomed"})
	require.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Zero(t, fake.count(models.CoreTable, models.PrefixTask), "failed condition must leave no partial state")
}

func TestCreateTaskForeignGoalPersistsNothing(t *testing.T) {
	gs, ts, fake := newTaskFixture()

	goal, err := gs.CreateGoal(callerCtx("U1"), CreateGoalInput{Title: "mine"})
	require.NoError(t, err)

	// U2 references U1's goal id; the condition check runs against U2's own
	// partition and fails.
	_, err = ts.CreateTask(callerCtx("U2"), CreateTaskInput{GoalID: goal.GoalID, Title: "steal"})
	require.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Zero(t, fake.count(models.CoreTable, models.PrefixTask))
}

func TestConcurrentCreateTaskAgainstDeletedGoal(t *testing.T) {
	gs, ts, fake := newTaskFixture()
	ctx := callerCtx("U1")

	goal, err := gs.CreateGoal(ctx, CreateGoalInput{Title: "doomed"})
	require.NoError(t, err)
	require.NoError(t, gs.DeleteGoal(ctx, goal.GoalID))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ts.CreateTask(ctx, CreateTaskInput{GoalID: goal.GoalID, Title: "racer"})
			assert.Error(t, err)
		}()
	}
	wg.Wait()

	assert.Zero(t, fake.count(models.CoreTable, models.PrefixTask), "no task may survive a deleted goal")
}

func TestListTasksStatusFilter(t *testing.T) {
	gs, ts, _ := newTaskFixture()
	ctx := callerCtx("U1")

	goal, err := gs.CreateGoal(ctx, CreateGoalInput{Title: "Ship v1"})
	require.NoError(t, err)

	first, err := ts.CreateTask(ctx, CreateTaskInput{GoalID: goal.GoalID, Title: "a"})
	require.NoError(t, err)
	_, err = ts.CreateTask(ctx, CreateTaskInput{GoalID: goal.GoalID, Title: "b"})
	require.NoError(t, err)

	_, err = ts.UpdateTaskStatus(ctx, first.TaskID, models.TaskStatusCompleted)
	require.NoError(t, err)

	tasks, err := ts.ListTasks(ctx, ListTasksOptions{Statuses: []string{models.TaskStatusCompleted}})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, first.TaskID, tasks[0].TaskID)
}

func TestUpdateTaskStatusNotFound(t *testing.T) {
	_, ts, _ := newTaskFixture()

	_, err := ts.UpdateTaskStatus(callerCtx("U1"), "missing", models.TaskStatusCompleted)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
