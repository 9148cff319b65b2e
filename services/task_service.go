package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"strive_server/apperr"
	"strive_server/auth"
	"strive_server/models"
)

type TaskService struct {
	Dynamo *DynamoService
}

type CreateTaskInput struct {
	GoalID string   `json:"goalId"`
	Title  string   `json:"title"`
	DueAt  int64    `json:"dueAt"`
	Tags   []string `json:"tags"`
}

type ListTasksOptions struct {
	Statuses []string
	Limit    int
	SortBy   string
}

// CreateTask creates a task atomically with a check that the referenced goal
// exists in the caller's own partition. Both invariants ride one transaction:
// a failed condition cancels the put and no task is ever persisted.
func (ts *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, apperr.Validation("title", "required")
	}
	if input.GoalID == "" {
		return nil, apperr.Validation("goalId", "required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	task := models.Task{
		PK:        models.UserPK(sub),
		SK:        models.TaskSK(uuid.NewString()),
		Type:      models.TypeTask,
		GoalID:    input.GoalID,
		Title:     input.Title,
		DueAt:     input.DueAt,
		Status:    models.TaskStatusActive,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	task.TaskID = models.TaskIDFromSK(task.SK)

	taskItem, err := attributevalue.MarshalMap(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}

	transactItems := []types.TransactWriteItem{
		{
			ConditionCheck: &types.ConditionCheck{
				TableName: aws.String(models.CoreTable),
				Key: map[string]types.AttributeValue{
					models.AttrPK: &types.AttributeValueMemberS{Value: models.UserPK(sub)},
					models.AttrSK: &types.AttributeValueMemberS{Value: models.GoalSK(input.GoalID)},
				},
				ConditionExpression: aws.String("attribute_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{
					"#pk": models.AttrPK,
				},
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(models.CoreTable),
				Item:      taskItem,
			},
		},
	}

	if err := ts.Dynamo.TransactWrite(ctx, transactItems); err != nil {
		if IsConditionFailure(err) {
			log.Printf("❌ Task creation rejected: goal %s not found for %s", input.GoalID, sub)
			return nil, apperr.Validation("goalId", "goal not found")
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// The response is the echoed write, not a re-read; a follow-up read could
	// race the eventually consistent replica.
	task.Normalize()
	log.Printf("✅ Task %s created under goal %s for %s", task.TaskID, input.GoalID, sub)
	return &task, nil
}

// ListTasks queries the caller's tasks with optional status filtering.
func (ts *TaskService) ListTasks(ctx context.Context, opts ListTasksOptions) ([]models.Task, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}

	query := listQuery{
		Table:    models.CoreTable,
		PK:       models.UserPK(sub),
		Prefix:   models.PrefixTask,
		Statuses: opts.Statuses,
		Limit:    opts.Limit,
		SortBy:   opts.SortBy,
	}
	items, err := ts.Dynamo.QueryWithInput(ctx, query.build())
	if err != nil {
		log.Printf("❌ Error querying tasks: %v", err)
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(items))
	for _, item := range items {
		var task models.Task
		if err := attributevalue.UnmarshalMap(item, &task); err != nil {
			return nil, fmt.Errorf("failed to parse task: %w", err)
		}
		task.Normalize()
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// UpdateTaskStatus moves a task through its lifecycle.
func (ts *TaskService) UpdateTaskStatus(ctx context.Context, taskID, status string) (*models.Task, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if taskID == "" {
		return nil, apperr.Validation("taskId", "required")
	}
	switch status {
	case models.TaskStatusActive, models.TaskStatusInProgress, models.TaskStatusCompleted:
	default:
		return nil, apperr.Validation("status", "unknown status")
	}

	key := map[string]types.AttributeValue{
		models.AttrPK: &types.AttributeValueMemberS{Value: models.UserPK(sub)},
		models.AttrSK: &types.AttributeValueMemberS{Value: models.TaskSK(taskID)},
	}
	item, err := ts.Dynamo.GetItem(ctx, models.CoreTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	if item == nil {
		return nil, apperr.NotFound("task not found")
	}

	attrs, err := ts.Dynamo.UpdateItem(ctx, models.CoreTable,
		"SET #status = :status, #updatedAt = :updatedAt", key,
		map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: status},
			":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#status": "status", "#updatedAt": "updatedAt"})
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	var task models.Task
	if err := attributevalue.UnmarshalMap(attrs, &task); err != nil {
		return nil, fmt.Errorf("failed to parse updated task: %w", err)
	}
	task.Normalize()
	return &task, nil
}
