package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"strive_server/apperr"
	"strive_server/auth"
	"strive_server/models"
)

type GoalService struct {
	Dynamo *DynamoService
}

type CreateGoalInput struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	Deadline    *string  `json:"deadline"`
}

type UpdateGoalInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	Deadline    *string  `json:"deadline"`
	Status      *string  `json:"status"`
}

type ListGoalsOptions struct {
	Statuses []string
	Limit    int
	SortBy   string
}

// CreateGoal stores a new goal under the caller's partition.
func (gs *GoalService) CreateGoal(ctx context.Context, input CreateGoalInput) (*models.Goal, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, apperr.Validation("title", "required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	goal := models.Goal{
		PK:          models.UserPK(sub),
		SK:          models.GoalSK(uuid.NewString()),
		Type:        models.TypeGoal,
		OwnerID:     sub,
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		Deadline:    input.Deadline,
		Status:      models.GoalStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	goal.GoalID = models.GoalIDFromSK(goal.SK)

	if err := gs.Dynamo.PutItem(ctx, models.CoreTable, goal); err != nil {
		log.Printf("❌ Failed to store goal: %v", err)
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	goal.Normalize()
	log.Printf("✅ Goal %s created for %s", goal.GoalID, sub)
	return &goal, nil
}

// ListGoals queries the caller's goals with optional status filtering, a
// clamped limit and a sortBy-driven scan direction.
func (gs *GoalService) ListGoals(ctx context.Context, opts ListGoalsOptions) ([]models.Goal, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}

	query := listQuery{
		Table:    models.CoreTable,
		PK:       models.UserPK(sub),
		Prefix:   models.PrefixGoal,
		Statuses: opts.Statuses,
		Limit:    opts.Limit,
		SortBy:   opts.SortBy,
	}
	items, err := gs.Dynamo.QueryWithInput(ctx, query.build())
	if err != nil {
		log.Printf("❌ Error querying goals: %v", err)
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}

	goals := make([]models.Goal, 0, len(items))
	for _, item := range items {
		var goal models.Goal
		if err := attributevalue.UnmarshalMap(item, &goal); err != nil {
			return nil, fmt.Errorf("failed to parse goal: %w", err)
		}
		goal.Normalize()
		goals = append(goals, goal)
	}

	sortGoals(goals, opts.SortBy)
	return goals, nil
}

// GetGoal fetches one goal after an explicit ownership check: the path
// userID must equal the caller's own id.
func (gs *GoalService) GetGoal(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	sub, err := auth.RequireOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if goalID == "" {
		return nil, apperr.Validation("goalId", "required")
	}

	item, err := gs.Dynamo.GetItem(ctx, models.CoreTable, map[string]types.AttributeValue{
		models.AttrPK: &types.AttributeValueMemberS{Value: models.UserPK(sub)},
		models.AttrSK: &types.AttributeValueMemberS{Value: models.GoalSK(goalID)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goal: %w", err)
	}
	if item == nil {
		return nil, apperr.NotFound("goal not found")
	}

	var goal models.Goal
	if err := attributevalue.UnmarshalMap(item, &goal); err != nil {
		return nil, fmt.Errorf("failed to parse goal: %w", err)
	}
	goal.Normalize()
	return &goal, nil
}

// UpdateGoal merges only the supplied fields into an existing goal. Fields
// left nil keep their stored value.
func (gs *GoalService) UpdateGoal(ctx context.Context, goalID string, input UpdateGoalInput) (*models.Goal, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if goalID == "" {
		return nil, apperr.Validation("goalId", "required")
	}

	// Get-before-update keeps the merge partial; a blind put would replace.
	existing, err := gs.GetGoal(ctx, sub, goalID)
	if err != nil {
		return nil, err
	}

	setParts := []string{"#updatedAt = :updatedAt"}
	names := map[string]string{"#updatedAt": "updatedAt"}
	values := map[string]types.AttributeValue{
		":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperr.Validation("title", "must not be empty")
		}
		setParts = append(setParts, "#title = :title")
		names["#title"] = "title"
		values[":title"] = &types.AttributeValueMemberS{Value: *input.Title}
	}
	if input.Description != nil {
		setParts = append(setParts, "#description = :description")
		names["#description"] = "description"
		values[":description"] = &types.AttributeValueMemberS{Value: *input.Description}
	}
	if input.Deadline != nil {
		setParts = append(setParts, "#deadline = :deadline")
		names["#deadline"] = "deadline"
		values[":deadline"] = &types.AttributeValueMemberS{Value: *input.Deadline}
	}
	if input.Status != nil {
		if !validGoalStatus(*input.Status) {
			return nil, apperr.Validation("status", "unknown status")
		}
		setParts = append(setParts, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: *input.Status}
	}
	if input.Tags != nil {
		tags, err := attributevalue.Marshal(input.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tags: %w", err)
		}
		setParts = append(setParts, "#tags = :tags")
		names["#tags"] = "tags"
		values[":tags"] = tags
	}

	updateExpression := "SET " + strings.Join(setParts, ", ")
	attrs, err := gs.Dynamo.UpdateItem(ctx, models.CoreTable, updateExpression,
		map[string]types.AttributeValue{
			models.AttrPK: &types.AttributeValueMemberS{Value: models.UserPK(sub)},
			models.AttrSK: &types.AttributeValueMemberS{Value: models.GoalSK(existing.GoalID)},
		}, values, names)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	var goal models.Goal
	if err := attributevalue.UnmarshalMap(attrs, &goal); err != nil {
		return nil, fmt.Errorf("failed to parse updated goal: %w", err)
	}
	goal.Normalize()
	log.Printf("✅ Goal %s updated for %s", goalID, sub)
	return &goal, nil
}

// DeleteGoal removes a goal item from the caller's partition.
func (gs *GoalService) DeleteGoal(ctx context.Context, goalID string) error {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return err
	}
	if goalID == "" {
		return apperr.Validation("goalId", "required")
	}

	err = gs.Dynamo.DeleteItem(ctx, models.CoreTable, map[string]types.AttributeValue{
		models.AttrPK: &types.AttributeValueMemberS{Value: models.UserPK(sub)},
		models.AttrSK: &types.AttributeValueMemberS{Value: models.GoalSK(goalID)},
	})
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	log.Printf("✅ Goal %s deleted for %s", goalID, sub)
	return nil
}

func validGoalStatus(status string) bool {
	switch status {
	case models.GoalStatusActive, models.GoalStatusPaused, models.GoalStatusCompleted, models.GoalStatusArchived:
		return true
	}
	return false
}

// sortGoals applies the secondary client-side sort over the fetched page.
// Title comparison is case-sensitive and locale-naive; a nil deadline sorts
// after all real dates ascending and before all real dates descending.
func sortGoals(goals []models.Goal, sortBy string) {
	field, descending := splitSortBy(sortBy)
	switch field {
	case "title":
		sort.SliceStable(goals, func(i, j int) bool {
			if descending {
				return goals[i].Title > goals[j].Title
			}
			return goals[i].Title < goals[j].Title
		})
	case "deadline":
		sort.SliceStable(goals, func(i, j int) bool {
			return deadlineLess(goals[i].Deadline, goals[j].Deadline, descending)
		})
	}
}

func deadlineLess(a, b *string, descending bool) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return descending // nil after reals asc, before reals desc
	case b == nil:
		return !descending
	case descending:
		return *a > *b
	default:
		return *a < *b
	}
}
