package services

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"strive_server/auth"
	"strive_server/models"
)

type QuestService struct {
	Dynamo *DynamoService
}

type ListQuestsOptions struct {
	GoalID string // keep only quests linked to this goal
	Limit  int
	SortBy string
}

// ListQuests queries the caller's quests, optionally narrowed to quests whose
// linkedGoalIds contain a given goal.
func (qs *QuestService) ListQuests(ctx context.Context, opts ListQuestsOptions) ([]models.Quest, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}

	query := listQuery{
		Table:  models.CoreTable,
		PK:     models.UserPK(sub),
		Prefix: models.PrefixQuest,
		Limit:  opts.Limit,
		SortBy: opts.SortBy,
	}
	if opts.GoalID != "" {
		query.Contains = map[string]string{"linkedGoalIds": opts.GoalID}
	}

	items, err := qs.Dynamo.QueryWithInput(ctx, query.build())
	if err != nil {
		log.Printf("❌ Error querying quests: %v", err)
		return nil, fmt.Errorf("failed to fetch quests: %w", err)
	}

	quests := make([]models.Quest, 0, len(items))
	for _, item := range items {
		var quest models.Quest
		if err := attributevalue.UnmarshalMap(item, &quest); err != nil {
			return nil, fmt.Errorf("failed to parse quest: %w", err)
		}
		quest.Normalize()
		quests = append(quests, quest)
	}
	return quests, nil
}
