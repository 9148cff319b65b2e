package services

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"strive_server/apperr"
	"strive_server/auth"
	"strive_server/models"
	"strive_server/utils"
)

type ReactionService struct {
	Dynamo *DynamoService
}

type ReactionInput struct {
	MessageID string `json:"messageId"`
	Shortcode string `json:"shortcode"`
	Unicode   string `json:"unicode"`
	Action    string `json:"action"` // "add", "remove", anything else is fetch-only
}

// reactionDelta maps an action onto a signed counter delta.
func reactionDelta(action string) int64 {
	switch action {
	case "add":
		return 1
	case "remove":
		return -1
	}
	return 0
}

// ApplyReaction applies a signed delta to the (messageId, shortcode) counter.
// The ADD expression creates the counter on first increment, so no separate
// existence check is needed, and concurrent deltas never lose updates. The
// unicode display field is first-writer-wins. A zero delta never mutates:
// it reads the counter, defaulting to zero when the item is absent.
func (rs *ReactionService) ApplyReaction(ctx context.Context, input ReactionInput) (*models.ReactionSummary, error) {
	if _, err := auth.RequireCaller(ctx); err != nil {
		return nil, err
	}
	if input.MessageID == "" {
		return nil, apperr.Validation("messageId", "required")
	}
	if input.Shortcode == "" {
		return nil, apperr.Validation("shortcode", "required")
	}

	delta := reactionDelta(input.Action)
	if delta == 0 {
		return rs.getSummary(ctx, input.MessageID, input.Shortcode, input.Unicode)
	}

	key := reactionKey(input.MessageID, input.Shortcode)
	updateExpression := "ADD #count :delta " +
		"SET #unicode = if_not_exists(#unicode, :unicode), #messageId = :messageId, #shortcode = :shortcode, #type = :type"
	attrs, err := rs.Dynamo.UpdateItem(ctx, models.CoreTable, updateExpression, key,
		map[string]types.AttributeValue{
			":delta":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", delta)},
			":unicode":   &types.AttributeValueMemberS{Value: input.Unicode},
			":messageId": &types.AttributeValueMemberS{Value: input.MessageID},
			":shortcode": &types.AttributeValueMemberS{Value: input.Shortcode},
			":type":      &types.AttributeValueMemberS{Value: models.TypeReaction},
		},
		map[string]string{
			"#count":     "count",
			"#unicode":   "unicode",
			"#messageId": "messageId",
			"#shortcode": "shortcode",
			"#type":      "type",
		})
	if err != nil {
		return nil, fmt.Errorf("failed to update reaction counter: %w", err)
	}

	var summary models.ReactionSummary
	if err := attributevalue.UnmarshalMap(attrs, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse reaction summary: %w", err)
	}
	log.Printf("✅ Reaction %s on %s now at %d", input.Shortcode, input.MessageID, summary.Count)
	return &summary, nil
}

// getSummary is the fetch-only path: it never writes, and reports the
// requested shortcode/unicode even when no counter item exists yet.
func (rs *ReactionService) getSummary(ctx context.Context, messageID, shortcode, unicode string) (*models.ReactionSummary, error) {
	item, err := rs.Dynamo.GetItem(ctx, models.CoreTable, reactionKey(messageID, shortcode))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reaction summary: %w", err)
	}
	if item == nil {
		return &models.ReactionSummary{
			MessageID: messageID,
			Shortcode: shortcode,
			Unicode:   unicode,
			Count:     0,
		}, nil
	}

	var summary models.ReactionSummary
	if err := attributevalue.UnmarshalMap(item, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse reaction summary: %w", err)
	}
	return &summary, nil
}

// ListSummaries returns every reaction summary recorded for a message.
func (rs *ReactionService) ListSummaries(ctx context.Context, messageID string) ([]models.ReactionSummary, error) {
	if _, err := auth.RequireCaller(ctx); err != nil {
		return nil, err
	}
	if messageID == "" {
		return nil, apperr.Validation("messageId", "required")
	}

	query := listQuery{
		Table:  models.CoreTable,
		PK:     models.MessagePK(messageID),
		Prefix: models.PrefixReaction,
	}
	items, err := rs.Dynamo.QueryWithInput(ctx, query.build())
	if err != nil {
		log.Printf("❌ Error querying reaction summaries: %v", err)
		return nil, fmt.Errorf("failed to fetch reaction summaries: %w", err)
	}

	summaries := make([]models.ReactionSummary, 0, len(items))
	for _, item := range items {
		var summary models.ReactionSummary
		if err := attributevalue.UnmarshalMap(item, &summary); err != nil {
			return nil, fmt.Errorf("failed to parse reaction summary: %w", err)
		}
		// Older counter rows carry only the key and the count.
		if summary.Shortcode == "" {
			summary.Shortcode = models.ShortcodeFromSK(utils.ExtractString(item, models.AttrSK))
		}
		if summary.MessageID == "" {
			summary.MessageID = messageID
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func reactionKey(messageID, shortcode string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		models.AttrPK: &types.AttributeValueMemberS{Value: models.MessagePK(messageID)},
		models.AttrSK: &types.AttributeValueMemberS{Value: models.ReactionSK(shortcode)},
	}
}
