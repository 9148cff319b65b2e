package services

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"strive_server/auth"
	"strive_server/models"
)

type BadgeService struct {
	Dynamo *DynamoService
}

type ListBadgesOptions struct {
	Category string
	Rarity   string
	Limit    int
	SortBy   string
}

// ListBadges queries the caller's badge awards with optional category and
// rarity equality filters.
func (bs *BadgeService) ListBadges(ctx context.Context, opts ListBadgesOptions) ([]models.Badge, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}

	query := listQuery{
		Table:  models.CoreTable,
		PK:     models.UserPK(sub),
		Prefix: models.PrefixBadge,
		Limit:  opts.Limit,
		SortBy: opts.SortBy,
	}
	equals := map[string]string{}
	if opts.Category != "" {
		equals["category"] = opts.Category
	}
	if opts.Rarity != "" {
		equals["rarity"] = opts.Rarity
	}
	if len(equals) > 0 {
		query.Equals = equals
	}

	items, err := bs.Dynamo.QueryWithInput(ctx, query.build())
	if err != nil {
		log.Printf("❌ Error querying badges: %v", err)
		return nil, fmt.Errorf("failed to fetch badges: %w", err)
	}

	badges := make([]models.Badge, 0, len(items))
	for _, item := range items {
		var badge models.Badge
		if err := attributevalue.UnmarshalMap(item, &badge); err != nil {
			return nil, fmt.Errorf("failed to parse badge: %w", err)
		}
		badge.Normalize()
		badges = append(badges, badge)
	}
	return badges, nil
}
