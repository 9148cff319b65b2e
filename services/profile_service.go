package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"strive_server/apperr"
	"strive_server/auth"
	"strive_server/models"
)

type ProfileService struct {
	Dynamo *DynamoService
}

type UpdateProfileInput struct {
	Email *string  `json:"email"`
	Tier  *string  `json:"tier"`
	Tags  []string `json:"tags"`
}

// GetOwnProfile fetches the caller's profile. Existence is mandatory here:
// an absent profile is NotFound, not an empty default.
func (ps *ProfileService) GetOwnProfile(ctx context.Context) (*models.Profile, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}

	item, err := ps.Dynamo.GetItem(ctx, models.CoreTable, profileKey(sub))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if item == nil {
		return nil, apperr.NotFound("profile not found")
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	profile.Normalize()
	return &profile, nil
}

// CreateProfile stores the caller's profile item.
func (ps *ProfileService) CreateProfile(ctx context.Context, email string, tags []string) (*models.Profile, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, apperr.Validation("email", "required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile := models.Profile{
		PK:        models.UserPK(sub),
		SK:        models.ProfileSK,
		Type:      models.TypeProfile,
		UserID:    sub,
		Email:     email,
		Role:      "member",
		Tier:      "free",
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ps.Dynamo.PutItem(ctx, models.CoreTable, profile); err != nil {
		log.Printf("❌ Failed to store profile: %v", err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	profile.Normalize()
	log.Printf("✅ Profile created for %s", sub)
	return &profile, nil
}

// UpdateProfile merges only the supplied fields into the caller's profile.
func (ps *ProfileService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*models.Profile, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}

	// Existence check first; partial updates never create.
	if _, err := ps.GetOwnProfile(ctx); err != nil {
		return nil, err
	}

	setParts := []string{"#updatedAt = :updatedAt"}
	names := map[string]string{"#updatedAt": "updatedAt"}
	values := map[string]types.AttributeValue{
		":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, apperr.Validation("email", "must not be empty")
		}
		setParts = append(setParts, "#email = :email")
		names["#email"] = "email"
		values[":email"] = &types.AttributeValueMemberS{Value: *input.Email}
	}
	if input.Tier != nil {
		setParts = append(setParts, "#tier = :tier")
		names["#tier"] = "tier"
		values[":tier"] = &types.AttributeValueMemberS{Value: *input.Tier}
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

	attrs, err := ps.Dynamo.UpdateItem(ctx, models.CoreTable,
		"SET "+strings.Join(setParts, ", "), profileKey(sub), values, names)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(attrs, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse updated profile: %w", err)
	}
	profile.Normalize()
	return &profile, nil
}

func profileKey(sub string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		models.AttrPK: &types.AttributeValueMemberS{Value: models.UserPK(sub)},
		models.AttrSK: &types.AttributeValueMemberS{Value: models.ProfileSK},
	}
}
