package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"

	"strive_server/apperr"
	"strive_server/auth"
	"strive_server/models"
)

type ChatService struct {
	Dynamo *DynamoService
}

type SendMessageInput struct {
	RoomID   string  `json:"roomId"`
	Text     string  `json:"text"`
	ImageURL *string `json:"imageUrl"`
}

// routeRoom resolves the destination table and partition key from the shape
// of the room identifier. Guild identifiers keep their key verbatim; plain
// identifiers are namespaced into the general-purpose table.
func routeRoom(roomID string) (table, pk, roomType string) {
	if models.IsGuildRoom(roomID) {
		return models.GuildMessagesTable, roomID, models.RoomTypeGuild
	}
	return models.RoomMessagesTable, models.RoomPK(roomID), models.RoomTypeGeneral
}

// SendMessage stores a new message in the room's table. The sort key is the
// zero-padded millisecond timestamp plus the message id, and is never
// reassigned once written.
func (cs *ChatService) SendMessage(ctx context.Context, input SendMessageInput) (*models.Message, error) {
	sub, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if input.RoomID == "" {
		return nil, apperr.Validation("roomId", "required")
	}
	if input.Text == "" {
		return nil, apperr.Validation("text", "required")
	}

	table, pk, roomType := routeRoom(input.RoomID)
	now := time.Now().UTC()
	message := models.Message{
		PK:        pk,
		MessageID: uuid.NewString(),
		RoomID:    input.RoomID,
		RoomType:  roomType,
		SenderID:  sub,
		Text:      input.Text,
		ImageURL:  input.ImageURL,
		Ts:        now.UnixMilli(),
		CreatedAt: now.Format(time.RFC3339),
	}
	message.SK = models.MessageSK(message.Ts, message.MessageID)

	log.Printf("📩 Storing message %s in %s", message.MessageID, table)
	if err := cs.Dynamo.PutItem(ctx, table, message); err != nil {
		log.Printf("❌ Failed to store message: %v", err)
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	log.Printf("✅ Message stored in room %s", input.RoomID)
	return &message, nil
}

// GetMessages fetches the latest messages for a room sorted latest-first,
// then reverses the page so the newest message lands at the bottom in UI.
func (cs *ChatService) GetMessages(ctx context.Context, roomID string, limit int) ([]models.Message, error) {
	if _, err := auth.RequireCaller(ctx); err != nil {
		return nil, err
	}
	if roomID == "" {
		return nil, apperr.Validation("roomId", "required")
	}

	table, pk, _ := routeRoom(roomID)
	query := listQuery{
		Table:  table,
		PK:     pk,
		Prefix: models.PrefixMessage,
		Limit:  limit,
		SortBy: "ts-desc",
	}
	items, err := cs.Dynamo.QueryWithInput(ctx, query.build())
	if err != nil {
		log.Printf("❌ Error querying messages: %v", err)
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	messages := make([]models.Message, 0, len(items))
	for _, item := range items {
		var message models.Message
		if err := attributevalue.UnmarshalMap(item, &message); err != nil {
			return nil, fmt.Errorf("failed to parse message: %w", err)
		}
		messages = append(messages, message)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
