package models

// Message represents a chat message. The same shape is stored in both the
// room and guild message tables; only the partition key-space differs.
type Message struct {
	PK        string  `dynamodbav:"PK" json:"-"`
	SK        string  `dynamodbav:"SK" json:"-"`
	MessageID string  `dynamodbav:"messageId" json:"messageId"`
	RoomID    string  `dynamodbav:"roomId" json:"roomId"`
	RoomType  string  `dynamodbav:"roomType" json:"roomType"`
	SenderID  string  `dynamodbav:"senderId" json:"senderId"`
	Text      string  `dynamodbav:"text" json:"text"`
	ImageURL  *string `dynamodbav:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Ts        int64   `dynamodbav:"ts" json:"ts"` // epoch milliseconds
	CreatedAt string  `dynamodbav:"createdAt" json:"createdAt"`
}
