package models

// ReactionSummary is the per-(message, shortcode) counter item. Count only
// ever changes through an atomic ADD, never a plain overwrite.
type ReactionSummary struct {
	PK        string `dynamodbav:"PK" json:"-"`
	SK        string `dynamodbav:"SK" json:"-"`
	Type      string `dynamodbav:"type" json:"-"`
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	Shortcode string `dynamodbav:"shortcode" json:"shortcode"`
	Unicode   string `dynamodbav:"unicode,omitempty" json:"unicode,omitempty"`
	Count     int64  `dynamodbav:"count" json:"count"`
}
