package models

// Badge represents a badge award stored in the core table
type Badge struct {
	PK       string            `dynamodbav:"PK" json:"-"`
	SK       string            `dynamodbav:"SK" json:"-"`
	Type     string            `dynamodbav:"type" json:"-"`
	BadgeID  string            `dynamodbav:"badgeId" json:"badgeId"`
	Category string            `dynamodbav:"category,omitempty" json:"category,omitempty"`
	Rarity   string            `dynamodbav:"rarity,omitempty" json:"rarity,omitempty"`
	EarnedAt string            `dynamodbav:"earnedAt" json:"earnedAt"`
	Progress int               `dynamodbav:"progress" json:"progress"`
	Metadata map[string]string `dynamodbav:"metadata,omitempty" json:"metadata,omitempty"`
}

// Normalize applies defaults for optional fields absent in storage.
func (b *Badge) Normalize() {
	if b.BadgeID == "" {
		b.BadgeID = BadgeIDFromSK(b.SK)
	}
}
